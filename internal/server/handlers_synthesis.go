package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/pipeline"
	"github.com/jonathan/career-compass/internal/types"
)

// defaultRoadmapProfile stands in for the user on GET /learning-roadmap/{career_id}.
var defaultRoadmapProfile = types.UserProfile{
	Skills:          "Basic programming, Communication",
	ExperienceLevel: "Entry level",
	Education:       "Bachelor's Degree",
	Interests:       "Technology and Innovation",
}

func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	career, err := s.resolveCareer(r.Context(), req.CareerID, req.Career)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.writeRoadmap(w, r, career, req.Profile)
}

func (s *Server) handleRoadmapForCareer(w http.ResponseWriter, r *http.Request) {
	career, err := s.lookupCareer(r.Context(), r.PathValue("career_id"))
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.writeRoadmap(w, r, career, defaultRoadmapProfile)
}

func (s *Server) writeRoadmap(w http.ResponseWriter, r *http.Request, career types.CareerRecord, profile types.UserProfile) {
	resp, err := s.roadmaps.Generate(r.Context(), career, profile)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleIndustryTrends(w http.ResponseWriter, r *http.Request) {
	var req types.TrendsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}
	s.writeTrends(w, r, req.Field, req.Period)
}

func (s *Server) handleTrendsForField(w http.ResponseWriter, r *http.Request) {
	req := types.TrendsRequest{Field: r.PathValue("field"), Period: r.URL.Query().Get("period")}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}
	s.writeTrends(w, r, req.Field, req.Period)
}

func (s *Server) writeTrends(w http.ResponseWriter, r *http.Request, field, period string) {
	resp, err := s.trends.Analyze(r.Context(), field, period)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// planner returns a Planner over the server's collaborators.
func (s *Server) planner(r *http.Request, onProgress pipeline.ProgressCallback) *pipeline.Planner {
	return &pipeline.Planner{
		Careers:    s.store,
		Mentors:    s.mentors,
		Roadmaps:   s.roadmaps,
		Trends:     s.trends,
		Logger:     s.requestLogger(r).Named("plan"),
		OnProgress: onProgress,
	}
}

func (s *Server) handleCareerPlan(w http.ResponseWriter, r *http.Request) {
	var req types.CareerPlanRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	plan, err := s.planner(r, nil).BuildPlan(r.Context(), req)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, plan)
}

// handleCareerPlanStream builds a plan and reports each step as a "step" event,
// followed by a "plan" event with the result and a "complete" event.
func (s *Server) handleCareerPlanStream(w http.ResponseWriter, r *http.Request) {
	var req types.CareerPlanRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	stream, err := newEventStream(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger := s.requestLogger(r)
	plan, err := s.planner(r, func(event pipeline.ProgressEvent) {
		if err := stream.send("step", event); err != nil {
			logger.Warn("failed to write step event", zap.String("step", event.Step), zap.Error(err))
		}
	}).BuildPlan(r.Context(), req)
	if err != nil {
		logger.Error("streamed plan failed", zap.Error(err))
		if err := stream.fail(err.Error()); err != nil {
			logger.Warn("failed to write error event", zap.Error(err))
		}
		return
	}

	if err := stream.send("plan", plan); err != nil {
		logger.Warn("failed to write plan event", zap.Error(err))
		return
	}
	status := "completed"
	if len(plan.Errors) > 0 {
		status = "partial"
	}
	if err := stream.complete(plan.ID.String(), status); err != nil {
		logger.Warn("failed to write complete event", zap.Error(err))
	}
}
