package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/insights"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// HealthResponse reports service and corpus status.
type HealthResponse struct {
	Status  string `json:"status"`
	Careers int    `json:"careers"`
	Mentors int    `json:"mentors"`
	Error   string `json:"error,omitempty"`
}

// handleHealth returns server health status. The response is always 200; a
// failing corpus is reported as "degraded".
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}

	careers, err := s.store.Careers(r.Context())
	if err == nil {
		var mentors []types.MentorRecord
		mentors, err = s.store.Mentors(r.Context())
		resp.Mentors = len(mentors)
	}
	resp.Careers = len(careers)
	if err != nil {
		resp.Status = "degraded"
		resp.Error = err.Error()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// ModelInfoResponse describes the configured completion models.
type ModelInfoResponse struct {
	Provider string            `json:"provider"`
	Models   map[string]string `json:"models"`
}

func (s *Server) handleModelInfo(w http.ResponseWriter, _ *http.Request) {
	resp := ModelInfoResponse{Models: map[string]string{}}
	if s.llmConfig != nil {
		resp.Provider = string(s.llmConfig.Provider)
	}
	for _, tier := range []llm.ModelTier{llm.TierLite, llm.TierStandard, llm.TierAdvanced} {
		resp.Models[string(tier)] = s.client.GetModel(tier)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// careers returns the corpus, or the built-in careers when the corpus is empty.
func (s *Server) careers(ctx context.Context) ([]types.CareerRecord, error) {
	careers, err := s.store.Careers(ctx)
	if err != nil {
		return nil, err
	}
	if len(careers) == 0 {
		return matching.DefaultCareers(), nil
	}
	return careers, nil
}

func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	careers, err := s.careers(r.Context())
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"careers": careers, "count": len(careers)})
}

func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	career, err := s.lookupCareer(r.Context(), r.PathValue("id"))
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"career": career})
}

func (s *Server) handleListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := s.store.Mentors(r.Context())
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if len(mentors) == 0 {
		mentors = matching.DefaultMentors()
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"mentors": mentors, "count": len(mentors)})
}

// lookupCareer finds a career by id in the store, then among the built-in careers.
func (s *Server) lookupCareer(ctx context.Context, id string) (types.CareerRecord, error) {
	id = strings.TrimSpace(id)
	career, err := s.store.Career(ctx, id)
	if err == nil {
		return *career, nil
	}

	var notFound *corpus.NotFoundError
	if !errors.As(err, &notFound) {
		return types.CareerRecord{}, err
	}
	for _, c := range matching.DefaultCareers() {
		if c.CareerID == id {
			return c, nil
		}
	}
	return types.CareerRecord{}, err
}

// resolveCareer returns the inline career when it has a title, otherwise the
// career named by id.
func (s *Server) resolveCareer(ctx context.Context, id string, inline types.CareerRecord) (types.CareerRecord, error) {
	if strings.TrimSpace(inline.Title) != "" {
		return inline, nil
	}
	if strings.TrimSpace(id) == "" {
		id = inline.CareerID
	}
	if strings.TrimSpace(id) == "" {
		return types.CareerRecord{}, &types.MissingCareerError{}
	}
	return s.lookupCareer(ctx, id)
}

// RecommendCareersResponse holds ranked career matches.
type RecommendCareersResponse struct {
	Recommendations []types.CareerMatch `json:"recommendations"`
	Explanation     string              `json:"explanation"`
	Count           int                 `json:"count"`
}

func (s *Server) handleRecommendCareers(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendCareersRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	careers, err := s.store.Careers(r.Context())
	if err != nil {
		s.requestLogger(r).Warn("career corpus unavailable, using defaults", zap.Error(err))
		careers = nil
	}

	matches := matching.RecommendCareers(req.Profile, careers)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}
	s.jsonResponse(w, http.StatusOK, RecommendCareersResponse{
		Recommendations: matches,
		Explanation:     matching.Explanation(req.Profile),
		Count:           len(matches),
	})
}

// MatchMentorsResponse holds scored mentors.
type MatchMentorsResponse struct {
	Mentors []types.MentorMatch `json:"mentors"`
	Count   int                 `json:"count"`
}

func (s *Server) handleMatchMentors(w http.ResponseWriter, r *http.Request) {
	var req types.MatchMentorsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	career := req.Career
	if strings.TrimSpace(career.Title) == "" && strings.TrimSpace(career.CareerID) != "" {
		found, err := s.lookupCareer(r.Context(), career.CareerID)
		if err != nil {
			s.failure(w, r, err)
			return
		}
		career = found
	}

	matches := s.mentors.Match(r.Context(), career, req.Profile)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}
	s.jsonResponse(w, http.StatusOK, MatchMentorsResponse{Mentors: matches, Count: len(matches)})
}

func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req types.SkillGapRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	careerSkills := []string(req.CareerSkills)
	if len(careerSkills) == 0 {
		career, err := s.resolveCareer(r.Context(), req.CareerID, req.Career)
		if err != nil {
			s.failure(w, r, err)
			return
		}
		careerSkills = career.KeySkills
	}

	s.jsonResponse(w, http.StatusOK, insights.SkillGapReport(req.UserSkills, careerSkills))
}

func (s *Server) handleGrowthProjection(w http.ResponseWriter, r *http.Request) {
	var req types.GrowthProjectionRequest
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

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"career":      career.Title,
		"projections": insights.GrowthProjection(career, req.Years, req.GrowthRate),
	})
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractSkillsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, err)
		return
	}

	var skills []string
	if strings.TrimSpace(req.Text) != "" {
		skills = types.SplitList(req.Text)
	} else {
		skills = insights.ExtractUserSkills(req.Profile)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills, "count": len(skills)})
}
