package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCareersRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RecommendCareersRequest{}).Validate())
	assert.NoError(t, (&RecommendCareersRequest{Limit: 5}).Validate())

	err := (&RecommendCareersRequest{Limit: 51}).Validate()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Limit", verrs[0].Field())
}

func TestMatchMentorsRequest_Validate_IgnoresCareer(t *testing.T) {
	req := MatchMentorsRequest{Career: CareerRecord{Title: "Data Scientist"}}
	assert.NoError(t, req.Validate())

	req.Limit = -1
	assert.Error(t, req.Validate())
}

func TestRoadmapRequest_Validate(t *testing.T) {
	var missing *MissingCareerError
	assert.True(t, errors.As((&RoadmapRequest{}).Validate(), &missing))
	assert.NoError(t, (&RoadmapRequest{CareerID: "data_scientist"}).Validate())
	assert.NoError(t, (&RoadmapRequest{Career: CareerRecord{Title: "Nurse"}}).Validate())
}

func TestTrendsRequest_Validate_TrimsField(t *testing.T) {
	req := TrendsRequest{Field: "  Data Science  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Data Science", req.Field)

	assert.Error(t, (&TrendsRequest{Field: "   "}).Validate())
}

func TestSkillGapRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SkillGapRequest{CareerSkills: StringList{"Python"}}).Validate())
	assert.NoError(t, (&SkillGapRequest{CareerID: "data_scientist"}).Validate())

	var missing *MissingCareerError
	assert.True(t, errors.As((&SkillGapRequest{UserSkills: StringList{"Go"}}).Validate(), &missing))
}

func TestGrowthProjectionRequest_Validate(t *testing.T) {
	assert.NoError(t, (&GrowthProjectionRequest{CareerID: "nurse", Years: 10}).Validate())
	assert.Error(t, (&GrowthProjectionRequest{CareerID: "nurse", Years: 41}).Validate())
	assert.Error(t, (&GrowthProjectionRequest{CareerID: "nurse", GrowthRate: 1.5}).Validate())

	var missing *MissingCareerError
	assert.True(t, errors.As((&GrowthProjectionRequest{Years: 5}).Validate(), &missing))
}

func TestExtractSkillsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ExtractSkillsRequest{Text: "Go, SQL"}).Validate())
	assert.NoError(t, (&ExtractSkillsRequest{Profile: UserProfile{Skills: "Go"}}).Validate())

	err := (&ExtractSkillsRequest{}).Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "skills", verr.Field)
	assert.Equal(t, "validation error: skills - text or profile.skills is required", err.Error())
}

func TestCareerPlanRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CareerPlanRequest{}).Validate())
	assert.NoError(t, (&CareerPlanRequest{Period: "1year"}).Validate())
	assert.Error(t, (&CareerPlanRequest{Period: strings.Repeat("x", 33)}).Validate())
}

func TestMissingCareerError(t *testing.T) {
	assert.Equal(t, "career_id or career.title is required", (&MissingCareerError{}).Error())
}
