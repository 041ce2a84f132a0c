package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mettlehq/ats-api/internal/database"
	"github.com/mettlehq/ats-api/internal/dto"
	"github.com/mettlehq/ats-api/internal/models"
	"github.com/mettlehq/ats-api/internal/repository"
	"github.com/mettlehq/ats-api/internal/services"
)

// CandidateHandlerTestSuite defines the test suite for CandidateHandler
type CandidateHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *CandidateHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *CandidateHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	candidateRepo := repository.NewCandidateRepository(suite.db)
	suite.handler = NewCandidateHandler(services.NewCandidateService(candidateRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/candidates", suite.handler.ListCandidates)
	suite.router.POST("/api/candidates", suite.handler.CreateCandidate)
	suite.router.GET("/api/candidates/:id", suite.handler.GetCandidate)
	suite.router.PATCH("/api/candidates/:id", suite.handler.UpdateCandidate)
	suite.router.DELETE("/api/candidates/:id", suite.handler.DeleteCandidate)
}

// TearDownTest runs after each test
func (suite *CandidateHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *CandidateHandlerTestSuite) doJSON(method, url string, payload any) *httptest.ResponseRecorder {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		suite.Require().NoError(err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CandidateHandlerTestSuite) createCandidate(email string, extra map[string]any) dto.CandidateDTO {
	payload := map[string]any{
		"name":   "Grace Hopper",
		"email":  email,
		"role":   "Backend Engineer",
		"source": "LinkedIn",
	}
	for k, v := range extra {
		payload[k] = v
	}

	w := suite.doJSON(http.MethodPost, "/api/candidates", payload)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var candidate dto.CandidateDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &candidate))
	return candidate
}

func (suite *CandidateHandlerTestSuite) TestCreateCandidate_DerivesTagsAndExperience() {
	candidate := suite.createCandidate("grace@example.com", map[string]any{
		"skills": []string{"Go", "Rust", "C++", "Zig"},
	})

	suite.Equal([]string{"Go", "Rust", "C++"}, candidate.Tags)
	suite.Equal([]string{"Go", "Rust", "C++", "Zig"}, candidate.Skills)
	suite.Equal(0, candidate.ExperienceYears)
	suite.Equal(models.CandidateStatusNew, candidate.Status)
	suite.Equal(0, candidate.Score)
}

func (suite *CandidateHandlerTestSuite) TestCreateCandidate_CountsExperienceEntries() {
	candidate := suite.createCandidate("grace@example.com", map[string]any{
		"experience": []map[string]any{
			{"id": "1", "title": "Engineer", "company": "Acme", "start_date": "2019-01"},
			{"id": "2", "title": "Senior Engineer", "company": "Initech", "start_date": "2022-03"},
		},
	})

	suite.Equal(2, candidate.ExperienceYears)
	suite.Len(candidate.Experience, 2)
	suite.Empty(candidate.Tags)
}

func (suite *CandidateHandlerTestSuite) TestCreateCandidate_IgnoresDerivedFieldInput() {
	w := suite.doJSON(http.MethodPost, "/api/candidates", map[string]any{
		"name":   "Grace Hopper",
		"email":  "grace@example.com",
		"role":   "Backend Engineer",
		"source": "GitHub",
		// Derived fields supplied by the caller are discarded on create
		"status": "Hired",
		"score":  99,
		"tags":   []string{"vip"},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var candidate dto.CandidateDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &candidate))
	suite.Equal(models.CandidateStatusNew, candidate.Status)
	suite.Equal(0, candidate.Score)
	suite.Empty(candidate.Tags)
}

func (suite *CandidateHandlerTestSuite) TestCreateCandidate_DuplicateEmail() {
	suite.createCandidate("grace@example.com", nil)

	w := suite.doJSON(http.MethodPost, "/api/candidates", map[string]any{
		"name":   "Grace Clone",
		"email":  "grace@example.com",
		"role":   "Data Engineer",
		"source": "Referral",
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *CandidateHandlerTestSuite) TestUpdateCandidate_AppliesFieldsVerbatim() {
	candidate := suite.createCandidate("grace@example.com", map[string]any{
		"skills": []string{"Go", "Rust", "C++", "Zig"},
	})

	w := suite.doJSON(http.MethodPatch, "/api/candidates/"+candidate.ID.String(), map[string]any{
		"status": "Interview",
		"score":  85,
		// Updates do not re-derive tags from skills
		"skills": []string{"Haskell"},
	})
	suite.Equal(http.StatusOK, w.Code)

	var updated dto.CandidateDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal(models.CandidateStatusInterview, updated.Status)
	suite.Equal(85, updated.Score)
	suite.Equal([]string{"Haskell"}, updated.Skills)
	suite.Equal([]string{"Go", "Rust", "C++"}, updated.Tags)
}

func (suite *CandidateHandlerTestSuite) TestUpdateCandidate_OverwritesTagsWhenSupplied() {
	candidate := suite.createCandidate("grace@example.com", map[string]any{
		"skills": []string{"Go", "Rust"},
	})

	w := suite.doJSON(http.MethodPatch, "/api/candidates/"+candidate.ID.String(), map[string]any{
		"tags": []string{"priority"},
	})
	suite.Equal(http.StatusOK, w.Code)

	var updated dto.CandidateDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal([]string{"priority"}, updated.Tags)
}

func (suite *CandidateHandlerTestSuite) TestUpdateCandidate_ScoreOutOfRange() {
	candidate := suite.createCandidate("grace@example.com", nil)

	w := suite.doJSON(http.MethodPatch, "/api/candidates/"+candidate.ID.String(), map[string]any{
		"score": 150,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CandidateHandlerTestSuite) TestUpdateCandidate_NotFound() {
	w := suite.doJSON(http.MethodPatch, "/api/candidates/"+uuid.NewString(), map[string]any{
		"status": "Offer",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CandidateHandlerTestSuite) TestListCandidates_FiltersBySource() {
	linked := suite.createCandidate("ln@example.com", map[string]any{"source": "LinkedIn"})
	suite.createCandidate("gh@example.com", map[string]any{"source": "GitHub"})

	w := suite.doJSON(http.MethodGet, "/api/candidates?source=LinkedIn", nil)
	suite.Equal(http.StatusOK, w.Code)

	var candidates []dto.CandidateDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &candidates))
	suite.Require().Len(candidates, 1)
	suite.Equal(linked.ID, candidates[0].ID)
}

func (suite *CandidateHandlerTestSuite) TestDeleteCandidate() {
	candidate := suite.createCandidate("grace@example.com", nil)

	w := suite.doJSON(http.MethodDelete, "/api/candidates/"+candidate.ID.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/candidates/"+candidate.ID.String(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CandidateHandlerTestSuite) TestDeleteCandidate_NotFound() {
	w := suite.doJSON(http.MethodDelete, "/api/candidates/"+uuid.NewString(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestCandidateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CandidateHandlerTestSuite))
}
