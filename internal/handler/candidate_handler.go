package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/response"
	"github.com/stemsi/skills-assessment/internal/service"
	"github.com/stemsi/skills-assessment/internal/validator"
)

// CandidateHandler handles the candidate-facing exam endpoints.
type CandidateHandler struct {
	examService    *service.CandidateExamService
	scoringService *service.ScoringService
	log            zerolog.Logger
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(
	examService *service.CandidateExamService,
	scoringService *service.ScoringService,
	log zerolog.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		examService:    examService,
		scoringService: scoringService,
		log:            log.With().Str("component", "candidate_handler").Logger(),
	}
}

// ListExams godoc
// GET /api/v1/candidates/:candidate_id/exams
func (h *CandidateHandler) ListExams(c *gin.Context) {
	exams, err := h.examService.ListCatalog(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// GetExam godoc
// GET /api/v1/candidates/:candidate_id/exams/:exam_id
// Returns the exam paper without correct answers.
func (h *CandidateHandler) GetExam(c *gin.Context) {
	exam, err := h.examService.GetExamForCandidate(c.Request.Context(), c.Param("candidate_id"), c.Param("exam_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// SubmitExam godoc
// POST /api/v1/candidates/:candidate_id/exams/:exam_id/submit
// Scores the answers and stores the result, replacing any earlier submission.
func (h *CandidateHandler) SubmitExam(c *gin.Context) {
	var req model.SubmitAnswersRequest
	if fields := validator.Bind(c, &req); fields != nil {
		if _, missing := fields["answers"]; missing {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrAnswersRequired, fields)
			return
		}
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	answers, err := req.AnswerMap()
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrMalformedAnswers, map[string]string{"answers": err.Error()})
		return
	}

	result, err := h.scoringService.Submit(c.Request.Context(), c.Param("candidate_id"), c.Param("exam_id"), answers)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"result": result})
}

// ListResults godoc
// GET /api/v1/candidates/:candidate_id/results
func (h *CandidateHandler) ListResults(c *gin.Context) {
	results, err := h.scoringService.ListResults(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// GetResult godoc
// GET /api/v1/candidates/:candidate_id/results/:exam_id
func (h *CandidateHandler) GetResult(c *gin.Context) {
	result, err := h.scoringService.GetResult(c.Request.Context(), c.Param("candidate_id"), c.Param("exam_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

func (h *CandidateHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCandidateNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrCandidateNotFound)
	case errors.Is(err, service.ErrExamNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrExamNotFound)
	case errors.Is(err, service.ErrResultNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrResultNotFound)
	case errors.Is(err, service.ErrAnswersRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrAnswersRequired)
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Candidate request failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
