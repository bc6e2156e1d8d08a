package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/response"
	"github.com/stemsi/skills-assessment/internal/service"
	"github.com/stemsi/skills-assessment/internal/validator"
)

// AssessmentHubHandler handles the manager's assessment hub.
type AssessmentHubHandler struct {
	hubService *service.AssessmentHubService
}

func NewAssessmentHubHandler(hubService *service.AssessmentHubService) *AssessmentHubHandler {
	return &AssessmentHubHandler{hubService: hubService}
}

// ListTemplates godoc
// GET /api/v1/assessment-hub/templates
func (h *AssessmentHubHandler) ListTemplates(c *gin.Context) {
	templates := h.hubService.ListTemplates(c.Request.Context())
	if templates == nil {
		templates = []model.Template{}
	}
	response.Success(c, http.StatusOK, gin.H{"templates": templates})
}

// ListCandidates godoc
// GET /api/v1/assessment-hub/candidates
func (h *AssessmentHubHandler) ListCandidates(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"candidates": h.hubService.ListCandidates(c.Request.Context())})
}

// GenerateQuestions godoc
// POST /api/v1/assessment-hub/generate-questions
func (h *AssessmentHubHandler) GenerateQuestions(c *gin.Context) {
	var req model.GenerateQuestionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questions, err := h.hubService.GenerateQuestions(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// ScheduleExam godoc
// POST /api/v1/assessment-hub/schedule-exam
func (h *AssessmentHubHandler) ScheduleExam(c *gin.Context) {
	var req model.ScheduleExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sched, err := h.hubService.ScheduleExam(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Exam scheduled successfully!", "schedule": sched})
}

// ListSchedules godoc
// GET /api/v1/assessment-hub/schedules
func (h *AssessmentHubHandler) ListSchedules(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"schedules": h.hubService.ListSchedules(c.Request.Context())})
}

func (h *AssessmentHubHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrTemplateNotFound)
	case errors.Is(err, service.ErrNoCandidates):
		response.Fail(c, http.StatusBadRequest, response.ErrCandidatesMissing)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
