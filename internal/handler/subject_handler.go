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

type SubjectHandler struct {
	subjectService *service.SubjectService
}

func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// GetAll godoc
// GET /api/v1/subjects
func (h *SubjectHandler) GetAll(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"subjects": h.subjectService.GetAll(c.Request.Context())})
}

// Create godoc
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	name, err := h.subjectService.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrSubjectExists) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Created(c, gin.H{"subject": name})
}
