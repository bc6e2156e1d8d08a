package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/skills-assessment/internal/model"
	"github.com/stemsi/skills-assessment/internal/response"
	"github.com/stemsi/skills-assessment/internal/service"
	"github.com/stemsi/skills-assessment/internal/validator"
)

type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List godoc
// GET /api/v1/templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates := h.templateService.List(c.Request.Context())
	if templates == nil {
		templates = []model.Template{}
	}
	response.Success(c, http.StatusOK, gin.H{"templates": templates})
}

// Create godoc
// POST /api/v1/templates
func (h *TemplateHandler) Create(c *gin.Context) {
	var req model.CreateTemplateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	t, err := h.templateService.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"template": t})
}

// Update godoc
// PATCH /api/v1/templates/:id
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTemplateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	t, err := h.templateService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"template": t})
}

// Delete godoc
// DELETE /api/v1/templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "template deleted successfully"})
}

func (h *TemplateHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrTemplateNotFound)
	case errors.Is(err, service.ErrInvalidTemplate):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidTemplate)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
