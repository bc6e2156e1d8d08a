package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/skills-assessment/internal/response"
	"github.com/stemsi/skills-assessment/internal/service"
)

// DashboardHandler serves the manager assessment dashboard.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ForManager godoc
// GET /api/v1/managers/:email/dashboard
func (h *DashboardHandler) ForManager(c *gin.Context) {
	records, err := h.dashboardService.ForManager(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"records": records})
}
