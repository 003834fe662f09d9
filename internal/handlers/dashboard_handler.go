package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Owner returns the owner landing-page snapshot.
// GET /api/v1/owner/dashboard
func (h *DashboardHandler) Owner(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	dashboard, err := h.dashboardService.GetOwnerDashboard(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, err, "Dashboard")
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", dashboard)
}
