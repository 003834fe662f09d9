package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add saves a vehicle to the user's favorites. Saving twice is a no-op.
// POST /api/v1/favorites/:vehicleId
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseIDParam(c, "vehicleId")
	if !ok {
		return
	}

	if err := h.favoriteService.Add(c.Request.Context(), userID, vehicleID); err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Added to favorites", nil)
}

// Remove drops a vehicle from the user's favorites. Removing a vehicle that
// was never saved still succeeds.
// DELETE /api/v1/favorites/:vehicleId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseIDParam(c, "vehicleId")
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, vehicleID); err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Removed from favorites", nil)
}

// List returns the user's favorited vehicles that are still listed.
// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicles, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponseWithMeta(c, "Favorites retrieved", vehicleSummaries(vehicles), &utils.Meta{
		Count: len(vehicles),
	})
}
