package handlers

import (
	"errors"
	"net/http"

	"gorent/internal/models"
	"gorent/internal/services"
	"gorent/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	return id, ok
}

// parseIDParam parses an ObjectID path parameter.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// handleServiceError maps the service error taxonomy onto HTTP responses.
func handleServiceError(c *gin.Context, err error, resource string) {
	switch {
	case services.IsValidationError(err):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrUnauthorized):
		utils.ForbiddenResponse(c)
	case errors.Is(err, services.ErrNotAvailable):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrBadCredential):
		utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}

func bookingSummaries(bookings []*models.Booking) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Summary())
	}
	return out
}

func vehicleSummaries(vehicles []*models.Vehicle) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.Summary())
	}
	return out
}
