package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Create lists a new vehicle under the authenticated owner.
// POST /api/v1/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), ownerID, &req)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.CreatedResponse(c, "Vehicle listed", vehicle)
}

// Update applies a partial update to an owned vehicle.
// PUT /api/v1/vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), ownerID, vehicleID, &req)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle updated", vehicle)
}

// Get returns a single listed vehicle. Public.
// GET /api/v1/vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved", vehicle)
}

// List returns the paginated public catalog.
// GET /api/v1/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved", vehicleSummaries(vehicles), &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(vehicles),
	})
}

// OwnerVehicles returns every vehicle the authenticated owner has listed,
// delisted ones included.
// GET /api/v1/owner/vehicles
func (h *VehicleHandler) OwnerVehicles(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicles, err := h.vehicleService.GetOwnerVehicles(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicles retrieved", vehicles)
}

// ToggleAvailability flips the owner-controlled availability flag.
// POST /api/v1/vehicles/:id/toggle
func (h *VehicleHandler) ToggleAvailability(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.ToggleAvailability(c.Request.Context(), ownerID, vehicleID)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Availability updated", vehicle)
}

// Delist retires a vehicle from the catalog. The record stays for history.
// DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) Delist(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.DelistVehicle(c.Request.Context(), ownerID, vehicleID); err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle delisted", nil)
}

// UploadImage accepts a multipart photo for an owned vehicle.
// POST /api/v1/vehicles/:id/image
func (h *VehicleHandler) UploadImage(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required")
		return
	}
	if fileHeader.Size > utils.MaxImageSize {
		utils.BadRequestResponse(c, "Image exceeds the maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	url, err := h.vehicleService.UploadImage(c.Request.Context(), ownerID, vehicleID, fileHeader.Filename, file)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Image uploaded", gin.H{"image": url})
}
