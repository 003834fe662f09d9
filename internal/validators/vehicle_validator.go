package validators

type VehicleCreateRequest struct {
	Brand           string  `json:"brand" validate:"required,min=1,max=50"`
	Model           string  `json:"model" validate:"required,min=1,max=50"`
	Year            int     `json:"year" validate:"required,min=1980,max=2030"`
	Category        string  `json:"category" validate:"required,vehicle_category"`
	FuelType        string  `json:"fuel_type" validate:"required,oneof=petrol diesel electric hybrid"`
	Transmission    string  `json:"transmission" validate:"required,oneof=manual automatic"`
	SeatingCapacity int     `json:"seating_capacity" validate:"omitempty,min=1,max=9"`
	PricePerDay     float64 `json:"price_per_day" validate:"required,gt=0"`
	Location        string  `json:"location" validate:"required,min=2,max=100"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
}

type VehicleUpdateRequest struct {
	Brand           string   `json:"brand" validate:"omitempty,min=1,max=50"`
	Model           string   `json:"model" validate:"omitempty,min=1,max=50"`
	Year            int      `json:"year" validate:"omitempty,min=1980,max=2030"`
	Category        string   `json:"category" validate:"omitempty,vehicle_category"`
	FuelType        string   `json:"fuel_type" validate:"omitempty,oneof=petrol diesel electric hybrid"`
	Transmission    string   `json:"transmission" validate:"omitempty,oneof=manual automatic"`
	SeatingCapacity int      `json:"seating_capacity" validate:"omitempty,min=1,max=9"`
	PricePerDay     *float64 `json:"price_per_day" validate:"omitempty,gt=0"`
	Location        string   `json:"location" validate:"omitempty,min=2,max=100"`
	Description     *string  `json:"description" validate:"omitempty,max=2000"`
}

// Updates builds the partial update map from the fields actually supplied.
func (r *VehicleUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})

	if r.Brand != "" {
		updates["brand"] = r.Brand
	}
	if r.Model != "" {
		updates["model"] = r.Model
	}
	if r.Year != 0 {
		updates["year"] = r.Year
	}
	if r.Category != "" {
		updates["category"] = r.Category
	}
	if r.FuelType != "" {
		updates["fuel_type"] = r.FuelType
	}
	if r.Transmission != "" {
		updates["transmission"] = r.Transmission
	}
	if r.SeatingCapacity != 0 {
		updates["seating_capacity"] = r.SeatingCapacity
	}
	if r.PricePerDay != nil {
		updates["price_per_day"] = *r.PricePerDay
	}
	if r.Location != "" {
		updates["location"] = r.Location
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}

	return updates
}
