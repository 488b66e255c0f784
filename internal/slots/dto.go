package slots

// ReserveRequest books one unit of a slot's capacity for a given service date.
type ReserveRequest struct {
	TimeSlot string `json:"timeSlot" validate:"required"`
	Date     string `json:"date" validate:"required"`
}

// SetCapacityRequest updates the capacity of every slot at once.
type SetCapacityRequest struct {
	Total int `json:"total" validate:"required,min=1,max=1000"`
}
