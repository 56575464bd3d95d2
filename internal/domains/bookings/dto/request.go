package dto

type QuoteRequest struct {
	VenueID   string `json:"venue_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04" example:"18:00"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04" example:"19:00"`
}

type CreateBookingRequest struct {
	QuoteRequest
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type ListRequest struct {
	Filter string `query:"filter" validate:"omitempty,oneof=all upcoming past"`
}

type SlotsRequest struct {
	Date     string `query:"date" validate:"required,datetime=2006-01-02" example:"2006-01-02"`
	Selected string `query:"selected" validate:"omitempty,datetime=15:04" example:"18:00"`
}
