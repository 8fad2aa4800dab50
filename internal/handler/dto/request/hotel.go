package request

type CreateHotelRequest struct {
	Name           string   `json:"name" binding:"required"`
	BasePrice      *float64 `json:"base_price,omitempty"`
	StandardRooms  int      `json:"standard_rooms"`
	DeluxeRooms    int      `json:"deluxe_rooms"`
	ExecutiveRooms int      `json:"executive_rooms"`
}

func (r CreateHotelRequest) GetBasePrice() float64 {
	if r.BasePrice == nil {
		return 0
	}
	return *r.BasePrice
}

// UpdateHotelRequest carries the two administrative edits; either field may
// be omitted.
type UpdateHotelRequest struct {
	Name      *string  `json:"name,omitempty"`
	BasePrice *float64 `json:"base_price,omitempty"`
}

type AddRoomRequest struct {
	Category string `json:"category" binding:"required"`
}
