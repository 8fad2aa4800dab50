package api

import (
	"errors"
	"net/http"
	"strings"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	reqdto "hotel-reservation-core/internal/handler/dto/request"
	resdto "hotel-reservation-core/internal/handler/dto/response"
	"hotel-reservation-core/internal/handler/httperr"
	"hotel-reservation-core/internal/infra/memstore"
	"hotel-reservation-core/internal/usecase/commands"
	"hotel-reservation-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
}

func NewHotelHandler(hotelCommands commands.HotelCommands, hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
	}
}

func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.CreateHotel(c.Request.Context(), commands.CreateHotelParams{
		Name:           req.Name,
		BasePrice:      req.GetBasePrice(),
		StandardRooms:  req.StandardRooms,
		DeluxeRooms:    req.DeluxeRooms,
		ExecutiveRooms: req.ExecutiveRooms,
	})
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrHotelAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A hotel with this name already exists",
			})
		case errors.Is(err, commands.ErrInvalidRoomCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Room count must be between 1 and 50",
			})
		case errors.Is(err, hotel.ErrEmptyHotelName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Hotel name cannot be empty",
			})
		case errors.Is(err, hotel.ErrInvalidBasePrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Base price must be at least 100.0",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

func (h *HotelHandler) ListHotels(c *gin.Context) {
	summaries, err := h.hotelQueries.ListHotels(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.HotelListResponse, len(summaries))
	for i, s := range summaries {
		response[i] = resdto.FromHotelSummary(s)
	}
	c.JSON(http.StatusOK, response)
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
	view, err := h.hotelQueries.GetHotel(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// UpdateHotel handles renames and base-price edits; a request may carry one
// or both.
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	name := c.Param("name")

	var req reqdto.UpdateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.Name == nil && req.BasePrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nothing to update",
		})
		return
	}

	if err := h.hotelCommands.UpdateHotel(c.Request.Context(), name, req.Name, req.BasePrice); err != nil {
		h.respondHotelError(c, err)
		return
	}
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}

	view, err := h.hotelQueries.GetHotel(c.Request.Context(), name)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	if err := h.hotelCommands.RemoveHotel(c.Request.Context(), c.Param("name")); err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) AddRoom(c *gin.Context) {
	var req reqdto.AddRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.AddRoom(c.Request.Context(), c.Param("name"), req.Category)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Category must be standard, deluxe, or executive",
			})
		case errors.Is(err, hotel.ErrCapacityExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Hotel already has the maximum of 50 rooms",
			})
		default:
			h.respondHotelError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

func (h *HotelHandler) ListRooms(c *gin.Context) {
	views, err := h.hotelQueries.ListRooms(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondHotelError(c, err)
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRoomView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *HotelHandler) GetRoom(c *gin.Context) {
	view, err := h.hotelQueries.GetRoom(c.Request.Context(), c.Param("name"), c.Param("room"))
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *HotelHandler) DeleteRoom(c *gin.Context) {
	err := h.hotelCommands.RemoveRoom(c.Request.Context(), c.Param("name"), c.Param("room"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMinimumRooms):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Hotel must keep at least one room",
			})
		case errors.Is(err, hotel.ErrHasActiveReservations):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room has active reservations",
			})
		default:
			h.respondHotelError(c, err)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// respondHotelError maps the failures shared by most hotel endpoints.
func (h *HotelHandler) respondHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, memstore.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, memstore.ErrHotelAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A hotel with this name already exists",
		})
	case errors.Is(err, memstore.ErrHotelHasReservations):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Hotel has existing reservations",
		})
	case errors.Is(err, hotel.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, hotel.ErrHasActiveReservations):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Operation blocked by active reservations",
		})
	case errors.Is(err, hotel.ErrInvalidBasePrice):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Base price must be at least 100.0",
		})
	case errors.Is(err, hotel.ErrEmptyHotelName):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Hotel name cannot be empty",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
