package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotel-reservation-core/internal/domain/hotel"
	"hotel-reservation-core/internal/domain/pricing"
	"hotel-reservation-core/internal/domain/reservation"
	reqdto "hotel-reservation-core/internal/handler/dto/request"
	resdto "hotel-reservation-core/internal/handler/dto/response"
	"hotel-reservation-core/internal/handler/httperr"
	"hotel-reservation-core/internal/infra/memstore"
	"hotel-reservation-core/internal/usecase/commands"
	"hotel-reservation-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	hotelQueries    queries.HotelQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, hotelQueries queries.HotelQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		hotelQueries:    hotelQueries,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must use the yyyy-mm-dd format",
		})
		return
	}

	view, err := h.bookingCommands.Book(c.Request.Context(), c.Param("name"), commands.BookParams{
		GuestName:    req.GuestName,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Category:     req.Category,
		DiscountCode: req.GetDiscountCode(),
	})
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, hotel.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking date range",
			})
		case errors.Is(err, hotel.ErrNoRoomAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No room of the requested category is available",
			})
		case errors.Is(err, hotel.ErrDuplicateReservation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Guest already has a reservation starting that day",
			})
		case errors.Is(err, pricing.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Category must be standard, deluxe, or executive",
			})
		case errors.Is(err, reservation.ErrEmptyGuestName), errors.Is(err, reservation.ErrGuestNameTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid guest name",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, err := reqdto.ParseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must use the yyyy-mm-dd format",
		})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), c.Param("name"), req.GuestName, checkIn); err != nil {
		switch {
		case errors.Is(err, memstore.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, hotel.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) GetReservation(c *gin.Context) {
	checkIn, err := reqdto.ParseDate(c.Query("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "checkIn query parameter must use the yyyy-mm-dd format",
		})
		return
	}

	view, err := h.hotelQueries.GetReservation(c.Request.Context(), c.Param("name"), c.Param("guest"), checkIn)
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, hotel.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *BookingHandler) GetEarnings(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "month query parameter must be between 1 and 12",
		})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "year query parameter is required",
		})
		return
	}

	view, err := h.hotelQueries.EarningsForMonth(c.Request.Context(), c.Param("name"), time.Month(month), year)
	if err != nil {
		if errors.Is(err, memstore.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEarningsView(view))
}

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter must use the yyyy-mm-dd format",
		})
		return
	}

	view, err := h.hotelQueries.AvailabilityOn(c.Request.Context(), c.Param("name"), date)
	if err != nil {
		if errors.Is(err, memstore.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
