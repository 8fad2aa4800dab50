package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-core/internal/handler/api"
	"hotel-reservation-core/internal/handler/middleware"
	"hotel-reservation-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, hotelHandler *api.HotelHandler, bookingHandler *api.BookingHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, hotelHandler, bookingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, hotelHandler *api.HotelHandler, bookingHandler *api.BookingHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.CreateHotel},
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:name", Handler: hotelHandler.GetHotel},
				{Method: http.MethodPatch, Path: "/:name", Handler: hotelHandler.UpdateHotel},
				{Method: http.MethodDelete, Path: "/:name", Handler: hotelHandler.DeleteHotel},
				{Method: http.MethodPost, Path: "/:name/rooms", Handler: hotelHandler.AddRoom},
				{Method: http.MethodGet, Path: "/:name/rooms", Handler: hotelHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:name/rooms/:room", Handler: hotelHandler.GetRoom},
				{Method: http.MethodDelete, Path: "/:name/rooms/:room", Handler: hotelHandler.DeleteRoom},
				{Method: http.MethodPost, Path: "/:name/bookings", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodDelete, Path: "/:name/bookings", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/:name/bookings/:guest", Handler: bookingHandler.GetReservation},
				{Method: http.MethodGet, Path: "/:name/earnings", Handler: bookingHandler.GetEarnings},
				{Method: http.MethodGet, Path: "/:name/availability", Handler: bookingHandler.GetAvailability},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
