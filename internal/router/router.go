package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UoaWDCC/uabc-web-sub002/internal/auth"
	"github.com/UoaWDCC/uabc-web-sub002/internal/handler"
	"github.com/UoaWDCC/uabc-web-sub002/pkg/constants"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Semester *handler.SemesterHandler
	Schedule *handler.ScheduleHandler
	Session  *handler.GameSessionHandler
	Booking  *handler.BookingHandler
	Health   *handler.HealthHandler
}

// New builds the HTTP router.
func New(tokens *auth.Manager, h Handlers) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET(constants.PathHealth, h.Health.Health)
	r.GET(constants.PathReady, h.Health.Ready)

	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)

	authed := r.Group("", auth.RequireAuth(tokens))
	{
		authed.GET("/me", h.Auth.Me)

		bookings := authed.Group("/bookings")
		{
			bookings.POST("", h.Booking.Create)
			bookings.GET("", h.Booking.List)
			bookings.PATCH("/:id", h.Booking.Update)
			bookings.DELETE("/:id", h.Booking.Delete)
		}

		// Read paths available to any authenticated user.
		authed.GET("/semesters", h.Semester.List)
		authed.GET("/semesters/:id", h.Semester.Get)
		authed.GET("/semesters/:id/schedules", h.Schedule.ListBySemester)
		authed.GET("/semesters/:id/sessions", h.Session.ListBySemester)
		authed.GET("/game-session-schedules/:id", h.Schedule.Get)
		authed.GET("/game-sessions/:id", h.Session.Get)

		admin := authed.Group("", auth.RequireAdmin())
		{
			admin.POST("/semesters", h.Semester.Create)
			admin.PUT("/semesters/:id", h.Semester.Update)
			admin.DELETE("/semesters/:id", h.Semester.Delete)

			admin.POST("/game-session-schedules", h.Schedule.Create)
			admin.PUT("/game-session-schedules/:id", h.Schedule.Update)
			admin.DELETE("/game-session-schedules/:id", h.Schedule.Delete)

			admin.POST("/game-sessions", h.Session.Create)
			admin.PATCH("/game-sessions/:id", h.Session.Update)
			admin.DELETE("/game-sessions/:id", h.Session.Delete)

			admin.PATCH("/users/:id", h.Auth.UpdateUser)
		}
	}

	return r
}
