package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/auth"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// BookingHandler handles REST API for the caller's bookings.
type BookingHandler struct {
	svc service.BookingServicer
	log *zap.Logger
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(svc service.BookingServicer, log *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

// Create godoc
// POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	booking, err := h.svc.Create(c.Request.Context(), auth.UserIDFrom(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewBookingResponse(booking))
}

// List godoc
// GET /bookings (caller's own)
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.svc.ListForUser(c.Request.Context(), auth.UserIDFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]model.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, model.NewBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update godoc
// PATCH /bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	var req model.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	booking, err := h.svc.Update(c.Request.Context(), auth.UserIDFrom(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewBookingResponse(booking))
}

// Delete godoc
// DELETE /bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), auth.UserIDFrom(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
