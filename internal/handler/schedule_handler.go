package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// ScheduleHandler handles REST API for game-session schedules.
type ScheduleHandler struct {
	svc service.ScheduleServicer
	log *zap.Logger
}

// NewScheduleHandler creates a schedule handler.
func NewScheduleHandler(svc service.ScheduleServicer, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: log}
}

type createScheduleResponse struct {
	Schedule model.ScheduleResponse      `json:"schedule"`
	Sessions []model.GameSessionResponse `json:"sessions"`
}

// Create godoc
// POST /game-session-schedules (admin). Materializes the semester's sessions.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req model.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	schedule, sessions, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]model.GameSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, model.NewGameSessionResponse(session, 0, 0))
	}
	c.JSON(http.StatusCreated, createScheduleResponse{Schedule: model.NewScheduleResponse(schedule), Sessions: out})
}

// Get godoc
// GET /game-session-schedules/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewScheduleResponse(schedule))
}

// ListBySemester godoc
// GET /semesters/:id/schedules
func (h *ScheduleHandler) ListBySemester(c *gin.Context) {
	schedules, err := h.svc.ListBySemester(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]model.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, model.NewScheduleResponse(&schedules[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update godoc
// PUT /game-session-schedules/:id (admin)
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req model.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	schedule, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewScheduleResponse(schedule))
}

// Delete godoc
// DELETE /game-session-schedules/:id?cascade=true (admin)
func (h *ScheduleHandler) Delete(c *gin.Context) {
	cascade := c.Query("cascade") == "true"
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), cascade); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
