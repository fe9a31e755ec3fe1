package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// GameSessionHandler handles REST API for game sessions.
type GameSessionHandler struct {
	svc service.GameSessionServicer
	log *zap.Logger
}

// NewGameSessionHandler creates a game session handler.
func NewGameSessionHandler(svc service.GameSessionServicer, log *zap.Logger) *GameSessionHandler {
	return &GameSessionHandler{svc: svc, log: log}
}

func (h *GameSessionHandler) toResponse(c *gin.Context, session *model.GameSession) (model.GameSessionResponse, error) {
	total, casualCount, err := h.svc.Attendance(c.Request.Context(), session.ID)
	if err != nil {
		return model.GameSessionResponse{}, err
	}
	return model.NewGameSessionResponse(session, total, casualCount), nil
}

// Create godoc
// POST /game-sessions (admin, ad-hoc session)
func (h *GameSessionHandler) Create(c *gin.Context) {
	var req model.CreateGameSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewGameSessionResponse(session, 0, 0))
}

// Get godoc
// GET /game-sessions/:id
func (h *GameSessionHandler) Get(c *gin.Context) {
	session, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	resp, err := h.toResponse(c, session)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBySemester godoc
// GET /semesters/:id/sessions
func (h *GameSessionHandler) ListBySemester(c *gin.Context) {
	sessions, err := h.svc.ListBySemester(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]model.GameSessionResponse, 0, len(sessions))
	for i := range sessions {
		resp, err := h.toResponse(c, &sessions[i])
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

// Update godoc
// PATCH /game-sessions/:id (admin)
func (h *GameSessionHandler) Update(c *gin.Context) {
	var req model.UpdateGameSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	resp, err := h.toResponse(c, session)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// DELETE /game-sessions/:id?cascade=true (admin)
func (h *GameSessionHandler) Delete(c *gin.Context) {
	cascade := c.Query("cascade") == "true"
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), cascade); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
