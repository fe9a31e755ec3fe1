package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// SemesterHandler handles REST API for semesters.
type SemesterHandler struct {
	svc service.SemesterServicer
	log *zap.Logger
}

// NewSemesterHandler creates a semester handler.
func NewSemesterHandler(svc service.SemesterServicer, log *zap.Logger) *SemesterHandler {
	return &SemesterHandler{svc: svc, log: log}
}

// Create godoc
// POST /semesters (admin)
func (h *SemesterHandler) Create(c *gin.Context) {
	var req model.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	semester, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSemesterResponse(semester))
}

// List godoc
// GET /semesters
func (h *SemesterHandler) List(c *gin.Context) {
	semesters, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out := make([]model.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, model.NewSemesterResponse(&semesters[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// GET /semesters/:id
func (h *SemesterHandler) Get(c *gin.Context) {
	semester, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSemesterResponse(semester))
}

// Update godoc
// PUT /semesters/:id (admin)
func (h *SemesterHandler) Update(c *gin.Context) {
	var req model.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	semester, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSemesterResponse(semester))
}

// Delete godoc
// DELETE /semesters/:id?cascade=true (admin)
func (h *SemesterHandler) Delete(c *gin.Context) {
	cascade := c.Query("cascade") == "true"
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), cascade); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
