package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"betonfit/coach-app/internal/domain"
	"betonfit/coach-app/internal/service"
)

// ProgrammeHandler holds the programme-related service dependencies.
type ProgrammeHandler struct {
	planner service.PlannerService
	export  service.ExportService
	share   service.ShareService
}

// NewProgrammeHandler creates a new ProgrammeHandler. export may be nil when
// no bucket is configured.
func NewProgrammeHandler(planner service.PlannerService, export service.ExportService, share service.ShareService) *ProgrammeHandler {
	return &ProgrammeHandler{planner: planner, export: export, share: share}
}

// --- DTOs ---

// GenerateRequest asks for a new programme for a stored intake.
type GenerateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Engine   string `json:"engine"`   // "beton" (default) or "llm"
	Sessions int    `json:"sessions"` // weekly override when availability is silent
	Debug    bool   `json:"debug"`
}

// GenerateResponse mirrors what the dashboard consumes. Profile is null and
// Sessions empty when generation failed: the endpoint degrades to an empty
// payload instead of surfacing internal errors.
type GenerateResponse struct {
	Profile  *domain.Profile  `json:"profile"`
	Sessions []domain.Session `json:"sessions"`
}

// emptyGenerateResponse is the degrade-to-empty payload.
func emptyGenerateResponse() GenerateResponse {
	return GenerateResponse{Profile: nil, Sessions: []domain.Session{}}
}

// Generate creates and stores a new programme.
// POST /api/v1/programmes/generate
func (h *ProgrammeHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	opts := service.GenerateOptions{
		Engine:           domain.Engine(req.Engine),
		SessionsOverride: req.Sessions,
		Debug:            req.Debug,
	}

	programme, err := h.planner.GenerateForEmail(c.Request.Context(), req.Email, opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEngine):
			abortWithError(c, http.StatusBadRequest, "Unknown generation engine.")
		case errors.Is(err, service.ErrEngineUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, "Generation engine unavailable.")
		default:
			// Availability over correctness signaling: the dashboard would
			// rather render an empty plan than an error page.
			log.Printf("ERROR: programme generation for %s: %v", req.Email, err)
			c.JSON(http.StatusOK, emptyGenerateResponse())
		}
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Profile: &programme.Profile, Sessions: programme.Sessions})
}

// GetLatest returns the most recent stored programme for an email.
// GET /api/v1/users/:email/programmes/latest
func (h *ProgrammeHandler) GetLatest(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		abortWithError(c, http.StatusBadRequest, "Email is required.")
		return
	}

	programme, err := h.planner.GetLatest(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrProgrammeNotFound) {
			abortWithError(c, http.StatusNotFound, "No programme stored for this email.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load programme.")
		}
		return
	}

	c.JSON(http.StatusOK, programme)
}

// Export uploads a programme as JSON to the export bucket and returns a
// presigned download URL.
// POST /api/v1/programmes/:id/export
func (h *ProgrammeHandler) Export(c *gin.Context) {
	if h.export == nil {
		abortWithError(c, http.StatusServiceUnavailable, "Export storage not configured.")
		return
	}

	url, err := h.export.ExportProgramme(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProgrammeNotFound) {
			abortWithError(c, http.StatusNotFound, "Programme not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to export programme.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Share mints a signed link for a stored programme.
// POST /api/v1/programmes/:id/share
func (h *ProgrammeHandler) Share(c *gin.Context) {
	id := c.Param("id")

	// Confirm the programme exists before handing out a token for it.
	if _, err := h.planner.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgrammeNotFound) {
			abortWithError(c, http.StatusNotFound, "Programme not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load programme.")
		}
		return
	}

	token, err := h.share.MintToken(id)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to mint share token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"url":   "/api/v1/shared/" + token,
	})
}

// GetShared resolves a share token to its programme. Mounted outside the
// API-key group.
// GET /api/v1/shared/:token
func (h *ProgrammeHandler) GetShared(c *gin.Context) {
	programmeID, err := h.share.VerifyToken(c.Param("token"))
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Share link invalid or expired.")
		return
	}

	programme, err := h.planner.GetByID(c.Request.Context(), programmeID)
	if err != nil {
		if errors.Is(err, service.ErrProgrammeNotFound) {
			abortWithError(c, http.StatusNotFound, "Programme not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load programme.")
		}
		return
	}

	c.JSON(http.StatusOK, programme)
}
