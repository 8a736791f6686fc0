package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"betonfit/coach-app/internal/domain"
	"betonfit/coach-app/internal/service"
)

// IntakeHandler holds the service dependency for questionnaire answers.
type IntakeHandler struct {
	planner service.PlannerService
}

// NewIntakeHandler creates a new IntakeHandler.
func NewIntakeHandler(planner service.PlannerService) *IntakeHandler {
	return &IntakeHandler{planner: planner}
}

// IntakeRequest accepts the questionnaire answers. Older intake-form versions
// sent the same answers under different field names (objectif/col_G,
// dispo, …); every variant is accepted here and mapped onto the canonical
// fields exactly once. Nothing past this DTO ever sees the legacy names.
type IntakeRequest struct {
	Objective    string   `json:"objective"`
	Availability string   `json:"availability"`
	Injuries     string   `json:"injuries"`
	Equipment    string   `json:"equipment"`
	Level        string   `json:"level"`
	TimePerDay   int      `json:"timePerDay"`
	Likes        []string `json:"likes"`
	Dislikes     []string `json:"dislikes"`

	// Legacy aliases, still sent by the v1 form and the spreadsheet import.
	Objectif  string `json:"objectif"`
	ColG      string `json:"col_G"`
	Dispo     string `json:"dispo"`
	Blessures string `json:"blessures"`
	Materiel  string `json:"materiel"`
	Niveau    string `json:"niveau"`
}

// firstNonEmpty returns the first non-blank value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// toDomain resolves the alias fields into one canonical Intake.
func (r IntakeRequest) toDomain(email string) domain.Intake {
	return domain.Intake{
		Email:        email,
		Objective:    firstNonEmpty(r.Objective, r.Objectif, r.ColG),
		Availability: firstNonEmpty(r.Availability, r.Dispo),
		InjuriesText: firstNonEmpty(r.Injuries, r.Blessures),
		EquipText:    firstNonEmpty(r.Equipment, r.Materiel),
		LevelText:    firstNonEmpty(r.Level, r.Niveau),
		TimePerDay:   r.TimePerDay,
		Likes:        r.Likes,
		Dislikes:     r.Dislikes,
	}
}

// UpsertIntake stores (or replaces) the answers for an email.
// PUT /api/v1/intake/:email
func (h *IntakeHandler) UpsertIntake(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		abortWithError(c, http.StatusBadRequest, "Email is required.")
		return
	}

	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	intake := req.toDomain(email)
	if err := h.planner.SaveIntake(c.Request.Context(), &intake); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save intake.")
		return
	}

	c.JSON(http.StatusOK, intake)
}

// GetIntake returns the stored answers for an email.
// GET /api/v1/intake/:email
func (h *IntakeHandler) GetIntake(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		abortWithError(c, http.StatusBadRequest, "Email is required.")
		return
	}

	intake, err := h.planner.GetIntake(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrIntakeNotFound) {
			abortWithError(c, http.StatusNotFound, "No intake stored for this email.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load intake.")
		}
		return
	}

	c.JSON(http.StatusOK, intake)
}
