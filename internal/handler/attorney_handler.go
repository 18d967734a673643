package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/service"
)

type attorneyPayload struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"image_url"`
	DisplayOrder   int    `json:"display_order"`
}

func (p attorneyPayload) toInput() service.AttorneyInput {
	return service.AttorneyInput{
		Name:           p.Name,
		Role:           p.Role,
		Specialization: p.Specialization,
		Bio:            p.Bio,
		ImageURL:       p.ImageURL,
		DisplayOrder:   p.DisplayOrder,
	}
}

// GetAttorneys lists attorney profiles, with an optional name search.
func (a *API) GetAttorneys(c *gin.Context) {
	attorneys, err := a.attorneys.List(c.Query("search"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list attorneys")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attorneys": attorneys})
}

// GetAttorney fetches one attorney profile by id.
func (a *API) GetAttorney(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid attorney id")
		return
	}

	attorney, err := a.attorneys.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrAttorneyNotFound) {
			respondError(c, http.StatusNotFound, "attorney not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch attorney")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attorney": attorney})
}

// CreateAttorney creates an attorney profile.
func (a *API) CreateAttorney(c *gin.Context) {
	var payload attorneyPayload
	if !bindJSON(c, &payload, "invalid attorney payload") {
		return
	}

	attorney, err := a.attorneys.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrAttorneyValidation) {
			respondError(c, http.StatusBadRequest, "name, role, and specialization are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create attorney")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attorney": attorney})
}

// UpdateAttorney applies edits to an attorney profile.
func (a *API) UpdateAttorney(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid attorney id")
		return
	}

	var payload attorneyPayload
	if !bindJSON(c, &payload, "invalid attorney payload") {
		return
	}

	attorney, err := a.attorneys.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttorneyNotFound):
			respondError(c, http.StatusNotFound, "attorney not found")
		case errors.Is(err, service.ErrAttorneyValidation):
			respondError(c, http.StatusBadRequest, "name, role, and specialization are required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update attorney")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"attorney": attorney})
}

// DeleteAttorney removes an attorney profile permanently.
func (a *API) DeleteAttorney(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid attorney id")
		return
	}

	if err := a.attorneys.Delete(id); err != nil {
		if errors.Is(err, service.ErrAttorneyNotFound) {
			respondError(c, http.StatusNotFound, "attorney not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete attorney")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attorney deleted"})
}
