package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harborlaw/website/internal/service"
)

// GetContacts lists submissions for triage, with optional status and search
// filters.
func (a *API) GetContacts(c *gin.Context) {
	submissions, err := a.contacts.List(c.Query("status"), c.Query("search"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, "unknown status filter")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to list submissions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": submissions})
}

// GetContact fetches one submission by id.
func (a *API) GetContact(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	submission, err := a.contacts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "submission not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": submission})
}

// UpdateContactStatus moves a submission between triage states.
func (a *API) UpdateContactStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &payload, "invalid status payload") {
		return
	}

	submission, err := a.contacts.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, http.StatusNotFound, "submission not found")
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "unknown status")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update submission")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": submission})
}

// DeleteContact removes a submission permanently.
func (a *API) DeleteContact(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "submission not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete submission")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "submission deleted"})
}
