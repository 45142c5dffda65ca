package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/internal/utils"
	"github.com/MKhiriev/go-tasklist/models"
	"github.com/go-chi/chi/v5"
)

const maxOrganizationBodySize = 1 << 20

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	organizations, err := h.services.OrganizationService.ListOrganizations(r.Context())
	if err != nil {
		log.Err(err).Msg("list organizations failed")
		writeError(w, err)
		return
	}

	if organizations == nil {
		organizations = []models.Organization{}
	}
	if _, err = utils.WriteJSON(w, organizations, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing organizations")
	}
}

func (h *Handler) createOrganization(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	created, err := h.services.OrganizationService.CreateOrganization(r.Context())
	if err != nil {
		log.Err(err).Msg("create organization failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created organization")
	}
}

func (h *Handler) activateOrganization(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	oldName, err := pathParam(r, paramOldName)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	if err = h.services.OrganizationService.ActivateOrganization(r.Context(), oldName); err != nil {
		log.Err(err).Str("organization", oldName).Msg("activate organization failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateOrganization(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	oldName, err := pathParam(r, paramOldName)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	var org models.Organization
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOrganizationBodySize))
	if err = decoder.Decode(&org); err != nil {
		log.Err(err).Msg("error decoding organization")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err = h.services.OrganizationService.UpdateOrganization(r.Context(), oldName, org); err != nil {
		log.Err(err).Str("organization", oldName).Msg("update organization failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathParam returns the decoded route parameter. chi matches on RawPath when
// the request path carried escapes, in which case the value is still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, nil
	}

	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidPathParameter, name, err)
	}
	return unescaped, nil
}
