package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tasklist/internal/service"
	"github.com/MKhiriev/go-tasklist/internal/store"
	"github.com/MKhiriev/go-tasklist/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidPathParameter: http.StatusBadRequest,
	ErrInvalidJSON:          http.StatusBadRequest,

	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrNameGenerationFailed: http.StatusConflict,

	store.ErrOrganizationNotFound:      http.StatusNotFound,
	store.ErrOrganizationAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingList:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry the
// error text as message; server errors only the status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	utils.WriteError(w, message, status)
}
