package api

import (
	"encoding/json"
	"net/http"

	"medlink/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps the error's machine code to an HTTP status.
func respondError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)

	var status int
	switch code {
	case errors.CodeInvalidArgument:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeAlreadyExists:
		status = http.StatusConflict
	case errors.CodePermissionDenied:
		status = http.StatusForbidden
	case errors.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case errors.CodeFailedPrecondition:
		status = http.StatusPreconditionFailed
	default:
		status = http.StatusInternalServerError
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		msg = "internal error"
	}
	respondJSON(w, status, errorBody{Code: string(code), Message: msg})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.InvalidArg("invalid request body")
	}
	return nil
}
