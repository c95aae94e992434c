package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medlink/pkg/errors"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid argument", errors.InvalidArg("bad"), 400},
		{"not found", errors.NotFound("missing"), 404},
		{"already exists", errors.AlreadyExists("dup"), 409},
		{"forbidden", errors.Forbidden("no"), 403},
		{"unauthenticated", errors.Unauthorized("who"), 401},
		{"internal", errors.Internal("boom"), 500},
		{"plain error", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.Wrap(errors.CodeInternal, "db exploded", assert.AnError))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "internal error", body.Message)
}

func TestRespondErrorExposesClientDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, errors.InvalidArg("content cannot be empty"))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_ARGUMENT", body.Code)
	assert.Equal(t, "content cannot be empty", body.Message)
}
