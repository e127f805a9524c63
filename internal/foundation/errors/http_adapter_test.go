package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorAdapter_StatusCodeFor(t *testing.T) {
	adapter := NewHTTPErrorAdapter(nil)

	assert.Equal(t, http.StatusOK, adapter.StatusCodeFor(nil))
	assert.Equal(t, http.StatusNotFound, adapter.StatusCodeFor(NotFoundError("x").Build()))
	assert.Equal(t, http.StatusBadRequest, adapter.StatusCodeFor(ValidationError("x").Build()))
	assert.Equal(t, http.StatusUnprocessableEntity, adapter.StatusCodeFor(RenderError("x").Build()))
	assert.Equal(t, http.StatusServiceUnavailable, adapter.StatusCodeFor(RuntimeError("x").Build()))
	assert.Equal(t, http.StatusInternalServerError, adapter.StatusCodeFor(stderrors.New("x")))
}

func TestHTTPErrorAdapter_WriteErrorResponse(t *testing.T) {
	adapter := NewHTTPErrorAdapter(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/docs/missing", nil)

	err := NotFoundError("page not found").WithContext("route", "/docs/missing").Build()
	adapter.WriteErrorResponse(rec, req, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "page not found", body.Error)
	assert.Equal(t, "not_found", body.Code)
	assert.Equal(t, "/docs/missing", body.Details["route"])
}
