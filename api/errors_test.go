package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

type envelopeTestOutput struct {
	Body struct {
		Success bool `json:"success"`
	}
}

func newFailingTestAPI(t *testing.T, err error) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "envelope-test",
		Method:      http.MethodGet,
		Path:        "/envelope-test",
	}, func(ctx context.Context, _ *struct{}) (*envelopeTestOutput, error) {
		return nil, err
	})
	return api
}

func TestErrorEnvelope_Shape(t *testing.T) {
	api := newFailingTestAPI(t, huma.NewError(http.StatusForbidden, "budget is locked"))

	resp := api.Get("/envelope-test")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "budget is locked", body["message"])
	assert.NotContains(t, body, "title", "RFC 7807 fields must not leak")
	assert.NotContains(t, body, "detail", "RFC 7807 fields must not leak")
}

func TestErrorEnvelope_WrappedCausesStayServerSide(t *testing.T) {
	cause := errors.New("pq: connection refused")
	api := newFailingTestAPI(t, huma.NewError(http.StatusInternalServerError, "failed to list budgets", cause))

	resp := api.Get("/envelope-test")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection refused")
}

func TestErrorEnvelope_StatusAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := huma.NewError(http.StatusBadRequest, "invalid amount", cause)

	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
	assert.Equal(t, "invalid amount", err.Error())
	assert.ErrorIs(t, err, cause)
}
