package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	usecasemocks "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVisitorID = "0b7f5c8e-3a47-4a8e-9a43-7d0f6a2b9c11"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		VisitorID string `json:"visitor_id"`
	} `json:"meta"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStorefrontMock(t *testing.T) *usecasemocks.MockStorefront {
	t.Helper()

	sf := usecasemocks.NewMockStorefront(t)
	sf.EXPECT().VisitorID().Return(testVisitorID).Maybe()

	return sf
}

// newContext builds an echo context with the storefront attached the way the
// visitor middleware would.
func newContext(t *testing.T, method, target, body string, sf *usecasemocks.MockStorefront) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sf != nil {
		deliverycontext.SetStorefront(c, sf)
	}

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decode(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/health", "", nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data map[string]string
	decodeData(t, rec, &data)
	assert.Equal(t, "ok", data["status"])
}

func TestCurrentStorefront_Missing(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/cart", "", nil)

	_, err := currentStorefront(c)
	assert.Error(t, err)
}

func TestParseProductID(t *testing.T) {
	tests := []struct {
		param  string
		wantID int64
		wantOK bool
	}{
		{param: "42", wantID: 42, wantOK: true},
		{param: "1712345678901", wantID: 1712345678901, wantOK: true},
		{param: "0"},
		{param: "-3"},
		{param: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			c, _ := newContext(t, http.MethodGet, "/", "", nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			id, ok := parseProductID(c)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
