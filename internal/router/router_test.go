package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"detailwave.be/booking-api/pkg/cart"
	"detailwave.be/booking-api/pkg/mailer"
	"detailwave.be/booking-api/pkg/models"
)

type stubSender struct {
	calls   int
	lastReq *models.BookingRequest
	err     error
}

func (s *stubSender) SendBooking(_ context.Context, req *models.BookingRequest) (*mailer.Receipt, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &mailer.Receipt{ID: "re_test_123"}, nil
}

func setupTest(t *testing.T) *stubSender {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Router = gin.New()
	Carts = cart.NewMemoryStore(time.Minute)
	stub := &stubSender{}
	Mail = stub
	InitializeRoutes()
	return stub
}

func perform(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	Router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}
