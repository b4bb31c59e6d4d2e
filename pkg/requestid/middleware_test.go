package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekcheck/trekcheck/pkg/logger"
	"github.com/trekcheck/trekcheck/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUIDv7 when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		assert.Equal(t, ctxID, respID)

		parsed, err := uuid.Parse(ctxID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	})

	t.Run("keeps a valid client id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "check_42-abc")
		assert.Equal(t, "check_42-abc", ctxID)
		assert.Equal(t, "check_42-abc", respID)
	})

	invalid := map[string]string{
		"spaces":      "not valid",
		"injection":   "abc\r\nX-Evil: 1",
		"punctuation": "abc;drop",
		"too long":    strings.Repeat("a", 129),
	}
	for name, header := range invalid {
		t.Run("replaces "+name, func(t *testing.T) {
			t.Parallel()
			ctxID, respID := serve(t, header)
			assert.NotEqual(t, header, ctxID)
			assert.Equal(t, ctxID, respID)
			_, err := uuid.Parse(ctxID)
			assert.NoError(t, err)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "abc", requestid.FromContext(requestid.WithContext(context.Background(), "abc")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-7"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
}
