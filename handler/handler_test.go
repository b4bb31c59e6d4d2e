package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekcheck/trekcheck/handler"
	"github.com/trekcheck/trekcheck/pkg/binder"
)

type echoRequest struct {
	License string `json:"license" form:"license"`
}

func echo(_ handler.Context, req echoRequest) handler.Response {
	return handler.JSON(req)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, echoRequest](echo),
		handler.WithBinders[handler.Context, echoRequest](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, echoRequest](handler.NewErrorHandler(slog.New(slog.DiscardHandler))),
	)

	t.Run("json body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"license":"BE"}`))
		r.Header.Set("Content-Type", "application/json")
		h(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"license":"BE"}}`, w.Body.String())
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("license=B"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		h(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"license":"B"}}`, w.Body.String())
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("license B"))
		r.Header.Set("Content-Type", "text/plain")
		h(w, r)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"license":`))
		r.Header.Set("Content-Type", "application/json")
		h(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "bad_request", got.Error.Code)
	})
}

func TestWrapWithoutBinders(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(ctx handler.Context, _ struct{}) handler.Response {
		called = true
		assert.NotNil(t, ctx.Request())
		assert.NotNil(t, ctx.ResponseWriter())
		return handler.JSON("ok")
	}))

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWrapNilResponse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response { return nil }),
		handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(log)),
	)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), handler.ErrNilResponse.Error())
	assert.Contains(t, buf.String(), `"path":"/x"`)
}

func TestWrapDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			order = append(order, "handler")
			return handler.JSON(nil)
		}),
		handler.WithDecorators(mark("outer"), mark("inner")),
	)

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestDefaultErrorHandler(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, echoRequest](func(handler.Context, echoRequest) handler.Response { return handler.JSON(nil) }),
		handler.WithBinders[handler.Context, echoRequest](binder.JSON()),
	)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
	r.Header.Set("Content-Type", "text/plain")
	h(w, r)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported_media_type")
}
