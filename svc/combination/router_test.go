package combination_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekcheck/trekcheck/handler"
	"github.com/trekcheck/trekcheck/pkg/ratelimiter"
	"github.com/trekcheck/trekcheck/pkg/requestid"
	"github.com/trekcheck/trekcheck/svc/combination"
)

type reportEnvelope struct {
	Data  *combination.Report  `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func serve(t *testing.T, h http.Handler, r *http.Request) (*httptest.ResponseRecorder, reportEnvelope) {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var env reportEnvelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHandleCheck(t *testing.T) {
	t.Parallel()

	h := newService(t, "nl").Handle()

	t.Run("json body", func(t *testing.T) {
		t.Parallel()

		body := `{"license":"B","lang":"en","car_mass":1500,"car_unbraked":"700","car_braked":1500,"trailer_mass":"600"}`
		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")

		w, env := serve(t, h, r)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotNil(t, env.Data)
		assert.True(t, env.Data.IsValid)
		assert.Equal(t, "en", env.Data.Lang)
		assert.Equal(t, 2100, env.Data.TotalWeight)
		assert.NotEmpty(t, w.Header().Get(requestid.Header))
	})

	t.Run("rdw records", func(t *testing.T) {
		t.Parallel()

		body := `{
			"license": "B",
			"car": {"kenteken": "AB123C", "toegestane_maximum_massa_voertuig": "3000", "maximum_trekken_massa_geremd": "1500"},
			"trailer": {"toegestane_maximum_massa_voertuig": 1000}
		}`
		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept-Language", "en-GB,en;q=0.9")

		w, env := serve(t, h, r)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.False(t, env.Data.IsValid)
		assert.Equal(t, []string{"Total weight (4000kg) exceeds the limit for license B (3500kg)"}, env.Data.Errors)
		assert.Equal(t, "AB123C", env.Data.Car.PlateID)
	})

	t.Run("form body uses negotiated locale", func(t *testing.T) {
		t.Parallel()

		form := url.Values{
			"license":      {"B"},
			"car_mass":     {"1500"},
			"car_unbraked": {"700"},
			"trailer_mass": {"600"},
		}
		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w, env := serve(t, h, r)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "nl", env.Data.Lang)
		assert.Contains(t, env.Data.Successes, "Totaalgewicht (2100kg) is toegestaan voor rijbewijs B")
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/check?lang=en", strings.NewReader(`{"license":"Z","car_mass":1500}`))
		r.Header.Set("Content-Type", "application/json")

		w, env := serve(t, h, r)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, []string{"must be one of: B, B96, BE, C1E"}, env.Error.Details["license"])
	})

	t.Run("unknown json field", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{"license":"B","colour":"red"}`))
		r.Header.Set("Content-Type", "application/json")

		w, env := serve(t, h, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", env.Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader("license=B"))
		r.Header.Set("Content-Type", "text/plain")

		w, _ := serve(t, h, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		w, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/check", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "method_not_allowed", env.Error.Code)
	})
}

func TestHandleLicenses(t *testing.T) {
	t.Parallel()

	h := newService(t, "en").Handle()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/licenses", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []struct {
			Label                string `json:"label"`
			MaxCombinationWeight int    `json:"max_combination_weight"`
		} `json:"data"`
		Meta map[string]any `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 4)
	assert.Equal(t, "BE", env.Data[2].Label)
	assert.Equal(t, 7000, env.Data[2].MaxCombinationWeight)
	assert.Equal(t, float64(4), env.Meta["count"])
}

func TestHandleSchema(t *testing.T) {
	t.Parallel()

	h := newService(t, "en").Handle()

	for _, name := range combination.SchemaNames {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schema/"+name, nil))
		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, "application/schema+json", w.Header().Get("Content-Type"))
		assert.True(t, json.Valid(w.Body.Bytes()), name)
	}

	w, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/schema/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", env.Error.Code)
}

func TestHandleHealthAndNotFound(t *testing.T) {
	t.Parallel()

	h := newService(t, "en").Handle()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())

	w, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", env.Error.Code)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	data, err := combination.Schema(combination.SchemaRequest)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Check request", doc["title"])
	props := doc["properties"].(map[string]any)
	assert.Contains(t, props, "license")
	mass := props["car_mass"].(map[string]any)
	assert.Len(t, mass["oneOf"], 3)

	_, err = combination.Schema("nope")
	assert.ErrorIs(t, err, combination.ErrUnknownSchema)
}

func TestHandleCheckRateLimited(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimiter.New(ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)
	h := newService(t, "en",
		combination.WithRateLimiter(limiter),
		combination.WithTrustedProxyHeaders("X-Forwarded-For"),
	).Handle()

	post := func(ip string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{"license":"B"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("X-Forwarded-For", ip)
		return r
	}

	for range 2 {
		w, _ := serve(t, h, post("198.51.100.1"))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w, env := serve(t, h, post("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "too_many_requests", env.Error.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	w, _ = serve(t, h, post("198.51.100.2"))
	assert.Equal(t, http.StatusOK, w.Code)

	// Other routes are not limited.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/licenses", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
