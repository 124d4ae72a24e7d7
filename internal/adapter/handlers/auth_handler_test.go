package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridehub/internal/adapter/gateway"
	"ridehub/internal/common/middleware"
	"ridehub/internal/domain/services"
	"ridehub/internal/store"
)

const testSecret = "test-secret"

// newTestServer mirrors the production wiring with a zero-latency backend.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New()
	gw := gateway.New(0)

	authService := services.NewAuthService(gw, st, services.AuthConfig{
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
	}, logger)
	tripService := services.NewTripService(gw, st, services.NoopPublisher{}, services.NoopFeed{}, logger)
	vehicleService := services.NewVehicleService(gw, st, logger)
	driverService := services.NewDriverService(gw, st, services.NoopPublisher{}, services.NoopFeed{}, logger)

	authHandler := NewAuthHandler(authService, logger)
	tripHandler := NewTripHandler(tripService, logger)
	fleetHandler := NewFleetHandler(vehicleService, logger)
	driverHandler := NewDriverHandler(driverService, logger)
	routeHandler := NewRouteHandler(st)

	mux := http.NewServeMux()
	authHandler.SetupRoutes(mux)
	routeHandler.SetupRoutes(mux)

	authMiddleware := middleware.NewAuthMiddleware(testSecret)
	protected := http.NewServeMux()
	tripHandler.SetupRoutes(protected, authMiddleware.RequireRole)
	fleetHandler.SetupRoutes(protected, authMiddleware.RequireRole)
	driverHandler.SetupRoutes(protected, authMiddleware.RequireRole)
	protected.HandleFunc("GET /auth/profile", authHandler.Profile)
	mux.Handle("/", authMiddleware.Wrap(protected))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func postJSON(t *testing.T, url, body, token string) *http.Response {
	t.Helper()
	return doJSON(t, http.MethodPost, url, body, token)
}

func getJSON(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestLoginSuccess(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/auth/login", `{"email":"customer@example.com","password":"password"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "1", body.User.ID)
	assert.Equal(t, "customer", body.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/auth/login", `{"email":"customer@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/auth/login", `{"email":"customer@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	resp := getJSON(t, srv.URL+"/auth/profile", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	srv := newTestServer(t)

	login := postJSON(t, srv.URL+"/auth/login", `{"email":"driver@example.com","password":"password"}`, "")
	require.Equal(t, http.StatusOK, login.StatusCode)
	var auth struct {
		Token string `json:"token"`
	}
	decodeBody(t, login, &auth)

	resp := getJSON(t, srv.URL+"/auth/profile", auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decodeBody(t, resp, &user)
	assert.Equal(t, "driver@example.com", user.Email)
	assert.Equal(t, "driver", user.Role)
}

func TestTripsRejectGarbageToken(t *testing.T) {
	srv := newTestServer(t)

	resp := getJSON(t, srv.URL+"/trips", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouteResolveUnauthenticated(t *testing.T) {
	srv := newTestServer(t)

	resp := getJSON(t, srv.URL+"/routes/resolve?path=/admin", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decision struct {
		Allow      bool   `json:"allow"`
		RedirectTo string `json:"redirect_to"`
	}
	decodeBody(t, resp, &decision)
	assert.False(t, decision.Allow)
	assert.Equal(t, "/login", decision.RedirectTo)
}

func TestRouteResolveAfterLogin(t *testing.T) {
	srv := newTestServer(t)

	login := postJSON(t, srv.URL+"/auth/login", `{"email":"driver@example.com","password":"password"}`, "")
	require.Equal(t, http.StatusOK, login.StatusCode)

	// The driver asking for the admin view lands on their own dashboard.
	resp := getJSON(t, srv.URL+"/routes/resolve?path=/admin", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decision struct {
		Allow      bool   `json:"allow"`
		RedirectTo string `json:"redirect_to"`
	}
	decodeBody(t, resp, &decision)
	assert.False(t, decision.Allow)
	assert.Equal(t, "/dashboard", decision.RedirectTo)
}
