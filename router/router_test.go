// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/avurudu-games/models"
	"github.com/danielhkuo/avurudu-games/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	for _, path := range []string{"/health", "/api/health"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.HealthResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Status != "ok" {
				t.Errorf("Expected status 'ok', got '%s'", resp.Status)
			}
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	expected := "avurudu-games API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("Expected default Go collectors in /metrics output")
	}
}

func TestRouteExistence(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/api/health"},
		{"GET", "/api/games"},
		{"POST", "/api/register"},
		{"GET", "/api/admin/auth-test"},
		{"GET", "/api/admin/participants"},
		{"GET", "/api/admin/participants/some-id"},
		{"DELETE", "/api/admin/participants/some-id"},
		{"GET", "/api/admin/games"},
		{"POST", "/api/admin/games"},
		{"GET", "/api/admin/games/1"},
		{"PUT", "/api/admin/games/1"},
		{"DELETE", "/api/admin/games/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			// 400, 401, 404 are all valid responses depending on handler logic
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/api/games"},
		{"PUT", "/api/register"},
		{"POST", "/api/admin/participants/some-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	paths := []string{
		"/api/admin/auth-test",
		"/api/admin/participants",
		"/api/admin/games",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest("GET", path, nil, testutil.AdminHeaders()))
			testutil.AssertStatus(t, w, http.StatusOK)
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	client := testutil.SetupTestStore(t)
	mux := NewRouter(client, testutil.GetTestConfig())

	gameID := testutil.GameID(t, client, "Tug of War")
	participant := testutil.RegisterTestParticipant(t, client, "Nimal", "Tug of War")

	t.Run("game ID extraction", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/admin/games/"+strconv.FormatInt(gameID, 10), nil, testutil.AdminHeaders()))

		testutil.AssertStatus(t, w, http.StatusOK)
		var game models.Game
		testutil.AssertJSON(t, w, &game)
		if game.ID != gameID {
			t.Errorf("Expected game %d, got %d", gameID, game.ID)
		}
	})

	t.Run("participant ID extraction", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/admin/participants/"+participant.ID, nil, testutil.AdminHeaders()))

		testutil.AssertStatus(t, w, http.StatusOK)
		var p models.Participant
		testutil.AssertJSON(t, w, &p)
		if p.ID != participant.ID {
			t.Errorf("Expected participant %s, got %s", participant.ID, p.ID)
		}
	})
}
