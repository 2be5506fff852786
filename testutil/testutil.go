// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/avurudu-games/cliparse"
	"github.com/danielhkuo/avurudu-games/db"
	"github.com/danielhkuo/avurudu-games/models"
	"github.com/danielhkuo/avurudu-games/store"
)

// Admin credentials used by GetTestConfig
const (
	TestAdminUser     = "admin"
	TestAdminPassword = "test-password"
)

// TestGames is the starter catalog installed by SetupTestStore
var TestGames = []db.GameRow{
	{Name: "Tug of War", AgeLimit: "Adult (Over 16)", PreRegistration: "Y", GameZone: "Zone D", GameTime: "3:00 PM"},
	{Name: "Pot Breaking", AgeLimit: "All Ages", PreRegistration: "Y", GameZone: "Zone B", GameTime: "11:00 AM"},
}

// SetupTestStore creates a fresh SQLite database in a temp dir with the full
// schema and TestGames seeded. The database is closed when the test ends.
func SetupTestStore(t *testing.T) *store.Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "avurudu_test.db")
	conn, err := db.Open(context.Background(), db.SQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	client := store.New(conn, db.SQLite, store.WithStarterCatalog(TestGames))
	if err := client.EnsureSchema(context.Background()); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3001,
		DatabaseType:   db.SQLite,
		DatabaseURL:    ":memory:",
		AdminUser:      TestAdminUser,
		AdminPassword:  TestAdminPassword,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// AdminHeaders returns basic-auth headers for the test admin
func AdminHeaders() map[string]string {
	creds := base64.StdEncoding.EncodeToString([]byte(TestAdminUser + ":" + TestAdminPassword))
	return map[string]string{"Authorization": "Basic " + creds}
}

// GameID returns the id of the named game, failing the test if it is missing
func GameID(t *testing.T, client *store.Client, name string) int64 {
	t.Helper()

	var id int64
	err := client.DB().QueryRow(client.Dialect().Rebind("SELECT id FROM games WHERE name = ?"), name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to find game %q: %v", name, err)
	}
	return id
}

// RegisterTestParticipant registers a participant for the given games
func RegisterTestParticipant(t *testing.T, client *store.Client, firstName string, games ...string) models.Participant {
	t.Helper()

	registry := store.NewParticipantRegistry(client, store.NewGameCatalog(client))
	p, err := registry.Register(context.Background(), ValidRegistration(firstName, games...))
	if err != nil {
		t.Fatalf("Failed to register test participant: %v", err)
	}
	return p
}

// ValidRegistration returns a registration request that passes all checks
func ValidRegistration(firstName string, games ...string) models.RegistrationRequest {
	return models.RegistrationRequest{
		FirstName:     firstName,
		LastName:      "Perera",
		ContactNumber: "0771234567",
		AgeGroup:      "Adult",
		SelectedGames: games,
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, client *store.Client, table string) int {
	t.Helper()

	var n int
	if err := client.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
