// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/avurudu-games/models"
	"github.com/danielhkuo/avurudu-games/store"
	"github.com/danielhkuo/avurudu-games/testutil"
)

// TestFullRegistrationWorkflow tests the complete end-to-end workflow:
// 1. Register a participant for a game
// 2. Attempt a registration with an unknown game
// 3. Attempt to create a duplicate game
// 4. Attempt to delete a game that has participants
// 5. Delete the participant, then the game
func TestFullRegistrationWorkflow(t *testing.T) {
	client := testutil.SetupTestStore(t)
	games := store.NewGameCatalog(client)
	gameHandler := NewGameHandler(games)
	participantHandler := NewParticipantHandler(store.NewParticipantRegistry(client, games))

	// Step 1: Register Alice
	alice := models.RegistrationRequest{
		FirstName:     "Alice",
		LastName:      "Doe",
		ContactNumber: "0211234567",
		AgeGroup:      "Under 12",
		SelectedGames: []string{"Tug of War"},
	}
	w := httptest.NewRecorder()
	participantHandler.Register(w, testutil.MakeRequest("POST", "/api/register", alice, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Register failed: %d - %s", w.Code, w.Body.String())
	}
	var registered models.Participant
	testutil.AssertJSON(t, w, &registered)
	t.Logf("Step 1 - Registered participant: %s", registered.ID)

	w = httptest.NewRecorder()
	participantHandler.ListParticipants(w, httptest.NewRequest("GET", "/api/admin/participants", nil))
	var listed []models.Participant
	testutil.AssertJSON(t, w, &listed)
	if len(listed) != 1 || len(listed[0].Games) != 1 || listed[0].Games[0] != "Tug of War" {
		t.Fatalf("Step 1 - Unexpected listing: %+v", listed)
	}

	// Step 2: Unknown game leaves nothing behind
	bob := alice
	bob.FirstName = "Bob"
	bob.SelectedGames = []string{"Tug of War", "Nonexistent Game"}
	w = httptest.NewRecorder()
	participantHandler.Register(w, testutil.MakeRequest("POST", "/api/register", bob, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("Step 2 - Expected 404, got %d", w.Code)
	}
	if n := testutil.CountRows(t, client, "participants"); n != 1 {
		t.Fatalf("Step 2 - Expected 1 participant, got %d", n)
	}
	if n := testutil.CountRows(t, client, "participant_games"); n != 1 {
		t.Fatalf("Step 2 - Expected 1 association, got %d", n)
	}

	// Step 3: Duplicate game name
	w = httptest.NewRecorder()
	gameHandler.CreateGame(w, testutil.MakeRequest("POST", "/api/admin/games", models.CreateGameRequest{Name: "Tug of War"}, nil))
	if w.Code != http.StatusConflict {
		t.Fatalf("Step 3 - Expected 409, got %d", w.Code)
	}
	if n := testutil.CountRows(t, client, "games"); n != 2 {
		t.Fatalf("Step 3 - Expected 2 games, got %d", n)
	}

	// Step 4: Game with participants cannot be deleted
	tugID := idPath(testutil.GameID(t, client, "Tug of War"))
	req := httptest.NewRequest("DELETE", "/api/admin/games/"+tugID, nil)
	req.SetPathValue("id", tugID)
	w = httptest.NewRecorder()
	gameHandler.DeleteGame(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("Step 4 - Expected 409, got %d", w.Code)
	}
	var conflict models.ErrorResponse
	testutil.AssertJSON(t, w, &conflict)
	if conflict.Message != "Cannot delete game as it is associated with 1 participants" {
		t.Errorf("Step 4 - Unexpected message '%s'", conflict.Message)
	}

	// Step 5: Remove Alice, then the game
	req = httptest.NewRequest("DELETE", "/api/admin/participants/"+registered.ID, nil)
	req.SetPathValue("id", registered.ID)
	w = httptest.NewRecorder()
	participantHandler.DeleteParticipant(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Delete participant failed: %d - %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("DELETE", "/api/admin/games/"+tugID, nil)
	req.SetPathValue("id", tugID)
	w = httptest.NewRecorder()
	gameHandler.DeleteGame(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Delete game failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 5 - Participant and game removed")
}
