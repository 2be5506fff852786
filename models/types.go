package models

import "time"

// Game field defaults
const (
	DefaultAgeLimit        = "All Ages"
	DefaultPreRegistration = "N"
)

// Request types

type CreateGameRequest struct {
	Name            string `json:"name"`
	AgeLimit        string `json:"age_limit"`
	PreRegistration string `json:"pre_registration"`
	GameZone        string `json:"game_zone"`
	GameTime        string `json:"game_time"`
}

// nil fields are left unchanged
type UpdateGameRequest struct {
	Name            *string `json:"name,omitempty"`
	AgeLimit        *string `json:"age_limit,omitempty"`
	PreRegistration *string `json:"pre_registration,omitempty"`
	GameZone        *string `json:"game_zone,omitempty"`
	GameTime        *string `json:"game_time,omitempty"`
}

// Empty reports whether no field was supplied.
func (r UpdateGameRequest) Empty() bool {
	return r.Name == nil && r.AgeLimit == nil && r.PreRegistration == nil &&
		r.GameZone == nil && r.GameTime == nil
}

type RegistrationRequest struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	ContactNumber string   `json:"contactNumber"`
	AgeGroup      string   `json:"ageGroup"`
	SelectedGames []string `json:"selectedGames"`
}

// Response types

type DeleteGameResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type DeleteParticipantResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type AuthTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Domain types

type Game struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	AgeLimit        string    `json:"age_limit"`
	PreRegistration string    `json:"pre_registration"`
	GameZone        string    `json:"game_zone"`
	GameTime        string    `json:"game_time"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Participant struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	ContactNumber    string    `json:"contactNumber"`
	AgeGroup         string    `json:"ageGroup"`
	RegistrationDate time.Time `json:"registrationDate"`
	Games            []string  `json:"games"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
