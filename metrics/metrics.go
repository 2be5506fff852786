// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for registry and catalog outcomes.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// OutcomeOK labels a successful operation. Failures are labelled with their error kind.
const OutcomeOK = "ok"

var (
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "avurudu_registrations_total", Help: "Participant registration attempts by outcome"},
		[]string{"outcome"},
	)
	ParticipantDeletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "avurudu_participant_deletions_total", Help: "Participant deletions by outcome"},
		[]string{"outcome"},
	)
	GameMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "avurudu_game_mutations_total", Help: "Game create/update/delete calls by outcome"},
		[]string{"op", "outcome"},
	)
)

// Register adds all collectors to the default registry. Call once at startup.
func Register() {
	prometheus.MustRegister(Registrations, ParticipantDeletions, GameMutations)
}
