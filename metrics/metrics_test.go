// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersByOutcome(t *testing.T) {
	before := testutil.ToFloat64(Registrations.WithLabelValues(OutcomeOK))
	Registrations.WithLabelValues(OutcomeOK).Inc()
	after := testutil.ToFloat64(Registrations.WithLabelValues(OutcomeOK))
	if after-before != 1 {
		t.Errorf("Expected counter to increase by 1, got %v", after-before)
	}

	GameMutations.WithLabelValues("delete", "conflict").Inc()
	if got := testutil.ToFloat64(GameMutations.WithLabelValues("delete", "conflict")); got < 1 {
		t.Errorf("Expected delete/conflict counter >= 1, got %v", got)
	}
}

func TestCollectorsRegisterCleanly(t *testing.T) {
	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{Registrations, ParticipantDeletions, GameMutations} {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Failed to register collector: %v", err)
		}
	}
}
