// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that records Run and Stop calls into a shared log.
type mockWorker struct {
	id  string
	log *[]string
}

func (m *mockWorker) Run() {
	*m.log = append(*m.log, "run "+m.id)
}

type stoppableWorker struct {
	mockWorker
}

func (s *stoppableWorker) Stop() {
	*s.log = append(*s.log, "stop "+s.id)
}

func TestWorkers_RunAndStop(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&stoppableWorker{mockWorker{id: "a", log: &log}},
		&mockWorker{id: "b", log: &log},
		&stoppableWorker{mockWorker{id: "c", log: &log}},
	)

	ws.Run()
	ws.Stop()

	want := []string{"run a", "run b", "run c", "stop c", "stop a"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()

	(&Workers{}).Run()
}
