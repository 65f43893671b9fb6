package nodestate

import (
	"sync"
	"testing"

	"github.com/vantrou/memnode/internal/core/settings"
)

func defaultState() *State {
	return New(Options{
		ShowCalls:       settings.ShowCallsNone,
		ShowStorageLogs: settings.ShowStorageLogsNone,
		ShowVMDetails:   settings.ShowVMDetailsNone,
		ShowGasDetails:  settings.ShowGasDetailsNone,
		StartTimestamp:  1,
	})
}

func TestState_Defaults(t *testing.T) {
	s := defaultState()
	snap := s.Snapshot()
	if snap.ShowCalls != settings.ShowCallsNone ||
		snap.ShowStorageLogs != settings.ShowStorageLogsNone ||
		snap.ShowVMDetails != settings.ShowVMDetailsNone ||
		snap.ShowGasDetails != settings.ShowGasDetailsNone ||
		snap.ResolveHashes || snap.CurrentTimestamp != 1 {
		t.Errorf("unexpected boot snapshot: %+v", snap)
	}
	if s.Observability() != nil {
		t.Error("observability should be nil unless supplied")
	}
}

func TestState_SingleFieldWrites(t *testing.T) {
	s := defaultState()
	s.SetShowCalls(settings.ShowCallsUser)
	if got := s.ShowCalls(); got != settings.ShowCallsUser {
		t.Errorf("ShowCalls() = %q; want User", got)
	}
	// the other fields stay untouched
	if s.ShowStorageLogs() != settings.ShowStorageLogsNone ||
		s.ShowVMDetails() != settings.ShowVMDetailsNone ||
		s.ShowGasDetails() != settings.ShowGasDetailsNone ||
		s.ResolveHashes() {
		t.Error("SetShowCalls leaked into another field")
	}
}

func TestState_AdvanceTimestamp(t *testing.T) {
	s := defaultState()
	if got := s.AdvanceTimestamp(5); got != 6 {
		t.Errorf("AdvanceTimestamp(5) = %d; want 6", got)
	}
	if got := s.CurrentTimestamp(); got != 6 {
		t.Errorf("CurrentTimestamp() = %d; want 6", got)
	}
}

// Concurrent writers and readers must never observe a torn value, and the
// final value must be one that some writer produced. Run with -race.
func TestState_ConcurrentResolveHashes(t *testing.T) {
	s := defaultState()

	const writers = 16
	const readers = 16

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(v bool) {
			defer wg.Done()
			s.SetResolveHashes(v)
		}(i%2 == 0)
	}
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.ResolveHashes()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	// both writer cohorts wrote a valid bool; any final value is fine,
	// reading it must not race
	_ = s.ResolveHashes()
}
