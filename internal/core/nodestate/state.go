// Package nodestate holds the node's runtime-mutable diagnostic record,
// shared between the RPC surface and the execution runtime. All access goes
// through the methods here; callers never take the lock directly.
package nodestate

import (
	"sync"

	"github.com/vantrou/memnode/internal/core/settings"
	"github.com/vantrou/memnode/internal/engine/logs"
)

// Options carries the boot-time values. Observability may be nil; a nil
// handle turns the logging operations into successful no-ops.
type Options struct {
	ShowCalls       settings.ShowCalls
	ShowStorageLogs settings.ShowStorageLogs
	ShowVMDetails   settings.ShowVMDetails
	ShowGasDetails  settings.ShowGasDetails
	ResolveHashes   bool
	StartTimestamp  uint64
	Observability   *logs.Observability
}

// State is the shared node record. Many concurrent readers or one writer;
// getters copy a single value out under RLock, setters write a single field
// under Lock. The observability handle is set once here and never reassigned.
type State struct {
	mu sync.RWMutex

	showCalls        settings.ShowCalls
	showStorageLogs  settings.ShowStorageLogs
	showVMDetails    settings.ShowVMDetails
	showGasDetails   settings.ShowGasDetails
	resolveHashes    bool
	currentTimestamp uint64

	observability *logs.Observability
}

// Snapshot is a consistent copy of the mutable fields, safe to retain.
type Snapshot struct {
	ShowCalls        settings.ShowCalls
	ShowStorageLogs  settings.ShowStorageLogs
	ShowVMDetails    settings.ShowVMDetails
	ShowGasDetails   settings.ShowGasDetails
	ResolveHashes    bool
	CurrentTimestamp uint64
}

func New(o Options) *State {
	return &State{
		showCalls:        o.ShowCalls,
		showStorageLogs:  o.ShowStorageLogs,
		showVMDetails:    o.ShowVMDetails,
		showGasDetails:   o.ShowGasDetails,
		resolveHashes:    o.ResolveHashes,
		currentTimestamp: o.StartTimestamp,
		observability:    o.Observability,
	}
}

func (s *State) ShowCalls() settings.ShowCalls {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showCalls
}

func (s *State) SetShowCalls(v settings.ShowCalls) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showCalls = v
}

func (s *State) ShowStorageLogs() settings.ShowStorageLogs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showStorageLogs
}

func (s *State) SetShowStorageLogs(v settings.ShowStorageLogs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showStorageLogs = v
}

func (s *State) ShowVMDetails() settings.ShowVMDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showVMDetails
}

func (s *State) SetShowVMDetails(v settings.ShowVMDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showVMDetails = v
}

func (s *State) ShowGasDetails() settings.ShowGasDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showGasDetails
}

func (s *State) SetShowGasDetails(v settings.ShowGasDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showGasDetails = v
}

func (s *State) ResolveHashes() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveHashes
}

func (s *State) SetResolveHashes(v bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolveHashes = v
	return s.resolveHashes
}

func (s *State) CurrentTimestamp() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTimestamp
}

// AdvanceTimestamp moves the simulated chain clock forward and returns the
// new value. Only the node runtime calls this; the RPC surface reads only.
func (s *State) AdvanceTimestamp(delta uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTimestamp += delta
	return s.currentTimestamp
}

// Observability returns the optional log-control handle. Callers must check
// for nil before delegating; absence means logging operations are no-ops.
func (s *State) Observability() *logs.Observability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.observability
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		ShowCalls:        s.showCalls,
		ShowStorageLogs:  s.showStorageLogs,
		ShowVMDetails:    s.showVMDetails,
		ShowGasDetails:   s.showGasDetails,
		ResolveHashes:    s.resolveHashes,
		CurrentTimestamp: s.currentTimestamp,
	}
}
