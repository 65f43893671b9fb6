package confv1

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/vantrou/memnode/internal/core/nodestate"
	"github.com/vantrou/memnode/internal/core/settings"
	"github.com/vantrou/memnode/internal/engine/app"
	"github.com/vantrou/memnode/internal/engine/logs"
	"github.com/vantrou/memnode/internal/server/rpc"
)

func newTestHandler(obs *logs.Observability) *HandlerV1 {
	x := &app.AppX{
		SLog: slog.New(logs.NewMockHandler()),
		State: nodestate.New(nodestate.Options{
			ShowCalls:       settings.ShowCallsNone,
			ShowStorageLogs: settings.ShowStorageLogsNone,
			ShowVMDetails:   settings.ShowVMDetailsNone,
			ShowGasDetails:  settings.ShowGasDetailsNone,
			StartTimestamp:  1,
			Observability:   obs,
		}),
	}
	return InitConfigServer(&ConfigServerInit{X: x})
}

// The documented operator flow: enable user-call tracing, fat-finger the
// next value, flip hash resolving.
func TestScenario_SetShowCalls(t *testing.T) {
	h := newTestHandler(nil)

	if got := h.GetShowCalls(); got != "None" {
		t.Fatalf("initial show_calls = %q; want \"None\"", got)
	}
	if got := h.SetShowCalls("User"); got != "User" {
		t.Errorf("SetShowCalls(\"User\") = %q; want \"User\"", got)
	}
	if got := h.GetShowCalls(); got != "User" {
		t.Errorf("GetShowCalls() = %q; want \"User\"", got)
	}
	// a typo is silently swallowed: the call "succeeds" and reports the
	// value that is still active
	if got := h.SetShowCalls("bogus"); got != "User" {
		t.Errorf("SetShowCalls(\"bogus\") = %q; want unchanged \"User\"", got)
	}
	if got := h.SetResolveHashes(true); got != true {
		t.Errorf("SetResolveHashes(true) = %v; want true", got)
	}
}

// set(field, garbage) must never change the stored value and must return
// exactly what get(field) returned immediately before the call.
func TestFallbackInvariant_AllFields(t *testing.T) {
	h := newTestHandler(nil)

	tests := []struct {
		name string
		get  func() string
		set  func(string) string
	}{
		{"show_calls", h.GetShowCalls, h.SetShowCalls},
		{"show_storage_logs", func() string { return h.x.State.ShowStorageLogs().String() }, h.SetShowStorageLogs},
		{"show_vm_details", func() string { return h.x.State.ShowVMDetails().String() }, h.SetShowVMDetails},
		{"show_gas_details", func() string { return h.x.State.ShowGasDetails().String() }, h.SetShowGasDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.get()
			if got := tt.set("garbage-value"); got != before {
				t.Errorf("set(%s, garbage) = %q; want pre-call value %q", tt.name, got, before)
			}
			if got := tt.get(); got != before {
				t.Errorf("get(%s) after garbage set = %q; stored value changed from %q", tt.name, got, before)
			}
		})
	}
}

// Setting a field to its own current canonical value is a no-op that
// reports that value.
func TestIdempotence(t *testing.T) {
	h := newTestHandler(nil)
	h.SetShowCalls("System")
	if got := h.SetShowCalls("System"); got != "System" {
		t.Errorf("idempotent SetShowCalls = %q; want \"System\"", got)
	}
	if got := h.GetShowCalls(); got != "System" {
		t.Errorf("GetShowCalls() = %q; want \"System\"", got)
	}
}

// Every canonical value must survive set-then-get unchanged.
func TestRoundTrip_AllCanonicalValues(t *testing.T) {
	h := newTestHandler(nil)

	for _, v := range []string{"None", "User", "System", "All"} {
		if got := h.SetShowCalls(v); got != v {
			t.Errorf("SetShowCalls(%q) = %q", v, got)
		}
		if got := h.GetShowCalls(); got != v {
			t.Errorf("GetShowCalls() = %q; want %q", got, v)
		}
	}
	for _, v := range []string{"None", "Read", "Write", "All"} {
		if got := h.SetShowStorageLogs(v); got != v {
			t.Errorf("SetShowStorageLogs(%q) = %q", v, got)
		}
	}
	for _, v := range []string{"None", "All"} {
		if got := h.SetShowVMDetails(v); got != v {
			t.Errorf("SetShowVMDetails(%q) = %q", v, got)
		}
		if got := h.SetShowGasDetails(v); got != v {
			t.Errorf("SetShowGasDetails(%q) = %q", v, got)
		}
	}
}

// Logging operations delegate to the bridge and must not touch any toggle.
func TestIndependence_LoggingOpsLeaveTogglesAlone(t *testing.T) {
	obs := logs.NewObservability(settings.LogLevelInfo)
	h := newTestHandler(obs)

	h.SetShowCalls("User")
	h.SetShowStorageLogs("Write")
	h.SetResolveHashes(true)
	before := h.x.State.Snapshot()

	if !h.SetLogLevel(settings.LogLevelDebug) {
		t.Fatal("SetLogLevel(debug) = false; want true")
	}
	if !h.SetLogging("gateway=trace") {
		t.Fatal("SetLogging = false; want true")
	}

	after := h.x.State.Snapshot()
	if before != after {
		t.Errorf("logging operations changed node state: before %+v, after %+v", before, after)
	}
}

// Without a logging subsystem both operations are successful no-ops.
func TestNoBridge_Success(t *testing.T) {
	h := newTestHandler(nil)
	if !h.SetLogLevel(settings.LogLevelDebug) {
		t.Error("SetLogLevel without subsystem = false; want true")
	}
	if !h.SetLogging("x=trace") {
		t.Error("SetLogging without subsystem = false; want true")
	}
}

func TestBridgeFailure_ReportedAsFalse(t *testing.T) {
	obs := logs.NewObservability(settings.LogLevelInfo)
	h := newTestHandler(obs)

	if h.SetLogging("not a directive") {
		t.Error("SetLogging(garbage) = true; want false")
	}
	if !h.SetLogging("confv1=debug") {
		t.Error("SetLogging(valid) = false; want true")
	}
	if got := obs.Level(); got != slog.LevelInfo {
		t.Errorf("global level changed to %v by scoped directive", got)
	}
}

func TestConcurrent_SetAndGet(t *testing.T) {
	h := newTestHandler(nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(v bool) {
			defer wg.Done()
			h.SetResolveHashes(v)
		}(i%2 == 0)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.GetShowCalls()
			_ = h.GetCurrentTimestamp()
		}()
	}
	wg.Wait()
}

func rawID(t *testing.T) *json.RawMessage {
	t.Helper()
	id := json.RawMessage(`1`)
	return &id
}

func mustParams(t *testing.T, values ...string) []json.RawMessage {
	t.Helper()
	var out []json.RawMessage
	for _, v := range values {
		out = append(out, json.RawMessage(v))
	}
	return out
}

func TestHandle_Dispatch(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		params     []string
		wantResult any
		wantCode   int
	}{
		{"get show calls", "config_getShowCalls", nil, "None", 0},
		{"set show calls", "config_setShowCalls", []string{`"user"`}, "User", 0},
		{"set show calls fallback", "config_setShowCalls", []string{`"nonsense"`}, "None", 0},
		{"set vm details", "config_setShowVmDetails", []string{`"all"`}, "All", 0},
		{"set resolve hashes", "config_setResolveHashes", []string{`true`}, true, 0},
		{"set log level no bridge", "config_setLogLevel", []string{`"debug"`}, true, 0},
		{"set logging no bridge", "config_setLogging", []string{`"x=trace"`}, true, 0},
		{"bad log level is invalid params", "config_setLogLevel", []string{`"loud"`}, nil, rpc.ErrInvalidParams},
		{"missing param", "config_setShowCalls", nil, nil, rpc.ErrInvalidParams},
		{"wrong param type", "config_setResolveHashes", []string{`"yes"`}, nil, rpc.ErrInvalidParams},
		{"unknown method", "config_selfDestruct", nil, nil, rpc.ErrMethodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)
			req := &rpc.RPCRequest{
				JSONRPC: rpc.JSONRPCVersion,
				ID:      rawID(t),
				Method:  tt.method,
				Params:  mustParams(t, tt.params...),
			}
			resp := h.Handle(context.Background(), "sid", nil, req)
			if resp == nil {
				t.Fatal("Handle returned nil for a call with an id")
			}
			if tt.wantCode != 0 {
				if resp.Error == nil || resp.Error.Code != tt.wantCode {
					t.Fatalf("Handle(%s) error = %+v; want code %d", tt.method, resp.Error, tt.wantCode)
				}
				return
			}
			if resp.Error != nil {
				t.Fatalf("Handle(%s) unexpected error %+v", tt.method, resp.Error)
			}
			if resp.Result != tt.wantResult {
				t.Errorf("Handle(%s) result = %v; want %v", tt.method, resp.Result, tt.wantResult)
			}
		})
	}
}

func TestHandle_GetCurrentTimestamp(t *testing.T) {
	h := newTestHandler(nil)
	h.x.State.AdvanceTimestamp(41)

	req := &rpc.RPCRequest{
		JSONRPC: rpc.JSONRPCVersion,
		ID:      rawID(t),
		Method:  "config_getCurrentTimestamp",
	}
	resp := h.Handle(context.Background(), "sid", nil, req)
	if resp.Error != nil {
		t.Fatalf("unexpected error %+v", resp.Error)
	}
	if got, ok := resp.Result.(uint64); !ok || got != 42 {
		t.Errorf("result = %v (%T); want uint64 42", resp.Result, resp.Result)
	}
}
