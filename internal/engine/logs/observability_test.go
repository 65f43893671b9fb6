package logs

import (
	"log/slog"
	"testing"

	"github.com/vantrou/memnode/internal/core/settings"
)

func TestFunc_ParseDirectives(t *testing.T) {
	tests := []struct {
		directive string
		wantErr   bool
		scopes    int
	}{
		{"gateway=debug", false, 1},
		{"gateway=debug,confv1=trace", false, 2},
		{"gateway=debug, confv1=warn", false, 2},
		{"debug", false, 0},
		{"gateway=debug,info", false, 1},
		{"", true, 0},
		{"gateway=", true, 0},
		{"=debug", true, 0},
		{"gateway=loud", true, 0},
		{"gateway=debug,,confv1=info", true, 0},
		{"garbage", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.directive, func(t *testing.T) {
			scopes, _, err := ParseDirectives(tt.directive)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirectives(%q) error = %v; wantErr %v", tt.directive, err, tt.wantErr)
			}
			if err == nil && len(scopes) != tt.scopes {
				t.Errorf("ParseDirectives(%q) = %d scopes; want %d", tt.directive, len(scopes), tt.scopes)
			}
		})
	}
}

func TestObservability_SetLogLevelResetsDirectives(t *testing.T) {
	obs := NewObservability(settings.LogLevelInfo)
	if err := obs.SetLogging("gateway=trace"); err != nil {
		t.Fatalf("SetLogging: %v", err)
	}
	if got := obs.levelFor("gateway"); got != settings.LevelTrace {
		t.Fatalf("levelFor(gateway) = %v; want trace", got)
	}

	if err := obs.SetLogLevel(settings.LogLevelWarn); err != nil {
		t.Fatalf("SetLogLevel: %v", err)
	}
	if got := obs.levelFor("gateway"); got != slog.LevelWarn {
		t.Errorf("levelFor(gateway) after SetLogLevel = %v; want warn", got)
	}
	if got := obs.Level(); got != slog.LevelWarn {
		t.Errorf("Level() = %v; want warn", got)
	}
}

func TestObservability_BadDirectiveKeepsPrevious(t *testing.T) {
	obs := NewObservability(settings.LogLevelInfo)
	if err := obs.SetLogging("confv1=debug"); err != nil {
		t.Fatalf("SetLogging: %v", err)
	}
	if err := obs.SetLogging("confv1=shouty"); err == nil {
		t.Fatal("SetLogging with bad level should fail")
	}
	if got := obs.levelFor("confv1"); got != slog.LevelDebug {
		t.Errorf("levelFor(confv1) = %v; previous directive should survive a failed update", got)
	}
}

func TestScopeHandler_DirectiveFiltering(t *testing.T) {
	obs := NewObservability(settings.LogLevelInfo)
	mock := NewMockHandler()
	log := slog.New(newScopeHandler(mock, obs))

	if err := obs.SetLogging("gateway=debug"); err != nil {
		t.Fatalf("SetLogging: %v", err)
	}

	WithScope(log, "gateway").Debug("visible")
	WithScope(log, "other").Debug("filtered")
	log.Debug("filtered too")
	log.Info("visible")

	records := mock.Records()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.Message != "visible" {
			t.Errorf("unexpected record %q passed the scope filter", r.Message)
		}
	}
}
