package logs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vantrou/memnode/internal/core/settings"
)

// ScopeKey is the attribute key that binds a log record to a directive scope.
const ScopeKey = "scope"

// Observability is the runtime handle over the logging subsystem. It is
// handed to the shared node state at construction and reached from there by
// the configuration surface; everything else in the node only logs.
type Observability struct {
	base *slog.LevelVar

	mu     sync.Mutex
	scopes atomic.Value // map[string]slog.Level, never nil
	// floor is the minimum of base and all scope overrides; the handler's
	// Enabled check reads it without locking.
	floor atomic.Int64
}

func NewObservability(level settings.LogLevel) *Observability {
	o := &Observability{base: new(slog.LevelVar)}
	o.base.Set(level.Slog())
	o.scopes.Store(map[string]slog.Level{})
	o.floor.Store(int64(level.Slog()))
	return o
}

// SetLogLevel swaps the global level and drops any scope directives, so the
// whole node logs uniformly at the new level.
func (o *Observability) SetLogLevel(level settings.LogLevel) error {
	if o == nil {
		return fmt.Errorf("logging subsystem is not initialized")
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	o.base.Set(level.Slog())
	o.scopes.Store(map[string]slog.Level{})
	o.floor.Store(int64(level.Slog()))
	return nil
}

// SetLogging replaces the directive set from a "scope=level[,scope=level]*"
// string. A bare "level" token moves the global level. The previous
// directives stay in force when the new string fails to parse.
func (o *Observability) SetLogging(directive string) error {
	if o == nil {
		return fmt.Errorf("logging subsystem is not initialized")
	}
	scopes, base, err := ParseDirectives(directive)
	if err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if base != nil {
		o.base.Set(*base)
	}
	o.scopes.Store(scopes)
	floor := o.base.Level()
	for _, lvl := range scopes {
		if lvl < floor {
			floor = lvl
		}
	}
	o.floor.Store(int64(floor))
	return nil
}

// Level reports the current global level.
func (o *Observability) Level() slog.Level {
	return o.base.Level()
}

func (o *Observability) levelFor(scope string) slog.Level {
	if scope != "" {
		scopes := o.scopes.Load().(map[string]slog.Level)
		if lvl, ok := scopes[scope]; ok {
			return lvl
		}
	}
	return o.base.Level()
}

// ParseDirectives parses the "scope=level[,scope=level]*" grammar. Tokens
// without "=" are treated as a global level.
func ParseDirectives(directive string) (map[string]slog.Level, *slog.Level, error) {
	scopes := make(map[string]slog.Level)
	var base *slog.Level

	for _, token := range strings.Split(directive, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, nil, fmt.Errorf("empty directive in %q", directive)
		}

		name, raw, found := strings.Cut(token, "=")
		if !found {
			level, ok := settings.ParseLogLevel(token)
			if !ok {
				return nil, nil, fmt.Errorf("unknown level %q in directive %q", token, directive)
			}
			lvl := level.Slog()
			base = &lvl
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, nil, fmt.Errorf("empty scope in directive %q", directive)
		}
		level, ok := settings.ParseLogLevel(raw)
		if !ok {
			return nil, nil, fmt.Errorf("unknown level %q for scope %q", raw, name)
		}
		scopes[name] = level.Slog()
	}
	return scopes, base, nil
}

// scopeHandler gates records against the observability floor and the
// per-scope overrides. The scope of a logger branch is captured from the
// "scope" attribute as it flows through WithAttrs.
type scopeHandler struct {
	inner slog.Handler
	obs   *Observability
	scope string
}

func newScopeHandler(inner slog.Handler, obs *Observability) *scopeHandler {
	return &scopeHandler{inner: inner, obs: obs}
}

func (h *scopeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.obs.floor.Load())
}

func (h *scopeHandler) Handle(ctx context.Context, r slog.Record) error {
	scope := h.scope
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == ScopeKey {
			scope = a.Value.String()
			return false
		}
		return true
	})
	if r.Level < h.obs.levelFor(scope) {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

func (h *scopeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	scope := h.scope
	for _, a := range attrs {
		if a.Key == ScopeKey {
			scope = a.Value.String()
		}
	}
	return &scopeHandler{inner: h.inner.WithAttrs(attrs), obs: h.obs, scope: scope}
}

func (h *scopeHandler) WithGroup(name string) slog.Handler {
	return &scopeHandler{inner: h.inner.WithGroup(name), obs: h.obs, scope: h.scope}
}
