package confv1

import (
	"log/slog"

	"github.com/vantrou/memnode/internal/core/settings"
)

// The setter contract below is deliberately forgiving: an unrecognized value
// does not fail the call. The stored setting is left untouched and its
// current canonical rendering is returned as if the call had succeeded, so
// the only way a caller can detect rejection is to compare the returned
// string with what it sent. This mirrors the node's external protocol and
// must not be "fixed" to return an error.

func (h *HandlerV1) GetShowCalls() string {
	return h.x.State.ShowCalls().String()
}

func (h *HandlerV1) GetCurrentTimestamp() uint64 {
	return h.x.State.CurrentTimestamp()
}

func (h *HandlerV1) SetShowCalls(raw string) string {
	v, ok := settings.ParseShowCalls(raw)
	if !ok {
		return h.x.State.ShowCalls().String()
	}
	h.x.State.SetShowCalls(v)
	return v.String()
}

func (h *HandlerV1) SetShowStorageLogs(raw string) string {
	v, ok := settings.ParseShowStorageLogs(raw)
	if !ok {
		return h.x.State.ShowStorageLogs().String()
	}
	h.x.State.SetShowStorageLogs(v)
	return v.String()
}

func (h *HandlerV1) SetShowVMDetails(raw string) string {
	v, ok := settings.ParseShowVMDetails(raw)
	if !ok {
		return h.x.State.ShowVMDetails().String()
	}
	h.x.State.SetShowVMDetails(v)
	return v.String()
}

func (h *HandlerV1) SetShowGasDetails(raw string) string {
	v, ok := settings.ParseShowGasDetails(raw)
	if !ok {
		return h.x.State.ShowGasDetails().String()
	}
	h.x.State.SetShowGasDetails(v)
	return v.String()
}

// SetResolveHashes is unconditional: booleans have no invalid wire form at
// this layer.
func (h *HandlerV1) SetResolveHashes(v bool) bool {
	return h.x.State.SetResolveHashes(v)
}

// SetLogLevel forwards a verbosity change to the log-control subsystem.
// The toggle fields are never touched. A missing subsystem is success with
// no effect; a subsystem failure is reported as false and only logged here.
func (h *HandlerV1) SetLogLevel(level settings.LogLevel) bool {
	obs := h.x.State.Observability()
	if obs == nil {
		return true
	}
	if err := obs.SetLogLevel(level); err != nil {
		h.log.Error("failed setting log level", slog.String("level", level.String()), slog.String("err", err.Error()))
		return false
	}
	h.log.Info("set log level", slog.String("level", level.String()))
	return true
}

// SetLogging forwards a scoped directive string, e.g. "gateway=debug" or
// "gateway=debug,confv1=trace". Same delegation shape as SetLogLevel.
func (h *HandlerV1) SetLogging(directive string) bool {
	obs := h.x.State.Observability()
	if obs == nil {
		return true
	}
	if err := obs.SetLogging(directive); err != nil {
		h.log.Error("failed setting logging", slog.String("directive", directive), slog.String("err", err.Error()))
		return false
	}
	h.log.Info("set logging", slog.String("directive", directive))
	return true
}
