// Package settings defines the closed sets of diagnostic toggle values the
// node understands and the codec between their wire strings and typed values.
// Parsing is total: unrecognized input is reported through the ok bool, never
// through a panic or an error value.
package settings

import (
	"strings"
)

// ShowCalls controls call-trace verbosity.
type ShowCalls string

const (
	ShowCallsNone   ShowCalls = "None"
	ShowCallsUser   ShowCalls = "User"
	ShowCallsSystem ShowCalls = "System"
	ShowCallsAll    ShowCalls = "All"
)

// ShowStorageLogs controls storage-log verbosity.
type ShowStorageLogs string

const (
	ShowStorageLogsNone  ShowStorageLogs = "None"
	ShowStorageLogsRead  ShowStorageLogs = "Read"
	ShowStorageLogsWrite ShowStorageLogs = "Write"
	ShowStorageLogsAll   ShowStorageLogs = "All"
)

// ShowVMDetails controls VM execution detail.
type ShowVMDetails string

const (
	ShowVMDetailsNone ShowVMDetails = "None"
	ShowVMDetailsAll  ShowVMDetails = "All"
)

// ShowGasDetails controls gas-accounting detail.
type ShowGasDetails string

const (
	ShowGasDetailsNone ShowGasDetails = "None"
	ShowGasDetailsAll  ShowGasDetails = "All"
)

// String returns the canonical rendering, used both on the RPC wire and in logs.
func (v ShowCalls) String() string       { return string(v) }
func (v ShowStorageLogs) String() string { return string(v) }
func (v ShowVMDetails) String() string   { return string(v) }
func (v ShowGasDetails) String() string  { return string(v) }

// ParseShowCalls matches raw case-insensitively against the closed value set.
func ParseShowCalls(raw string) (ShowCalls, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return ShowCallsNone, true
	case "user":
		return ShowCallsUser, true
	case "system":
		return ShowCallsSystem, true
	case "all":
		return ShowCallsAll, true
	}
	return "", false
}

func ParseShowStorageLogs(raw string) (ShowStorageLogs, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return ShowStorageLogsNone, true
	case "read":
		return ShowStorageLogsRead, true
	case "write":
		return ShowStorageLogsWrite, true
	case "all":
		return ShowStorageLogsAll, true
	}
	return "", false
}

func ParseShowVMDetails(raw string) (ShowVMDetails, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return ShowVMDetailsNone, true
	case "all":
		return ShowVMDetailsAll, true
	}
	return "", false
}

func ParseShowGasDetails(raw string) (ShowGasDetails, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return ShowGasDetailsNone, true
	case "all":
		return ShowGasDetailsAll, true
	}
	return "", false
}
