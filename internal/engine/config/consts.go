package config

// UUIDLength is the byte length of generated session uuids.
var UUIDLength int = 16

// RPCRoute setting for go-chi for the JSON-RPC endpoint
var RPCRoute string = "/"

// HealthRoute setting for go-chi for the liveness endpoint
var HealthRoute string = "/healthz"

// NodeVersion is the version of the node. It can be set by the build system or manually.
// If not set, it will return "v0.0.0-none" by default
var NodeVersion string

// MetaDir holds persistent node identity files (the node uuid).
var MetaDir string = "./.meta"

func init() {
	if NodeVersion == "" {
		NodeVersion = "v0.0.0-none"
	}
}
