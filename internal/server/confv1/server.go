// Package confv1 implements the config_* JSON-RPC namespace: the operation
// surface through which operators inspect and mutate the node's diagnostic
// and logging behavior at runtime.
package confv1

import (
	"log/slog"

	"github.com/vantrou/memnode/internal/engine/app"
	"github.com/vantrou/memnode/internal/engine/logs"
)

// Namespace is the method prefix this server registers under.
const Namespace = "config"

// ConfigServerInit structure is only for initialization
type ConfigServerInit struct {
	X *app.AppX
}

// HandlerV1 serves the configuration namespace. All shared data lives in
// nodestate behind its lock; the handler itself is stateless and safe for
// concurrent use by the gateway.
type HandlerV1 struct {
	x   *app.AppX
	log *slog.Logger
}

// InitConfigServer initializes the configuration namespace server.
// Expects X.State to be set; there is no parameter validation here.
func InitConfigServer(o *ConfigServerInit) *HandlerV1 {
	return &HandlerV1{
		x:   o.X,
		log: logs.WithScope(o.X.SLog, Namespace),
	}
}

// GetNamespace returns the method prefix used by the gateway for routing.
func (h *HandlerV1) GetNamespace() string {
	return Namespace
}
