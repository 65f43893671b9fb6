package gateway

import (
	"context"
	"net/http"

	"github.com/vantrou/memnode/internal/core/corestate"
	"github.com/vantrou/memnode/internal/engine/app"
	"github.com/vantrou/memnode/internal/server/rpc"
	"github.com/vantrou/memnode/internal/server/session"
)

// namespace is the method prefix ("config" in "config_setShowCalls") that
// picks the server a request is routed to.
type namespace string

type ServerApiContract interface {
	GetNamespace() string
	Handle(ctx context.Context, sid string, r *http.Request, req *rpc.RPCRequest) *rpc.RPCResponse
}

// GatewayServer is the HTTP entry point for the node's JSON-RPC surface.
// It owns request parsing, batching and session handling, and routes each
// call to the namespace server that implements it.
type GatewayServer struct {
	servers map[namespace]ServerApiContract

	sm *session.SessionManager
	cs *corestate.CoreState
	x  *app.AppX
}
