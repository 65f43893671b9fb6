package gateway

import (
	"errors"

	"github.com/vantrou/memnode/internal/core/corestate"
	"github.com/vantrou/memnode/internal/engine/app"
	"github.com/vantrou/memnode/internal/server/session"
)

// GatewayServerInit structure only for initialization of the gateway.
type GatewayServerInit struct {
	SM *session.SessionManager
	CS *corestate.CoreState
	X  *app.AppX
}

// InitGateway initializes a new GatewayServer with the provided
// configuration and registered namespace servers.
func InitGateway(o *GatewayServerInit, servers ...ServerApiContract) *GatewayServer {
	general := &GatewayServer{
		servers: make(map[namespace]ServerApiContract),
		sm:      o.SM,
		cs:      o.CS,
		x:       o.X,
	}

	for _, s := range servers {
		general.servers[namespace(s.GetNamespace())] = s
	}
	return general
}

// AppendToArray adds a new namespace server to the gateway's internal map.
func (s *GatewayServer) AppendToArray(server ServerApiContract) error {
	if _, exist := s.servers[namespace(server.GetNamespace())]; !exist {
		s.servers[namespace(server.GetNamespace())] = server
		return nil
	}
	return errors.New("server with this namespace already exists")
}
