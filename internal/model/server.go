package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener a server accepts connections on, plain or TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long running listener started once and stopped on shutdown.
// Start blocks until the server stops; Stop must return once ctx is done.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
