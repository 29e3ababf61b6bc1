package chat

import "time"

type Transport string

const (
	TransportGateway Transport = "gateway"
	TransportLocal   Transport = "local"
)

// Connection is a registry entry for one live subscriber. PushTarget is the
// gateway connection id for the gateway transport, or the loopback URL for
// the local one.
type Connection struct {
	ConnectionID string    `json:"connectionId"`
	RoomID       string    `json:"roomId"`
	UserID       string    `json:"userId"`
	Username     string    `json:"username"`
	Transport    Transport `json:"transport"`
	PushTarget   string    `json:"pushTarget"`
	ConnectedAt  time.Time `json:"connectedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ConnectRequest carries the socket query parameters. ConnectionID is set
// when the gateway already assigned one.
type ConnectRequest struct {
	ConnectionID string
	RoomID       string
	UserID       string
	Username     string
}

const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
)

// Mode selects the delivery transport and the identity given to anonymous
// sockets.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

func (m Mode) Valid() bool {
	return m == ModeProduction || m == ModeDevelopment
}

func (m Mode) Transport() Transport {
	if m == ModeDevelopment {
		return TransportLocal
	}
	return TransportGateway
}

// DefaultIdentity returns the user id and username used when the socket
// query does not carry them.
func (m Mode) DefaultIdentity() (string, string) {
	if m == ModeDevelopment {
		return "dev-user", "Developer"
	}
	return "anon", "anon"
}
