package chat

import "time"

// Session captures one visitor's conversation. Sessions live for the
// process lifetime only; there is no durable store behind them.
type Session struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName"`
	RemoteIP     string    `json:"remoteIp,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	TurnCount    int       `json:"turnCount"`
	Turns        []Turn    `json:"turns"`
}

// DefaultUserName is used when the visitor never gave a display name.
const DefaultUserName = "Visitor"
