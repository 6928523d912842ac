package arena

import "github.com/kawertyff-source/Simungboxing-128/internal/game"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per websocket after the hello is parsed
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	ConnID string
}

// Attack: a punch request from one connection
type Attack struct {
	ConnID    string
	Technique game.Technique
}

// Leave: issued on disconnect
type Leave struct {
	ConnID string
}
