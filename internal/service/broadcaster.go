package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
	DisconnectSession(sessionID string)
}

// NopBroadcaster discards all events, for callers that run the pipeline
// without a socket fan-out.
type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastToSession(string, string, interface{}) {}

func (NopBroadcaster) DisconnectSession(string) {}
