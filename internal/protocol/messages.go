package protocol

// Message types, all server to spectator. Spectators send nothing.
const (
	MsgHello     = "hello"
	MsgEvent     = "event"
	MsgGameState = "game_state"
	MsgError     = "error"
)

// Hello is the first message on a new connection.
type Hello struct {
	GameID   string `json:"game_id"`
	ClientID string `json:"client_id"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
