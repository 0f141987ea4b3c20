package client

// ClientError is returned for requests the adapter refuses locally
type ClientError string

func (e ClientError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        = ClientError("config cannot be nil")
	ErrMissingURL       = ClientError("url is required")
	ErrMissingCharacter = ClientError("character id is required")
	ErrNoDice           = ClientError("at least one die must be selected")
	ErrNotInSession     = ClientError("not in a session")
	ErrNotRolled        = ClientError("dice have not been rolled")
	ErrLocked           = ClientError("result is locked by acceptance")
	ErrInvalidSide      = ClientError("side must be player or opponent")
	ErrInvalidIndex     = ClientError("index out of range")
	ErrSessionChanged   = ClientError("session changed while rerolling")
	ErrClosed           = ClientError("connection closed")
)
