package duel

// DuelError is a custom error type for duel-related errors
type DuelError string

// Error implements the error interface
func (e DuelError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidJoin        DuelError = "join needs a connection, a character id and valid dice"
	ErrInvalidConnection  DuelError = "connection id cannot be empty"
	ErrNilConfig          DuelError = "config cannot be nil"
	ErrNilSessionRepo     DuelError = "session repository cannot be nil"
	ErrNilDuelLedgerRepo  DuelError = "duel ledger repository cannot be nil"
	ErrNilNotifier        DuelError = "notifier cannot be nil"
	ErrNilMessaging       DuelError = "messaging service cannot be nil"
	ErrNilDiceRoller      DuelError = "dice roller cannot be nil"
	ErrNilClock           DuelError = "clock cannot be nil"
	ErrNilUUIDGenerator   DuelError = "UUID generator cannot be nil"
	ErrNilBroadcaster     DuelError = "broadcaster cannot be nil"
	ErrNilOrderCache      DuelError = "order cache cannot be nil"
	ErrInvalidCharacterID DuelError = "character id cannot be empty"
	ErrSelfPairing        DuelError = "character is already waiting for an opponent"
)
