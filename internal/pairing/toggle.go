package pairing

import "github.com/KirkDiggler/duels/internal/models"

// CurrentState returns the cycle position of a pairing: the stored override
// if there is one, otherwise the automatic result.
//
// firstID and secondID are always the session's participants in join order
// so both clients walk the same cycle whoever clicks.
func CurrentState(c Comparison, override *models.ResultOverride, firstID, secondID string) models.ResultOverride {
	if override != nil {
		return *override
	}

	switch c.WinnerCharacterID {
	case "":
		return models.ResultOverride{}
	case secondID:
		return models.ResultOverride{WinnerCharacterID: secondID, WasOpponentWin: true}
	default:
		return models.ResultOverride{WinnerCharacterID: firstID}
	}
}

// ToggleResult advances a pairing one step through
// first wins -> tie (from first) -> second wins -> tie (from second) -> first wins.
func ToggleResult(current models.ResultOverride, firstID, secondID string) models.ResultOverride {
	switch current.WinnerCharacterID {
	case firstID:
		return models.ResultOverride{WasOpponentWin: false}
	case secondID:
		return models.ResultOverride{WasOpponentWin: true}
	case "":
		if current.WasOpponentWin {
			return models.ResultOverride{WinnerCharacterID: firstID}
		}
		return models.ResultOverride{WinnerCharacterID: secondID, WasOpponentWin: true}
	default:
		// Unknown character, restart the cycle
		return models.ResultOverride{WinnerCharacterID: firstID}
	}
}
