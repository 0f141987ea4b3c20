package pairing

import (
	"sort"

	"github.com/KirkDiggler/duels/internal/models"
)

// Die is a rolled die together with its position in the selected pool
type Die struct {
	Size          int `json:"size"`
	Value         int `json:"value"`
	OriginalIndex int `json:"originalIndex"`
}

// Comparison is the result of one pairing
type Comparison struct {
	Index             int    `json:"index"`
	LeftWins          bool   `json:"leftWins"`
	RightWins         bool   `json:"rightWins"`
	Tie               bool   `json:"tie"`
	WinnerCharacterID string `json:"winnerCharacterId"`
	Overridden        bool   `json:"overridden"`
}

// Verdict is the outcome of a whole duel
type Verdict struct {
	// WinnerCharacterID is empty on a tie
	WinnerCharacterID string
	LeftWins          int
	RightWins         int
	Ties              int
}

// IsTie reports whether neither side took more pairings
func (v Verdict) IsTie() bool {
	return v.WinnerCharacterID == ""
}

// Dice zips die sizes with their results. Missing results are left at zero.
func Dice(sizes, results []int) []Die {
	dice := make([]Die, len(sizes))
	for i, size := range sizes {
		dice[i] = Die{Size: size, OriginalIndex: i}
		if i < len(results) {
			dice[i].Value = results[i]
		}
	}
	return dice
}

// Sort returns a copy of dice ordered by value descending, then die size
// descending. Equal dice keep their pool order.
func Sort(dice []Die) []Die {
	sorted := make([]Die, len(dice))
	copy(sorted, dice)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value > sorted[j].Value
		}
		return sorted[i].Size > sorted[j].Size
	})
	return sorted
}

// Compare pairs left[i] with right[i] for every index up to the longer pool.
// An override at an index is honored verbatim. Otherwise a missing die loses
// the pairing and the higher value wins.
func Compare(left, right []Die, leftID, rightID string, overrides map[int]models.ResultOverride) []Comparison {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	comparisons := make([]Comparison, n)
	for i := 0; i < n; i++ {
		c := Comparison{Index: i}

		if override, ok := overrides[i]; ok {
			c.Overridden = true
			switch override.WinnerCharacterID {
			case leftID:
				c.LeftWins = true
			case rightID:
				c.RightWins = true
			default:
				c.Tie = true
			}
		} else {
			switch {
			case i >= len(left):
				c.RightWins = true
			case i >= len(right):
				c.LeftWins = true
			case left[i].Value > right[i].Value:
				c.LeftWins = true
			case left[i].Value < right[i].Value:
				c.RightWins = true
			default:
				c.Tie = true
			}
		}

		switch {
		case c.LeftWins:
			c.WinnerCharacterID = leftID
		case c.RightWins:
			c.WinnerCharacterID = rightID
		}
		comparisons[i] = c
	}

	return comparisons
}

// DetermineWinner counts pairing wins per side. Most wins takes the duel;
// equal counts, including no pairings at all, is a tie.
func DetermineWinner(comparisons []Comparison, leftID, rightID string) Verdict {
	var v Verdict
	for _, c := range comparisons {
		switch {
		case c.LeftWins:
			v.LeftWins++
		case c.RightWins:
			v.RightWins++
		default:
			v.Ties++
		}
	}

	switch {
	case v.LeftWins > v.RightWins:
		v.WinnerCharacterID = leftID
	case v.RightWins > v.LeftWins:
		v.WinnerCharacterID = rightID
	}
	return v
}
