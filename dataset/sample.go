package dataset

import (
	"fmt"

	"github.com/luca-patrignani/elemental-clash/domain/clash"
)

// Sample is one labeled round.
type Sample struct {
	ID          int         `json:"id"`
	PlayerCards clash.Round `json:"player_cards"`
	Winner      string      `json:"winner"`
}

// PlayerLabel returns the identifier used for the i-th seat (0-based).
func PlayerLabel(i int) string {
	return fmt.Sprintf("Player %d", i+1)
}
