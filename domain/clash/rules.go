package clash

// Beats returns the winner of a duel between a and b. It always returns
// exactly one of its arguments:
//
//   - same suit: the higher rank wins
//   - a's element beats b's element: a wins, and the reverse for b
//   - opposed elements (Fire/Earth, Air/Water): the higher rank wins
//
// Equal ranks in the rank-decided cases go to a. Two distinct cards of one
// deck never share rank and suit, so for same-suit duels this only happens
// with synthetic input.
func Beats(a, b Card) Card {
	ea, eb := a.Element(), b.Element()
	switch {
	case ea == eb, opposed(ea, eb):
		if b.rank > a.rank {
			return b
		}
		return a
	case ElementBeats(ea, eb):
		return a
	default:
		return b
	}
}

// Compare returns +1 when a wins the duel against b, -1 when b wins and 0
// for identical cards. The relation is not transitive, so a sort using it
// depends on the input order.
func Compare(a, b Card) int {
	if a == b {
		return 0
	}
	if Beats(a, b) == a {
		return 1
	}
	return -1
}
