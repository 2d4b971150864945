package clash

import "fmt"

// MalformedCardError reports card text that is not "<rank> of <suit>".
type MalformedCardError struct {
	Input  string
	Reason string
}

func (e *MalformedCardError) Error() string {
	return fmt.Sprintf("malformed card %q: %s", e.Input, e.Reason)
}

// InvalidRoundError reports a round whose winner is undefined.
type InvalidRoundError struct {
	Players int
	Reason  string
}

func (e *InvalidRoundError) Error() string {
	return fmt.Sprintf("invalid round with %d players: %s", e.Players, e.Reason)
}
