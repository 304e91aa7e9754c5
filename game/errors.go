package game

import "fmt"

// IllegalPlacementError reports a move that is not a member of the current
// reduced action set. It signals a caller bug and is never silently
// corrected.
type IllegalPlacementError struct {
	Reason string
}

func (e *IllegalPlacementError) Error() string {
	return fmt.Sprintf("illegal placement: %s", e.Reason)
}

// EmptyDeckError reports a draw past deck exhaustion. It indicates a
// season/turn accounting bug and is fatal to the current game instance.
type EmptyDeckError struct {
	Season int
}

func (e *EmptyDeckError) Error() string {
	return fmt.Sprintf("deck exhausted in season %d", e.Season)
}
