package hand

import "fmt"

type PlayerNotFoundError struct {
	PlayerID int
}

func (e PlayerNotFoundError) Error() string {
	return fmt.Sprintf("Player [%d] is not found in this hand", e.PlayerID)
}

type DealerSeatNotFoundError struct {
	DealerSeat int
}

func (e DealerSeatNotFoundError) Error() string {
	return fmt.Sprintf("No player is seated at the dealer seat [%d]", e.DealerSeat)
}

type InvalidActionError struct {
	ActionNumber int
	Msg          string
}

func (e InvalidActionError) Error() string {
	return fmt.Sprintf("Invalid action [%d]: %s", e.ActionNumber, e.Msg)
}
