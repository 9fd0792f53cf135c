package hand

// Position is a player's table position relative to the dealer seat.
type Position string

const (
	PositionButton Position = "Button"
	PositionSB     Position = "SB"
	PositionBB     Position = "BB"
	PositionOther  Position = "Other"
)

// ResolvePosition derives a player's position from the seating order and the
// configured dealer seat. Positions are assigned by index offset from the
// dealer: 0 is the button, 1 the small blind, 2 the big blind.
//
// The offset rule is exact for three or more players. On a heads-up table the
// button and the small blind are the same seat in standard rules; this
// resolver does not special-case that and reports the dealer as Button only.
func ResolvePosition(h *HandHistory, playerID int) (Position, error) {
	playerIdx := -1
	dealerIdx := -1
	for idx, player := range h.Players {
		if player.ID == playerID {
			playerIdx = idx
		}
		if player.Seat == h.DealerSeat {
			dealerIdx = idx
		}
	}

	if playerIdx == -1 {
		return "", PlayerNotFoundError{PlayerID: playerID}
	}
	if dealerIdx == -1 {
		return "", DealerSeatNotFoundError{DealerSeat: h.DealerSeat}
	}

	numPlayers := len(h.Players)
	switch playerIdx {
	case dealerIdx:
		return PositionButton, nil
	case (dealerIdx + 1) % numPlayers:
		return PositionSB, nil
	case (dealerIdx + 2) % numPlayers:
		return PositionBB, nil
	}
	return PositionOther, nil
}
