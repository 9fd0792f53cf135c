package hand

// Ledger holds how many chips each player has put into the pot, accumulated
// by replaying the hand's action log street by street.
type Ledger struct {
	totals map[int]int64
}

// BuildLedger replays every round's actions in order and accumulates each
// player's total contribution.
//
// The bet level to match resets to zero at the start of every street. On the
// preflop the big blind post seeds it. Bet and Raise amounts are the acting
// player's new target total for the street, so only the difference from the
// current bet level goes into the pot. Call amounts are increments and are
// added as-is. Treating a raise amount as an increment would double-count
// chips.
func BuildLedger(h *HandHistory) *Ledger {
	totals := make(map[int]int64)
	for _, player := range h.Players {
		totals[player.ID] = 0
	}

	for _, round := range h.Rounds {
		currentBetLevel := int64(0)
		for _, action := range round.Actions {
			switch action.Action {
			case ActionPostSB:
				totals[action.PlayerID] += action.Amount
			case ActionPostBB:
				totals[action.PlayerID] += action.Amount
				currentBetLevel = action.Amount
			case ActionBet, ActionRaise:
				totals[action.PlayerID] += action.Amount - currentBetLevel
				currentBetLevel = action.Amount
			case ActionCall:
				totals[action.PlayerID] += action.Amount
			}
			// Fold, Check and Dealt Cards have no monetary effect.
		}
	}
	return &Ledger{totals: totals}
}

// Total returns the player's contribution across all streets.
func (l *Ledger) Total(playerID int) int64 {
	return l.totals[playerID]
}

// TotalCommitted returns the sum of all contributions in the hand.
func (l *Ledger) TotalCommitted() int64 {
	total := int64(0)
	for _, amount := range l.totals {
		total += amount
	}
	return total
}

// OtherContribution returns the combined contribution of everyone except the
// given player.
func (l *Ledger) OtherContribution(playerID int) int64 {
	total := int64(0)
	for id, amount := range l.totals {
		if id != playerID {
			total += amount
		}
	}
	return total
}

// HighestOtherContribution returns the largest single contribution among the
// other players. It bounds how much of the player's own bet was matched.
func (l *Ledger) HighestOtherContribution(playerID int) int64 {
	highest := int64(0)
	for id, amount := range l.totals {
		if id != playerID && amount > highest {
			highest = amount
		}
	}
	return highest
}

// Totals returns a copy of the per-player totals.
func (l *Ledger) Totals() map[int]int64 {
	totals := make(map[int]int64, len(l.totals))
	for id, amount := range l.totals {
		totals[id] = amount
	}
	return totals
}
