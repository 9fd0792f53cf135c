package hand

// EstimatePayout returns the pot the player collects if they win the hand,
// before any pot has been awarded.
//
// When the rest of the table has matched (or exceeded) the player's total
// contribution, the whole committed pot is collected. When the player
// over-bet and was not fully called, the uncalled excess is returned to them
// separately and is stripped from the pot they collect.
func EstimatePayout(h *HandHistory, playerID int) (int64, error) {
	if _, ok := h.FindPlayer(playerID); !ok {
		return 0, PlayerNotFoundError{PlayerID: playerID}
	}

	ledger := BuildLedger(h)
	own := ledger.Total(playerID)
	other := ledger.OtherContribution(playerID)
	committed := ledger.TotalCommitted()

	if other >= own {
		return committed, nil
	}

	matched := ledger.HighestOtherContribution(playerID)
	if own < matched {
		matched = own
	}
	return committed - own + matched, nil
}

// EstimateWinnings returns the player's estimated net chip result if they win
// the hand: the collected pot, plus any refunded uncalled excess, minus their
// own contribution.
func EstimateWinnings(h *HandHistory, playerID int) (int64, error) {
	payout, err := EstimatePayout(h, playerID)
	if err != nil {
		return 0, err
	}

	ledger := BuildLedger(h)
	own := ledger.Total(playerID)

	refund := int64(0)
	highestOther := ledger.HighestOtherContribution(playerID)
	if own > highestOther {
		refund = own - highestOther
	}
	return payout + refund - own, nil
}

// Settle returns the player's net chip result for the hand once pots have
// been awarded: everything the pots pay the player minus everything the
// ledger says they put in. A player who never acted and won nothing settles
// at zero.
func Settle(h *HandHistory, playerID int) (int64, error) {
	if _, ok := h.FindPlayer(playerID); !ok {
		return 0, PlayerNotFoundError{PlayerID: playerID}
	}

	won := int64(0)
	for _, pot := range h.Pots {
		for _, win := range pot.PlayerWins {
			if win.PlayerID == playerID {
				won += win.WinAmount
			}
		}
	}
	return won - BuildLedger(h).Total(playerID), nil
}

// DidProfit reports whether the player ended the hand with more chips than
// they started with, using the recorded pot awards.
func DidProfit(h *HandHistory, playerID int) (bool, error) {
	result, err := Settle(h, playerID)
	if err != nil {
		return false, err
	}
	return result > 0, nil
}
