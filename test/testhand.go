package test

import (
	"fmt"

	"github.com/homanp/ohh/hand"
	"github.com/homanp/ohh/handscript"
)

// TestHandScript builds the hand history described by a script and verifies
// the ledger, settlement and position results against the script's verify
// section.
type TestHandScript struct {
	script   *handscript.Script
	filename string
	result   *ScriptTestResult
}

func (t *TestHandScript) run() error {
	h, err := t.script.BuildHand()
	if err != nil {
		return err
	}

	t.verifyRoundTrip(h)
	t.verifyLedger(h)
	t.verifyResults(h)
	t.verifyPositions(h)
	return nil
}

func (t *TestHandScript) verifyRoundTrip(h *hand.HandHistory) {
	data, err := hand.ToJSON(h)
	if err != nil {
		t.addError(fmt.Errorf("Unable to serialize hand: %v", err))
		return
	}
	parsed, err := hand.ParseHand(data)
	if err != nil {
		t.addError(fmt.Errorf("Unable to parse serialized hand: %v", err))
		return
	}
	if parsed.GameNumber != h.GameNumber {
		t.addError(fmt.Errorf("Round trip changed game number. Expected: %s Actual: %s",
			h.GameNumber, parsed.GameNumber))
	}
	if len(parsed.Rounds) != len(h.Rounds) {
		t.addError(fmt.Errorf("Round trip changed round count. Expected: %d Actual: %d",
			len(h.Rounds), len(parsed.Rounds)))
	}
}

func (t *TestHandScript) verifyLedger(h *hand.HandHistory) {
	ledger := hand.BuildLedger(h)
	if t.script.Verify.TotalCommitted != 0 {
		committed := ledger.TotalCommitted()
		if committed != t.script.Verify.TotalCommitted {
			t.addError(fmt.Errorf("Total committed does not match. Expected: %d Actual: %d",
				t.script.Verify.TotalCommitted, committed))
		}
	}
	for _, expected := range t.script.Verify.Results {
		contribution := ledger.Total(expected.Player)
		if contribution != expected.Contribution {
			t.addError(fmt.Errorf("Player [%d] contribution does not match. Expected: %d Actual: %d",
				expected.Player, expected.Contribution, contribution))
		}
	}
}

func (t *TestHandScript) verifyResults(h *hand.HandHistory) {
	for _, expected := range t.script.Verify.Results {
		winnings, err := hand.EstimateWinnings(h, expected.Player)
		if err != nil {
			t.addError(fmt.Errorf("Unable to estimate winnings for player [%d]: %v", expected.Player, err))
			continue
		}
		if winnings != expected.Winnings {
			t.addError(fmt.Errorf("Player [%d] estimated winnings do not match. Expected: %d Actual: %d",
				expected.Player, expected.Winnings, winnings))
		}

		result, err := hand.Settle(h, expected.Player)
		if err != nil {
			t.addError(fmt.Errorf("Unable to settle player [%d]: %v", expected.Player, err))
			continue
		}
		if result != expected.Result {
			t.addError(fmt.Errorf("Player [%d] result does not match. Expected: %d Actual: %d",
				expected.Player, expected.Result, result))
		}

		profited, err := hand.DidProfit(h, expected.Player)
		if err != nil {
			t.addError(fmt.Errorf("Unable to determine profit for player [%d]: %v", expected.Player, err))
			continue
		}
		if profited != expected.Profited {
			t.addError(fmt.Errorf("Player [%d] profited flag does not match. Expected: %v Actual: %v",
				expected.Player, expected.Profited, profited))
		}
	}
}

func (t *TestHandScript) verifyPositions(h *hand.HandHistory) {
	for _, expected := range t.script.Verify.Positions {
		position, err := hand.ResolvePosition(h, expected.Player)
		if err != nil {
			t.addError(fmt.Errorf("Unable to resolve position for player [%d]: %v", expected.Player, err))
			continue
		}
		if string(position) != expected.Position {
			t.addError(fmt.Errorf("Player [%d] position does not match. Expected: %s Actual: %s",
				expected.Player, expected.Position, position))
		}
	}
}

func (t *TestHandScript) addError(e error) {
	t.result.addError(e)
}
