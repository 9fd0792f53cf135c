package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeSeatHand(dealerSeat int) *HandHistory {
	return &HandHistory{
		DealerSeat: dealerSeat,
		Players: []Player{
			{ID: 1, Seat: 1, StartingStack: 100, Name: "yong"},
			{ID: 2, Seat: 2, StartingStack: 100, Name: "brian"},
			{ID: 3, Seat: 3, StartingStack: 100, Name: "tom"},
		},
	}
}

func TestResolvePosition(t *testing.T) {
	testCases := []struct {
		dealerSeat int
		playerID   int
		expected   Position
	}{
		{1, 1, PositionButton},
		{1, 2, PositionSB},
		{1, 3, PositionBB},
		{2, 2, PositionButton},
		{2, 3, PositionSB},
		{2, 1, PositionBB},
		// The offsets wrap around the end of the player list.
		{3, 3, PositionButton},
		{3, 1, PositionSB},
		{3, 2, PositionBB},
	}

	for i, tc := range testCases {
		h := threeSeatHand(tc.dealerSeat)
		position, err := ResolvePosition(h, tc.playerID)
		if err != nil {
			t.Errorf("Test case %d dealerSeat: %d, playerID: %d, unexpected error: %v", i, tc.dealerSeat, tc.playerID, err)
			continue
		}
		if position != tc.expected {
			t.Errorf("Test case %d dealerSeat: %d, playerID: %d, expected: %s, actual: %s", i, tc.dealerSeat, tc.playerID, tc.expected, position)
		}
	}
}

func TestResolvePositionOther(t *testing.T) {
	h := &HandHistory{
		DealerSeat: 1,
		Players: []Player{
			{ID: 1, Seat: 1},
			{ID: 2, Seat: 2},
			{ID: 3, Seat: 3},
			{ID: 4, Seat: 4},
			{ID: 5, Seat: 5},
		},
	}

	position, err := ResolvePosition(h, 4)
	assert.NoError(t, err)
	assert.Equal(t, PositionOther, position)

	position, err = ResolvePosition(h, 5)
	assert.NoError(t, err)
	assert.Equal(t, PositionOther, position)
}

func TestResolvePositionHeadsUp(t *testing.T) {
	// Heads up the dealer is reported as Button, not as the small blind.
	h := &HandHistory{
		DealerSeat: 1,
		Players: []Player{
			{ID: 1, Seat: 1},
			{ID: 2, Seat: 2},
		},
	}

	position, err := ResolvePosition(h, 1)
	assert.NoError(t, err)
	assert.Equal(t, PositionButton, position)

	position, err = ResolvePosition(h, 2)
	assert.NoError(t, err)
	assert.Equal(t, PositionSB, position)
}

func TestResolvePositionPlayerNotFound(t *testing.T) {
	h := threeSeatHand(1)
	_, err := ResolvePosition(h, 99)
	assert.Error(t, err)
	assert.IsType(t, PlayerNotFoundError{}, err)
}

func TestResolvePositionDealerSeatNotFound(t *testing.T) {
	h := threeSeatHand(9)
	_, err := ResolvePosition(h, 1)
	assert.Error(t, err)
	assert.IsType(t, DealerSeatNotFoundError{}, err)
}
