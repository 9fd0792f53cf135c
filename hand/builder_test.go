package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderDefaults(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	h := builder.Hand()

	assert.Equal(t, "1.4.6", h.SpecVersion)
	assert.Equal(t, "CustomGame", h.NetworkName)
	assert.Equal(t, "HomeGame", h.SiteName)
	assert.Equal(t, "Holdem", h.GameType)
	assert.Equal(t, "Sample Table", h.TableName)
	assert.Equal(t, 3, h.TableSize)
	assert.Equal(t, "Chips", h.Currency)
	assert.Equal(t, int64(1), h.SmallBlindAmount)
	assert.Equal(t, int64(2), h.BigBlindAmount)
	assert.Equal(t, "NL", h.BetLimit.BetType)
	assert.Equal(t, 1, h.DealerSeat)

	// An omitted game number and start date are filled in.
	assert.NotEmpty(t, h.GameNumber)
	assert.NotEmpty(t, h.StartDateUTC)
}

func TestNewBuilderKeepsExplicitGameNumber(t *testing.T) {
	config := DefaultConfig()
	config.GameNumber = "g-123"
	config.StartDateUTC = "2021-07-01T10:00:00Z"

	h := NewBuilder(config).Hand()
	assert.Equal(t, "g-123", h.GameNumber)
	assert.Equal(t, "2021-07-01T10:00:00Z", h.StartDateUTC)
}

func TestBuilderPreservesInsertionOrder(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 3, Seat: 3})
	builder.AddPlayer(Player{ID: 1, Seat: 1})
	builder.AddPlayer(Player{ID: 2, Seat: 2})
	builder.AddRound(Round{ID: 2, Street: StreetFlop})
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	h := builder.Hand()
	assert.Equal(t, []int{3, 1, 2}, []int{h.Players[0].ID, h.Players[1].ID, h.Players[2].ID})
	assert.Equal(t, []int{2, 1}, []int{h.Rounds[0].ID, h.Rounds[1].ID})
}

func TestAddActionToRound(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 1, Seat: 1})
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	err := builder.AddActionToRound(1, Action{ActionNumber: 1, PlayerID: 1, Action: ActionPostSB, Amount: 1})
	assert.NoError(t, err)

	h := builder.Hand()
	assert.Len(t, h.Rounds[0].Actions, 1)
	assert.Equal(t, ActionPostSB, h.Rounds[0].Actions[0].Action)
}

func TestAddActionToRoundUnknownPlayer(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	err := builder.AddActionToRound(1, Action{ActionNumber: 1, PlayerID: 99, Action: ActionCheck})
	assert.Error(t, err)
	assert.IsType(t, PlayerNotFoundError{}, err)
}

func TestAddActionToRoundUnknownRoundIsNoop(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 1, Seat: 1})
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	err := builder.AddActionToRound(9, Action{ActionNumber: 1, PlayerID: 1, Action: ActionCheck})
	assert.NoError(t, err)
	assert.Empty(t, builder.Hand().Rounds[0].Actions)
}

func TestAddActionToRoundNegativeAmount(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 1, Seat: 1})
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	err := builder.AddActionToRound(1, Action{ActionNumber: 1, PlayerID: 1, Action: ActionBet, Amount: -5})
	assert.Error(t, err)
	assert.IsType(t, InvalidActionError{}, err)

	// Non-monetary actions carry no amount and are not validated against it.
	err = builder.AddActionToRound(1, Action{ActionNumber: 2, PlayerID: 1, Action: ActionFold, Amount: -5})
	assert.NoError(t, err)
}

func TestAddPotFillsWinAmounts(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 1, Seat: 1})
	builder.AddPlayer(Player{ID: 2, Seat: 2})
	builder.AddPlayer(Player{ID: 3, Seat: 3})
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	actions := []Action{
		{ActionNumber: 1, PlayerID: 2, Action: ActionPostSB, Amount: 5},
		{ActionNumber: 2, PlayerID: 3, Action: ActionPostBB, Amount: 10},
		{ActionNumber: 3, PlayerID: 1, Action: ActionRaise, Amount: 20},
		{ActionNumber: 4, PlayerID: 2, Action: ActionCall, Amount: 15},
		{ActionNumber: 5, PlayerID: 3, Action: ActionFold},
	}
	for _, action := range actions {
		err := builder.AddActionToRound(1, action)
		assert.NoError(t, err)
	}

	err := builder.AddPot(Pot{
		Number:     0,
		Amount:     40,
		PlayerWins: []PlayerWin{{PlayerID: 1}},
	})
	assert.NoError(t, err)

	h := builder.Hand()
	assert.Equal(t, int64(40), h.Pots[0].PlayerWins[0].WinAmount)
}

func TestAddPotUnknownWinner(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 1, Seat: 1})

	err := builder.AddPot(Pot{
		Number:     0,
		Amount:     10,
		PlayerWins: []PlayerWin{{PlayerID: 99}},
	})
	assert.Error(t, err)
	assert.IsType(t, PlayerNotFoundError{}, err)
}

func TestHandReturnsIsolatedSnapshot(t *testing.T) {
	builder := NewBuilder(DefaultConfig())
	builder.AddPlayer(Player{ID: 1, Seat: 1, Cards: []string{"Kh", "Qd"}})
	builder.AddRound(Round{ID: 1, Street: StreetPreflop})

	snapshot := builder.Hand()
	snapshot.Players[0].Cards[0] = "2c"
	snapshot.Players[0].ID = 7

	h := builder.Hand()
	assert.Equal(t, "Kh", h.Players[0].Cards[0])
	assert.Equal(t, 1, h.Players[0].ID)
}
