package hand

import (
	"time"

	"github.com/google/uuid"
)

const (
	defaultSpecVersion = "1.4.6"
	defaultNetworkName = "CustomGame"
	defaultSiteName    = "HomeGame"
	defaultGameType    = "Holdem"
	defaultTableName   = "Sample Table"
	defaultCurrency    = "Chips"
	defaultBetType     = "NL"
)

// Config carries the hand-level configuration fixed for the hand's lifetime.
type Config struct {
	SpecVersion      string
	InternalVersion  string
	NetworkName      string
	SiteName         string
	GameType         string
	TableName        string
	TableSize        int
	GameNumber       string
	StartDateUTC     string
	Currency         string
	AnteAmount       int64
	SmallBlindAmount int64
	BigBlindAmount   int64
	BetCap           int64
	BetType          string
	DealerSeat       int
	HeroPlayerID     int
}

func DefaultConfig() Config {
	return Config{
		SpecVersion:      defaultSpecVersion,
		InternalVersion:  defaultSpecVersion,
		NetworkName:      defaultNetworkName,
		SiteName:         defaultSiteName,
		GameType:         defaultGameType,
		TableName:        defaultTableName,
		TableSize:        3,
		Currency:         defaultCurrency,
		SmallBlindAmount: 1,
		BigBlindAmount:   2,
		BetType:          defaultBetType,
		DealerSeat:       1,
	}
}

// Builder assembles a HandHistory by appending players, rounds, actions and
// pots. It owns its working record exclusively; Hand returns snapshots.
type Builder struct {
	hand *HandHistory
}

// NewBuilder creates a builder for a new hand. An empty game number gets a
// generated one, and an empty start date gets the current UTC time.
func NewBuilder(config Config) *Builder {
	gameNumber := config.GameNumber
	if gameNumber == "" {
		gameNumber = uuid.New().String()
	}
	startDate := config.StartDateUTC
	if startDate == "" {
		startDate = time.Now().UTC().Format(time.RFC3339)
	}

	hand := &HandHistory{
		SpecVersion:      config.SpecVersion,
		InternalVersion:  config.InternalVersion,
		NetworkName:      config.NetworkName,
		SiteName:         config.SiteName,
		GameType:         config.GameType,
		TableName:        config.TableName,
		TableSize:        config.TableSize,
		GameNumber:       gameNumber,
		StartDateUTC:     startDate,
		Currency:         config.Currency,
		AnteAmount:       config.AnteAmount,
		SmallBlindAmount: config.SmallBlindAmount,
		BigBlindAmount:   config.BigBlindAmount,
		BetLimit: BetLimit{
			BetCap:  config.BetCap,
			BetType: config.BetType,
		},
		DealerSeat:   config.DealerSeat,
		HeroPlayerID: config.HeroPlayerID,
		Players:      make([]Player, 0),
		Rounds:       make([]Round, 0),
		Pots:         make([]Pot, 0),
	}
	return &Builder{hand: hand}
}

func (b *Builder) AddPlayer(player Player) {
	b.hand.Players = append(b.hand.Players, player)
}

func (b *Builder) AddRound(round Round) {
	if round.Actions == nil {
		round.Actions = make([]Action, 0)
	}
	b.hand.Rounds = append(b.hand.Rounds, round)
}

// AddActionToRound appends an action to the round with the given id. Adding
// to a round that does not exist is a no-op, not an error; callers must not
// rely on the round lookup failing loudly.
func (b *Builder) AddActionToRound(roundID int, action Action) error {
	if _, ok := b.hand.FindPlayer(action.PlayerID); !ok {
		return PlayerNotFoundError{PlayerID: action.PlayerID}
	}
	if action.Action.IsMonetary() && action.Amount < 0 {
		return InvalidActionError{
			ActionNumber: action.ActionNumber,
			Msg:          "monetary action requires a non-negative amount",
		}
	}

	round, ok := b.hand.FindRound(roundID)
	if !ok {
		return nil
	}
	round.Actions = append(round.Actions, action)
	return nil
}

// AddPot records an awarded pot. The win amount of every listed winner is
// filled in from the settlement engine; callers only name who won.
func (b *Builder) AddPot(pot Pot) error {
	for i := range pot.PlayerWins {
		payout, err := EstimatePayout(b.hand, pot.PlayerWins[i].PlayerID)
		if err != nil {
			return err
		}
		pot.PlayerWins[i].WinAmount = payout
	}
	if pot.PlayerWins == nil {
		pot.PlayerWins = make([]PlayerWin, 0)
	}
	b.hand.Pots = append(b.hand.Pots, pot)
	return nil
}

// Hand returns an isolated snapshot of the record built so far.
func (b *Builder) Hand() *HandHistory {
	return b.hand.Clone()
}
