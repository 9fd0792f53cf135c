package handscript

import (
	"fmt"
	"io/ioutil"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/homanp/ohh/hand"
)

// Script contains hand script YAML content: a declarative hand definition
// plus the results the hand is expected to settle to.
type Script struct {
	Disabled bool     `yaml:"disabled"`
	Hand     Hand     `yaml:"hand"`
	Players  []Player `yaml:"players"`
	Rounds   []Round  `yaml:"rounds"`
	Pots     []Pot    `yaml:"pots"`
	Verify   Verify   `yaml:"verify"`
}

/*
  hand:
    game-number: "script-1"
    game-type: Holdem
    table-size: 3
    small-blind: 5
    big-blind: 10
    dealer-seat: 1
    hero-player: 1
*/
type Hand struct {
	GameNumber string `yaml:"game-number"`
	GameType   string `yaml:"game-type"`
	TableSize  int    `yaml:"table-size"`
	SmallBlind int64  `yaml:"small-blind"`
	BigBlind   int64  `yaml:"big-blind"`
	Ante       int64  `yaml:"ante"`
	DealerSeat int    `yaml:"dealer-seat"`
	HeroPlayer int    `yaml:"hero-player"`
}

type Player struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Seat          int      `yaml:"seat"`
	StartingStack int64    `yaml:"starting-stack"`
	Cards         []string `yaml:"cards"`
}

type Round struct {
	ID      int      `yaml:"id"`
	Street  string   `yaml:"street"`
	Cards   []string `yaml:"cards"`
	Actions []Action `yaml:"actions"`
}

type Action struct {
	Player int    `yaml:"player"`
	Action string `yaml:"action"`
	Amount int64  `yaml:"amount"`
	AllIn  bool   `yaml:"all-in"`
}

type Pot struct {
	Number  int   `yaml:"number"`
	Amount  int64 `yaml:"amount"`
	Rake    int64 `yaml:"rake"`
	Winners []int `yaml:"winners"`
}

type Verify struct {
	TotalCommitted int64            `yaml:"total-committed"`
	Results        []PlayerResult   `yaml:"results"`
	Positions      []PlayerPosition `yaml:"positions"`
}

type PlayerResult struct {
	Player       int   `yaml:"player"`
	Contribution int64 `yaml:"contribution"`
	Winnings     int64 `yaml:"winnings"`
	Result       int64 `yaml:"result"`
	Profited     bool  `yaml:"profited"`
}

type PlayerPosition struct {
	Player   int    `yaml:"player"`
	Position string `yaml:"position"`
}

// ReadHandScript reads and validates a hand script file.
func ReadHandScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading hand script file [%s]", fileName)
	}

	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}

	err = script.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Error validating script [%s]", fileName)
	}

	return &script, nil
}

func (s *Script) Validate() error {
	playerIDs := mapset.NewSet()
	playerSeats := mapset.NewSet()
	for _, player := range s.Players {
		if !playerIDs.Add(player.ID) {
			return fmt.Errorf("Duplicate player id [%d]", player.ID)
		}
		if !playerSeats.Add(player.Seat) {
			return fmt.Errorf("Duplicate player seat [%d]", player.Seat)
		}
	}

	roundIDs := mapset.NewSet()
	for _, round := range s.Rounds {
		if !roundIDs.Add(round.ID) {
			return fmt.Errorf("Duplicate round id [%d]", round.ID)
		}
		for _, action := range round.Actions {
			if !playerIDs.Contains(action.Player) {
				return fmt.Errorf("Round [%d] action references unknown player [%d]", round.ID, action.Player)
			}
		}
	}

	for _, pot := range s.Pots {
		for _, winner := range pot.Winners {
			if !playerIDs.Contains(winner) {
				return fmt.Errorf("Pot [%d] references unknown winner [%d]", pot.Number, winner)
			}
		}
	}
	return nil
}

// BuildHand assembles the hand history record described by the script.
// Action numbers are assigned in script order across the whole hand.
func (s *Script) BuildHand() (*hand.HandHistory, error) {
	config := hand.DefaultConfig()
	config.GameNumber = s.Hand.GameNumber
	if s.Hand.GameType != "" {
		config.GameType = s.Hand.GameType
	}
	if s.Hand.TableSize != 0 {
		config.TableSize = s.Hand.TableSize
	}
	config.SmallBlindAmount = s.Hand.SmallBlind
	config.BigBlindAmount = s.Hand.BigBlind
	config.AnteAmount = s.Hand.Ante
	config.DealerSeat = s.Hand.DealerSeat
	config.HeroPlayerID = s.Hand.HeroPlayer

	builder := hand.NewBuilder(config)
	for _, player := range s.Players {
		builder.AddPlayer(hand.Player{
			ID:            player.ID,
			Seat:          player.Seat,
			StartingStack: player.StartingStack,
			Name:          player.Name,
			Cards:         player.Cards,
		})
	}

	actionNumber := 0
	for _, round := range s.Rounds {
		builder.AddRound(hand.Round{
			ID:     round.ID,
			Street: hand.Street(round.Street),
			Cards:  round.Cards,
		})
		for _, action := range round.Actions {
			actionNumber++
			err := builder.AddActionToRound(round.ID, hand.Action{
				ActionNumber: actionNumber,
				PlayerID:     action.Player,
				Action:       hand.ActionType(action.Action),
				Amount:       action.Amount,
				IsAllIn:      action.AllIn,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "Unable to add action [%d] to round [%d]", actionNumber, round.ID)
			}
		}
	}

	for _, pot := range s.Pots {
		playerWins := make([]hand.PlayerWin, len(pot.Winners))
		for i, winner := range pot.Winners {
			playerWins[i] = hand.PlayerWin{PlayerID: winner}
		}
		err := builder.AddPot(hand.Pot{
			Number:     pot.Number,
			Amount:     pot.Amount,
			Rake:       pot.Rake,
			PlayerWins: playerWins,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to add pot [%d]", pot.Number)
		}
	}

	return builder.Hand(), nil
}
