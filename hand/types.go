package hand

// Street identifies a betting round of a hand. Streets occur in a fixed
// canonical order.
type Street string

const (
	StreetPreflop  Street = "Preflop"
	StreetFlop     Street = "Flop"
	StreetTurn     Street = "Turn"
	StreetRiver    Street = "River"
	StreetShowdown Street = "Showdown"
)

// ActionType identifies what a player did.
type ActionType string

const (
	ActionPostSB     ActionType = "Post SB"
	ActionPostBB     ActionType = "Post BB"
	ActionFold       ActionType = "Fold"
	ActionCheck      ActionType = "Check"
	ActionBet        ActionType = "Bet"
	ActionRaise      ActionType = "Raise"
	ActionCall       ActionType = "Call"
	ActionDealtCards ActionType = "Dealt Cards"
)

// IsMonetary reports whether the action moves chips into the pot and
// therefore requires an amount.
func (a ActionType) IsMonetary() bool {
	switch a {
	case ActionPostSB, ActionPostBB, ActionBet, ActionRaise, ActionCall:
		return true
	}
	return false
}

type Player struct {
	ID            int      `json:"id"`
	Seat          int      `json:"seat"`
	StartingStack int64    `json:"starting_stack"`
	Name          string   `json:"name"`
	Cards         []string `json:"cards,omitempty"`
}

type Action struct {
	ActionNumber int        `json:"action_number"`
	PlayerID     int        `json:"player_id"`
	Action       ActionType `json:"action"`
	Amount       int64      `json:"amount,omitempty"`
	IsAllIn      bool       `json:"is_allin,omitempty"`
}

type Round struct {
	ID      int      `json:"id"`
	Street  Street   `json:"street"`
	Cards   []string `json:"cards,omitempty"`
	Actions []Action `json:"actions"`
}

type PlayerWin struct {
	PlayerID  int   `json:"player_id"`
	WinAmount int64 `json:"win_amount"`
}

type Pot struct {
	Number     int         `json:"number"`
	Amount     int64       `json:"amount"`
	Rake       int64       `json:"rake,omitempty"`
	PlayerWins []PlayerWin `json:"player_wins"`
}

type BetLimit struct {
	BetCap  int64  `json:"bet_cap"`
	BetType string `json:"bet_type"`
}

// HandHistory is a single hand in the Open Hand History format. The field
// order matches the serialized document and is part of the external contract.
type HandHistory struct {
	SpecVersion      string   `json:"spec_version"`
	InternalVersion  string   `json:"internal_version"`
	NetworkName      string   `json:"network_name"`
	SiteName         string   `json:"site_name"`
	GameType         string   `json:"game_type"`
	TableName        string   `json:"table_name"`
	TableSize        int      `json:"table_size"`
	GameNumber       string   `json:"game_number"`
	StartDateUTC     string   `json:"start_date_utc"`
	Currency         string   `json:"currency"`
	AnteAmount       int64    `json:"ante_amount"`
	SmallBlindAmount int64    `json:"small_blind_amount"`
	BigBlindAmount   int64    `json:"big_blind_amount"`
	BetLimit         BetLimit `json:"bet_limit"`
	DealerSeat       int      `json:"dealer_seat"`
	HeroPlayerID     int      `json:"hero_player_id"`
	Players          []Player `json:"players"`
	Rounds           []Round  `json:"rounds"`
	Pots             []Pot    `json:"pots"`
}

func (h *HandHistory) FindPlayer(playerID int) (Player, bool) {
	for _, player := range h.Players {
		if player.ID == playerID {
			return player, true
		}
	}
	return Player{}, false
}

func (h *HandHistory) FindRound(roundID int) (*Round, bool) {
	for i := range h.Rounds {
		if h.Rounds[i].ID == roundID {
			return &h.Rounds[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy. Settlement callers read snapshots, never the
// builder's working record.
func (h *HandHistory) Clone() *HandHistory {
	clone := *h
	clone.Players = make([]Player, len(h.Players))
	for i, player := range h.Players {
		clone.Players[i] = player
		clone.Players[i].Cards = copyCards(player.Cards)
	}
	clone.Rounds = make([]Round, len(h.Rounds))
	for i, round := range h.Rounds {
		clone.Rounds[i] = round
		clone.Rounds[i].Cards = copyCards(round.Cards)
		clone.Rounds[i].Actions = make([]Action, len(round.Actions))
		copy(clone.Rounds[i].Actions, round.Actions)
	}
	clone.Pots = make([]Pot, len(h.Pots))
	for i, pot := range h.Pots {
		clone.Pots[i] = pot
		clone.Pots[i].PlayerWins = make([]PlayerWin, len(pot.PlayerWins))
		copy(clone.Pots[i].PlayerWins, pot.PlayerWins)
	}
	return &clone
}

func copyCards(cards []string) []string {
	if cards == nil {
		return nil
	}
	copied := make([]string, len(cards))
	copy(copied, cards)
	return copied
}
