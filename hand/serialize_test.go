package hand

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleHand() *HandHistory {
	h := uncalledRaiseHand()
	h.SpecVersion = "1.4.6"
	h.InternalVersion = "1.4.6"
	h.NetworkName = "CustomGame"
	h.SiteName = "HomeGame"
	h.GameType = "Holdem"
	h.TableName = "Sample Table"
	h.TableSize = 3
	h.GameNumber = "g-serialize"
	h.StartDateUTC = "2021-07-01T10:00:00Z"
	h.Currency = "Chips"
	h.BetLimit = BetLimit{BetType: "NL"}
	h.Pots = []Pot{
		{Number: 0, Amount: 40, PlayerWins: []PlayerWin{{PlayerID: 1, WinAmount: 40}}},
	}
	return h
}

func TestJSONRoundTrip(t *testing.T) {
	h := sampleHand()

	data, err := ToJSON(h)
	assert.NoError(t, err)

	parsed, err := ParseHand(data)
	assert.NoError(t, err)
	if !cmp.Equal(h, parsed) {
		t.Errorf("Round trip mismatch: %s", cmp.Diff(h, parsed))
	}
}

func TestJSONSerializationIdempotent(t *testing.T) {
	data, err := ToJSON(sampleHand())
	assert.NoError(t, err)

	parsed, err := ParseHand(data)
	assert.NoError(t, err)
	reserialized, err := ToJSON(parsed)
	assert.NoError(t, err)

	// Serializing a parsed document reproduces the bytes exactly.
	assert.Equal(t, data, reserialized)
}

func TestJSONFieldNames(t *testing.T) {
	data, err := ToJSON(sampleHand())
	assert.NoError(t, err)

	document := string(data)
	fields := []string{
		`"spec_version"`,
		`"internal_version"`,
		`"network_name"`,
		`"site_name"`,
		`"game_type"`,
		`"table_name"`,
		`"table_size"`,
		`"game_number"`,
		`"start_date_utc"`,
		`"currency"`,
		`"ante_amount"`,
		`"small_blind_amount"`,
		`"big_blind_amount"`,
		`"bet_limit"`,
		`"bet_cap"`,
		`"bet_type"`,
		`"dealer_seat"`,
		`"hero_player_id"`,
		`"players"`,
		`"starting_stack"`,
		`"rounds"`,
		`"street"`,
		`"actions"`,
		`"action_number"`,
		`"player_id"`,
		`"pots"`,
		`"player_wins"`,
		`"win_amount"`,
	}
	for _, field := range fields {
		if !strings.Contains(document, field) {
			t.Errorf("Serialized document is missing field %s", field)
		}
	}
}

func TestJSONOmitsEmptyOptionalFields(t *testing.T) {
	h := sampleHand()
	data, err := ToJSON(h)
	assert.NoError(t, err)

	document := string(data)
	// No player has hole cards and no action is all-in in this hand.
	assert.NotContains(t, document, `"cards"`)
	assert.NotContains(t, document, `"is_allin"`)
	assert.NotContains(t, document, `"rake"`)
}

func TestParseHandWrappedDocument(t *testing.T) {
	h := sampleHand()
	flat, err := ToJSON(h)
	assert.NoError(t, err)

	wrapped := []byte(`{"ohh": ` + string(flat) + `}`)
	parsed, err := ParseHand(wrapped)
	assert.NoError(t, err)
	if !cmp.Equal(h, parsed) {
		t.Errorf("Wrapped document mismatch: %s", cmp.Diff(h, parsed))
	}
}

func TestParseHandInvalidDocument(t *testing.T) {
	_, err := ParseHand([]byte(`not json`))
	assert.Error(t, err)
}

func TestSaveAndReadHandFile(t *testing.T) {
	h := sampleHand()
	fileName := filepath.Join(t.TempDir(), "hand.json")

	err := SaveHandFile(h, fileName)
	assert.NoError(t, err)

	loaded, err := ReadHandFile(fileName)
	assert.NoError(t, err)
	if !cmp.Equal(h, loaded) {
		t.Errorf("File round trip mismatch: %s", cmp.Diff(h, loaded))
	}
}

func TestReadHandFileMissing(t *testing.T) {
	_, err := ReadHandFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
