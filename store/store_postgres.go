package store

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/homanp/ohh/hand"
)

const handHistorySchema = `
CREATE TABLE IF NOT EXISTS hand_history (
	game_number TEXT PRIMARY KEY,
	data JSONB NOT NULL
)`

// PostgresHandStore keeps hand documents in a jsonb column keyed by game
// number.
type PostgresHandStore struct {
	db *sqlx.DB
}

func NewPostgresHandStore(connStr string) (*PostgresHandStore, error) {
	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to connect to postgres")
	}
	_, err = db.Exec(handHistorySchema)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to create hand_history table")
	}
	return &PostgresHandStore{db: db}, nil
}

func (p *PostgresHandStore) Save(h *hand.HandHistory) error {
	data, err := jsoniter.Marshal(h)
	if err != nil {
		return err
	}
	_, err = p.db.Exec(
		`INSERT INTO hand_history (game_number, data) VALUES ($1, $2)
		 ON CONFLICT (game_number) DO UPDATE SET data = $2`,
		h.GameNumber, data)
	if err != nil {
		return errors.Wrapf(err, "Unable to save hand history for game [%s]", h.GameNumber)
	}
	return nil
}

func (p *PostgresHandStore) Load(gameNumber string) (*hand.HandHistory, error) {
	var data []byte
	err := p.db.Get(&data, `SELECT data FROM hand_history WHERE game_number = $1`, gameNumber)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("Hand history for game [%s] is not found", gameNumber)
	} else if err != nil {
		return nil, errors.Wrapf(err, "Unable to load hand history for game [%s]", gameNumber)
	}
	loaded := &hand.HandHistory{}
	err = jsoniter.Unmarshal(data, loaded)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func (p *PostgresHandStore) Remove(gameNumber string) error {
	_, err := p.db.Exec(`DELETE FROM hand_history WHERE game_number = $1`, gameNumber)
	if err != nil {
		return errors.Wrapf(err, "Unable to remove hand history for game [%s]", gameNumber)
	}
	return nil
}
