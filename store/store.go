// Package store persists generated sample batches and game ledgers in SQLite.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/luca-patrignani/elemental-clash/dataset"
	"github.com/luca-patrignani/elemental-clash/domain/clash"
	"github.com/luca-patrignani/elemental-clash/ledger"
)

// Store wraps a SQLite connection.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS batches (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		players INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS samples (
		batch_id TEXT NOT NULL REFERENCES batches(id),
		idx INTEGER NOT NULL,
		cards_json TEXT NOT NULL,
		winner TEXT NOT NULL,
		PRIMARY KEY (batch_id, idx)
	);

	CREATE TABLE IF NOT EXISTS blocks (
		game_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		hash TEXT NOT NULL,
		prev_hash TEXT NOT NULL,
		block_json TEXT NOT NULL,
		PRIMARY KEY (game_id, idx)
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Batch describes a stored set of samples.
type Batch struct {
	ID      string `db:"id"`
	Seed    int64  `db:"seed"`
	Players int    `db:"players"`
}

type sampleRow struct {
	Index     int    `db:"idx"`
	CardsJSON string `db:"cards_json"`
	Winner    string `db:"winner"`
}

// SaveBatch stores samples generated from seed under batchID.
func (s *Store) SaveBatch(batch Batch, samples []dataset.Sample) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExec(`INSERT INTO batches (id, seed, players) VALUES (:id, :seed, :players)`, batch); err != nil {
		return fmt.Errorf("insert batch %s: %w", batch.ID, err)
	}
	for _, sm := range samples {
		cards, err := json.Marshal(sm.PlayerCards)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO samples (batch_id, idx, cards_json, winner) VALUES (?, ?, ?, ?)`,
			batch.ID, sm.ID, string(cards), sm.Winner); err != nil {
			return fmt.Errorf("insert sample %d: %w", sm.ID, err)
		}
	}
	return tx.Commit()
}

// LoadBatch returns the batch and its samples in index order.
func (s *Store) LoadBatch(batchID string) (Batch, []dataset.Sample, error) {
	var batch Batch
	if err := s.conn.Get(&batch, `SELECT id, seed, players FROM batches WHERE id = ?`, batchID); err != nil {
		return Batch{}, nil, fmt.Errorf("load batch %s: %w", batchID, err)
	}
	var rows []sampleRow
	if err := s.conn.Select(&rows, `SELECT idx, cards_json, winner FROM samples WHERE batch_id = ? ORDER BY idx`, batchID); err != nil {
		return Batch{}, nil, err
	}
	samples := make([]dataset.Sample, 0, len(rows))
	for _, r := range rows {
		var round clash.Round
		if err := json.Unmarshal([]byte(r.CardsJSON), &round); err != nil {
			return Batch{}, nil, fmt.Errorf("sample %d: %w", r.Index, err)
		}
		samples = append(samples, dataset.Sample{ID: r.Index, PlayerCards: round, Winner: r.Winner})
	}
	return batch, samples, nil
}

// ListBatches returns every stored batch, oldest first.
func (s *Store) ListBatches() ([]Batch, error) {
	var batches []Batch
	err := s.conn.Select(&batches, `SELECT id, seed, players FROM batches ORDER BY created_at, id`)
	return batches, err
}

// SaveChain replaces the stored ledger of the chain's game.
func (s *Store) SaveChain(bc *ledger.Blockchain) error {
	if err := bc.Verify(); err != nil {
		return fmt.Errorf("refusing to store invalid chain: %w", err)
	}
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM blocks WHERE game_id = ?`, bc.GameID()); err != nil {
		return err
	}
	for _, b := range bc.Blocks() {
		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO blocks (game_id, idx, hash, prev_hash, block_json) VALUES (?, ?, ?, ?, ?)`,
			bc.GameID(), b.Index, b.Hash, b.PrevHash, string(data)); err != nil {
			return fmt.Errorf("insert block %d: %w", b.Index, err)
		}
	}
	return tx.Commit()
}

// LoadChain rebuilds and verifies the ledger of gameID.
func (s *Store) LoadChain(gameID string) (*ledger.Blockchain, error) {
	var payloads []string
	if err := s.conn.Select(&payloads, `SELECT block_json FROM blocks WHERE game_id = ? ORDER BY idx`, gameID); err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("no ledger stored for game %s", gameID)
	}
	blocks := make([]ledger.Block, len(payloads))
	for i, p := range payloads {
		if err := json.Unmarshal([]byte(p), &blocks[i]); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return ledger.FromBlocks(gameID, blocks)
}
