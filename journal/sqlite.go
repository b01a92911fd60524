package journal

import (
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite persists accounts and trades in a local SQLite file. Trade IDs are
// ULIDs, so listing by primary key returns rows in insertion order — the
// original-order tie-break the engine's stable sort relies on.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) SaveAccount(a AccountRow) error {
	_, err := s.db.Exec(`
		INSERT INTO accounts (account_id, name, config)
		VALUES (?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET name=excluded.name, config=excluded.config`,
		a.ID, a.Name, a.Config,
	)
	return err
}

func (s *SQLite) GetAccount(id string) (AccountRow, error) {
	var a AccountRow

	row := s.db.QueryRow(`
		SELECT account_id, name, config
		FROM accounts
		WHERE account_id = ?`, id)

	if err := row.Scan(&a.ID, &a.Name, &a.Config); err != nil {
		if err == sql.ErrNoRows {
			return AccountRow{}, fmt.Errorf("account %q not found", id)
		}
		return AccountRow{}, err
	}
	return a, nil
}

func (s *SQLite) SaveTrade(t TradeRow) error {
	// NaN pnl (unparseable source value) round-trips through SQL NULL.
	pnl := sql.NullFloat64{Float64: t.Pnl, Valid: !math.IsNaN(t.Pnl)}
	_, err := s.db.Exec(`
		INSERT INTO trades
		(trade_id, account_id, date, time, symbol, direction, outcome, pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.AccountID, t.Date, t.Time, t.Symbol, t.Direction, t.Outcome, pnl,
	)
	return err
}

func (s *SQLite) ListTrades(accountID string) ([]TradeRow, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, account_id, date, time, symbol, direction, outcome, pnl
		FROM trades
		WHERE account_id = ?
		ORDER BY trade_id ASC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRow
	for rows.Next() {
		var rec TradeRow
		var pnl sql.NullFloat64
		if err := rows.Scan(
			&rec.ID,
			&rec.AccountID,
			&rec.Date,
			&rec.Time,
			&rec.Symbol,
			&rec.Direction,
			&rec.Outcome,
			&pnl,
		); err != nil {
			return nil, err
		}
		if pnl.Valid {
			rec.Pnl = pnl.Float64
		} else {
			rec.Pnl = math.NaN()
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
