package journal

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('accounts','trades')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["accounts"])
	assert.True(t, found["trades"])
}

func TestSQLiteAccountRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	a := AccountRow{ID: "ACC-1", Name: "Eval 50k", Config: `{"starting_balance": 50000}`}
	require.NoError(t, s.SaveAccount(a))

	got, err := s.GetAccount("ACC-1")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	// Upsert replaces the stored config.
	a.Config = `{"starting_balance": 100000}`
	require.NoError(t, s.SaveAccount(a))
	got, err = s.GetAccount("ACC-1")
	require.NoError(t, err)
	assert.Equal(t, a.Config, got.Config)
}

func TestSQLiteGetAccountMissing(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.GetAccount("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteTradesRoundTripInOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	rows := []TradeRow{
		{ID: "01A", AccountID: "ACC-1", Date: "2024-03-05", Time: "09:00", Symbol: "NQ", Direction: "long", Outcome: "win", Pnl: 250},
		{ID: "01B", AccountID: "ACC-1", Date: "2024-03-05", Time: "09:00", Symbol: "NQ", Direction: "short", Outcome: "loss", Pnl: -120},
		{ID: "01C", AccountID: "ACC-2", Date: "2024-03-06", Time: "10:00", Symbol: "ES", Direction: "long", Outcome: "win", Pnl: 80},
	}
	for _, r := range rows {
		require.NoError(t, s.SaveTrade(r))
	}

	got, err := s.ListTrades("ACC-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ULID primary keys list in insertion order.
	assert.Equal(t, "01A", got[0].ID)
	assert.Equal(t, "01B", got[1].ID)
	assert.Equal(t, rows[0], got[0])
	assert.Equal(t, rows[1], got[1])
}

func TestSQLiteNaNPnlRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.SaveTrade(TradeRow{
		ID: "01A", AccountID: "ACC-1", Date: "2024-03-05", Pnl: math.NaN(),
	}))

	got, err := s.ListTrades("ACC-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0].Pnl))
}
