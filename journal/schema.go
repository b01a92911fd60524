// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	account_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	config TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	outcome TEXT NOT NULL,
	pnl REAL
);

CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id, trade_id);
`
