package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/journal"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/pkg/id"
)

var importCmd = &cobra.Command{
	Use:   "import <trades.csv>",
	Short: "Import a CSV trade export into an account's journal",
	Long: `Import trades from a broker CSV export (date,time,symbol,direction,outcome,pnl).

The account is created on first import. Pass --config to attach or replace
the account's rule configuration (YAML or JSON).

Examples:
  tradeplus import trades.csv --account ACC-1
  tradeplus import trades.csv --account ACC-1 --config rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	importAccount string
	importName    string
	importConfig  string
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importAccount, "account", "a", "", "account ID (required)")
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "account display name")
	importCmd.Flags().StringVarP(&importConfig, "config", "c", "", "account rule config file (YAML or JSON)")
	_ = importCmd.MarkFlagRequired("account")
}

func runImport(cmd *cobra.Command, args []string) error {
	rows, err := journal.ReadCSVFile(args[0])
	if err != nil {
		return fmt.Errorf("read trades: %w", err)
	}

	store, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	acct := journal.AccountRow{ID: importAccount, Name: importName}
	if acct.Name == "" {
		acct.Name = importAccount
	}
	if importConfig != "" {
		raw, err := config.LoadFile(importConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		blob, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		acct.Config = string(blob)
	} else if existing, err := store.GetAccount(importAccount); err == nil {
		acct = existing
	} else {
		acct.Config = "{}"
	}
	if err := store.SaveAccount(acct); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	for i := range rows {
		rows[i].ID = id.New()
		rows[i].AccountID = importAccount
		if err := store.SaveTrade(rows[i]); err != nil {
			return fmt.Errorf("save trade %d: %w", i, err)
		}
	}

	fmt.Fprintf(os.Stdout, "imported %d trades into %s\n", len(rows), importAccount)
	return nil
}
