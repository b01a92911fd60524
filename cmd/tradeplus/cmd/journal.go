package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List an account's journaled trades",
	Args:  cobra.NoArgs,
	RunE:  runJournal,
}

var journalAccount string

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().StringVarP(&journalAccount, "account", "a", "", "account ID (required)")
	_ = journalCmd.MarkFlagRequired("account")
}

func runJournal(cmd *cobra.Command, args []string) error {
	store, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rows, err := store.ListTrades(journalAccount)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range rows {
		pnl := "n/a"
		if !math.IsNaN(r.Pnl) {
			pnl = fmt.Sprintf("%.2f", r.Pnl)
		}
		fmt.Fprintf(out, "%s %-5s  %-10s %-5s %-4s  %s\n",
			r.Date, r.Time, r.Symbol, r.Direction, r.Outcome, pnl)
	}
	fmt.Fprintf(out, "%d trades\n", len(rows))
	return nil
}
