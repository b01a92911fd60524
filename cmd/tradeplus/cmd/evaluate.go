package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/config"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/journal"
	"github.com/sfxmmy/LSD-TRADEPLUS-sub000/risk"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an account's trades against its risk rules",
	Long: `Run the drawdown and risk-rule engine over an account's journal.

Prints the challenge status, any breaches, each rule's individual state and
the remaining margins. Pass --config to evaluate against a rule file instead
of the configuration stored with the account.

Examples:
  tradeplus evaluate --account ACC-1
  tradeplus evaluate --account ACC-1 --config rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

var (
	evalAccount string
	evalConfig  string
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVarP(&evalAccount, "account", "a", "", "account ID (required)")
	evaluateCmd.Flags().StringVarP(&evalConfig, "config", "c", "", "rule config file overriding the stored one")
	_ = evaluateCmd.MarkFlagRequired("account")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	store, err := journal.NewSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	rows, err := store.ListTrades(evalAccount)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	var raw *config.Account
	if evalConfig != "" {
		raw, err = config.LoadFile(evalConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		acct, err := store.GetAccount(evalAccount)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		raw = &config.Account{}
		// Stored blobs are whatever the dashboard wrote; the normalizer
		// absorbs anything malformed, so a decode failure only matters if
		// the blob is not JSON at all.
		if err := json.Unmarshal([]byte(acct.Config), raw); err != nil {
			return fmt.Errorf("decode stored config: %w", err)
		}
	}

	report := risk.Evaluate(journal.Trades(rows), raw.Normalize())
	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, r risk.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "status: %s", r.Challenge.Status)
	if r.Challenge.Reason != "" {
		fmt.Fprintf(out, " (%s)", r.Challenge.Reason)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "points: %d\n", len(r.Points))

	for _, b := range r.Breaches {
		fmt.Fprintf(out, "breach: %-11s at #%d on %s  value=%.2f limit=%.2f\n",
			b.Kind, b.AtIndex, b.Date, b.Value, b.Limit)
	}

	if r.Target.Enabled {
		fmt.Fprintf(out, "target: %.2f  progress %.1f%%  passed=%v\n",
			r.Target.Target, r.Target.ProgressPct, r.Target.Passed)
	}
	if r.Consistency.Enabled {
		fmt.Fprintf(out, "consistency: cap/day %.2f  passed=%v\n",
			r.Consistency.MaxAllowedPerDay, r.Consistency.Passed)
	}

	rem := r.RemainingMargins()
	if len(r.Floors.Daily) > 0 {
		fmt.Fprintf(out, "daily floor: %.2f  remaining %.2f\n",
			r.Floors.Daily[len(r.Floors.Daily)-1].Floor, rem.DailyRemaining)
	}
	if len(r.Floors.Max) > 0 {
		fmt.Fprintf(out, "max floor:   %.2f  remaining %.2f\n",
			r.Floors.Max[len(r.Floors.Max)-1].Floor, rem.MaxRemaining)
	}
}
