package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradeplus",
	Short: "Trade journal with prop-firm style risk-rule evaluation",
	Long: `Tradeplus keeps a local trade journal and evaluates it against
prop-firm style account rules.

It provides tools for:
  - Importing broker CSV trade exports into a SQLite journal
  - Evaluating daily and maximum drawdown floors (static or trailing)
  - Tracking profit targets and consistency rules
  - Reporting challenge status with breach details and remaining margins`,
}

var dbPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "./tradeplus.sqlite", "path to SQLite journal DB")
}
