package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/verdict"
	"github.com/aretw0/verdict/internal/logging"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [outputs...]",
	Short: "Score every variable order of a truth table",
	Long: `Compiles the table under all k! variable orders and prints one row per
order with its predicted branch count. Optimal orders are highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := tableInput(cmd, args)
		if err != nil {
			fmt.Printf("Error reading table: %v\n", err)
			os.Exit(1)
		}

		level, _ := cmd.Flags().GetString("log-level")
		eng := verdict.New(
			verdict.WithDontCare(spec.DontCare),
			verdict.WithLogger(logging.New(logging.ParseLevel(level))),
		)

		results, err := eng.Analyze(spec.Values)
		if err != nil {
			fmt.Printf("Error analyzing table: %v\n", err)
			os.Exit(1)
		}

		min := results[0].Score
		for _, r := range results[1:] {
			if r.Score < min {
				min = r.Score
			}
		}

		p := termenv.ColorProfile()
		fmt.Printf("%4s  %-12s %s\n", "ID", "ORDER", "SCORE")
		for _, r := range results {
			order := make([]string, len(r.Order))
			for i, v := range r.Order {
				order[i] = fmt.Sprintf("%d", v)
			}
			line := fmt.Sprintf("%4d  %-12s %d", r.ID, strings.Join(order, ","), r.Score)
			if r.Score == min {
				line = termenv.String(line + "  optimal").Foreground(p.Color("#10b981")).String()
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
