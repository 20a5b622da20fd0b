package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/verdict/pkg/table"
)

var rootCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Verdict compiles truth tables into minimal decision logic",
	Long: `Verdict searches every variable testing order of a truth table and emits
the cheapest decision logic it finds: executable conditionals or a Mermaid
flowchart. Tables are row-major (row 0 = all inputs true) and may contain a
don't-care marker.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "", "YAML table spec to compile")
	rootCmd.PersistentFlags().String("dont-care", table.DefaultDontCare, "Reserved token marking an unconstrained output")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// tableInput resolves the truth table for a command: the --file spec when
// given, otherwise the positional arguments.
func tableInput(cmd *cobra.Command, args []string) (*table.Spec, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		return table.LoadSpec(file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no table values: pass outputs as arguments or use --file")
	}
	dontCare, _ := cmd.Flags().GetString("dont-care")
	return &table.Spec{DontCare: dontCare, Values: args}, nil
}
