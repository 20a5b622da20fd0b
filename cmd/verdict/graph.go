package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/verdict"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/internal/presentation/tui"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [outputs...]",
	Short: "Emit the cheapest decision logic as a Mermaid flowchart",
	Long: `Compiles the table, keeps the variable orders with the fewest branches and
prints one Mermaid diagram (graph TD) per distinct solution.`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := tableInput(cmd, args)
		if err != nil {
			fmt.Printf("Error reading table: %v\n", err)
			os.Exit(1)
		}

		if params, _ := cmd.Flags().GetStringArray("param"); len(params) > 0 {
			spec.Params = params
		}

		level, _ := cmd.Flags().GetString("log-level")
		eng := verdict.New(
			verdict.WithDontCare(spec.DontCare),
			verdict.WithParams(spec.Params),
			verdict.WithLogger(logging.New(logging.ParseLevel(level))),
		)

		out, err := eng.Flowchart(spec.Values)
		if err != nil {
			fmt.Printf("Error compiling table: %v\n", err)
			os.Exit(1)
		}

		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			rendered, err := tui.RenderFence("mermaid", out)
			if err == nil {
				fmt.Print(rendered)
				return
			}
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringArray("param", nil, "Parameter name bound positionally to an input variable (repeatable)")
	graphCmd.Flags().Bool("pretty", false, "Render with terminal highlighting")
}
