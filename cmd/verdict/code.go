package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/verdict"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/internal/presentation/tui"
)

// codeCmd represents the code command
var codeCmd = &cobra.Command{
	Use:   "code [outputs...]",
	Short: "Emit the cheapest decision logic as JavaScript",
	Long: `Compiles the table, keeps the variable orders with the fewest branches and
prints one function per distinct solution.`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := tableInput(cmd, args)
		if err != nil {
			fmt.Printf("Error reading table: %v\n", err)
			os.Exit(1)
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			spec.Name = name
		}
		if params, _ := cmd.Flags().GetStringArray("param"); len(params) > 0 {
			spec.Params = params
		}

		level, _ := cmd.Flags().GetString("log-level")
		eng := verdict.New(
			verdict.WithDontCare(spec.DontCare),
			verdict.WithFuncName(spec.Name),
			verdict.WithParams(spec.Params),
			verdict.WithLogger(logging.New(logging.ParseLevel(level))),
		)

		out, err := eng.Code(spec.Values)
		if err != nil {
			fmt.Printf("Error compiling table: %v\n", err)
			os.Exit(1)
		}

		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			rendered, err := tui.RenderFence("js", out)
			if err == nil {
				fmt.Print(rendered)
				return
			}
			// Fall back to plain output if the terminal renderer fails.
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
	codeCmd.Flags().String("name", "", "Function name for the emitted code")
	codeCmd.Flags().StringArray("param", nil, "Parameter name bound positionally to an input variable (repeatable)")
	codeCmd.Flags().Bool("pretty", false, "Render with terminal highlighting")
}
