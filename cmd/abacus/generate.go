package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus/internal/config"
	"github.com/aretw0/abacus/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate <worksheet.yaml>",
	Short: "Generate a worksheet from a YAML definition",
	Long: `Reads a worksheet definition, samples every requested problem block,
and writes the assembled document.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		ws, err := config.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading worksheet definition: %v\n", err)
			os.Exit(1)
		}

		gen, rng, logger := newGenerator(cmd, ws.Seed)

		ctx := cmd.Context()
		if err := config.Apply(ctx, gen, ws); err != nil {
			fmt.Printf("Error generating problems: %v\n", err)
			os.Exit(1)
		}

		problems, err := gen.Store().List(ctx)
		if err != nil {
			fmt.Printf("Error listing problems: %v\n", err)
			os.Exit(1)
		}
		logger.Info("worksheet generated", "problems", len(problems))

		opts := []worksheet.Option{
			worksheet.WithTitle(ws.Title),
			worksheet.WithAuthor(ws.Author),
			worksheet.WithMessage(ws.Message),
		}
		if ws.Shuffle {
			opts = append(opts, worksheet.WithShuffle(rng))
		}
		builder := worksheet.New(opts...)

		var doc string
		switch format {
		case "latex":
			doc = builder.LaTeX(problems)
		case "markdown":
			doc = builder.Markdown(problems)
		default:
			fmt.Printf("Unknown format: %s. Supported: latex, markdown\n", format)
			os.Exit(1)
		}

		if output == "" || output == "-" {
			fmt.Print(doc)
			return
		}
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d problems)\n", output, len(problems))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringP("format", "f", "latex", "Output format: 'latex' or 'markdown'")
}
