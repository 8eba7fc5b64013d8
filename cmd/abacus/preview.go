package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/abacus"
	"github.com/aretw0/abacus/internal/config"
	"github.com/aretw0/abacus/internal/presentation/tui"
	"github.com/aretw0/abacus/internal/worksheet"
)

var previewCmd = &cobra.Command{
	Use:   "preview <worksheet.yaml>",
	Short: "Render a worksheet in the terminal",
	Long: `Samples the worksheet definition like 'generate' and renders the
result as styled Markdown. Falls back to plain text when stdout is not a
terminal.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := config.Load(args[0])
		if err != nil {
			fmt.Printf("Error loading worksheet definition: %v\n", err)
			os.Exit(1)
		}

		gen, rng, _ := newGenerator(cmd, ws.Seed)

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

		opts := []worksheet.Option{
			worksheet.WithTitle(ws.Title),
			worksheet.WithAuthor(ws.Author),
			worksheet.WithMessage(ws.Message),
		}
		if ws.Shuffle {
			opts = append(opts, worksheet.WithShuffle(rng))
		}
		md := worksheet.New(opts...).Markdown(problems)

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(md)
			return
		}

		tui.PrintBanner(abacus.Version)
		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			fmt.Print(md)
			return
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
