package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clash",
	Short: "Elemental Clash card game engine",
	Long: `Resolve Elemental Clash rounds, play full games against bots and
generate labeled training data for language models.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogger(verbose)
	},
}

// setupLogger routes slog through the pterm logger.
func setupLogger(verbose bool) {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))
	slog.SetDefault(slog.New(handler))
}

func banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Elemental ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Clash", pterm.FgDarkGray.ToStyle()),
	).Render()
}

// seedOrNow returns seed, or a time based seed when it is zero.
func seedOrNow(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
