package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/elemental-clash/config"
	"github.com/luca-patrignani/elemental-clash/dataset"
	"github.com/luca-patrignani/elemental-clash/llm"
)

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Ask a chat model to label rounds and score it against the resolver",
	Long: `Judge sends generated rounds (or rounds read from a CSV file) to an
OpenAI-compatible chat endpoint and reports how often the model names the
same winner as the resolver. The endpoint is chosen by the config file,
MODE and BASE_URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("samples")
		seed, _ := cmd.Flags().GetUint64("seed")
		in, _ := cmd.Flags().GetString("in")

		settings, err := config.Load()
		if err != nil {
			return err
		}
		samples, err := judgeSamples(cmd, in, n, seed)
		if err != nil {
			return err
		}

		client := llm.NewOpenAIClient(settings.BaseURL, settings.APIKey)
		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Asking %s about %d rounds ...", settings.ChatModel, len(samples)))
		report, err := dataset.Judge(cmd.Context(), client, settings.ChatModel, samples)
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success()

		pterm.Info.Printfln("Model %s agreed on %d/%d rounds (%.1f%%), %d replies had no label",
			settings.ChatModel, report.Agreed, report.Total, 100*report.Accuracy(), report.Unparsed)
		if len(report.Mismatches) == 0 {
			return nil
		}
		data := pterm.TableData{{"ID", "Round", "Expected", "Reply"}}
		for _, mm := range report.Mismatches {
			round := ""
			for i, p := range mm.Sample.PlayerCards {
				if i > 0 {
					round += ", "
				}
				round += p.Card.String()
			}
			data = append(data, []string{fmt.Sprint(mm.Sample.ID), round, mm.Sample.Winner, mm.Reply})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func judgeSamples(cmd *cobra.Command, path string, n int, seed uint64) ([]dataset.Sample, error) {
	if path == "" {
		return dataset.NewGenerator(seedOrNow(seed)).Generate(cmd.Context(), n)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ReadCSV(f)
}

func init() {
	judgeCmd.Flags().IntP("samples", "n", 20, "Number of generated rounds")
	judgeCmd.Flags().Uint64("seed", 0, "Random seed (0 = time based)")
	judgeCmd.Flags().String("in", "", "Read rounds from this CSV file instead of generating them")
	rootCmd.AddCommand(judgeCmd)
}
