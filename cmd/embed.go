package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/elemental-clash/config"
	"github.com/luca-patrignani/elemental-clash/llm"
)

var embedCmd = &cobra.Command{
	Use:   "embed <text> <text>...",
	Short: "Compare texts by embedding cosine similarity",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		client := llm.NewOpenAIClient(settings.BaseURL, settings.APIKey)
		vectors := make([][]float64, len(args))
		for i, text := range args {
			v, err := client.Embed(cmd.Context(), text, settings.EmbedModel, settings.Dimensions)
			if err != nil {
				return fmt.Errorf("embed %q: %w", text, err)
			}
			vectors[i] = v
		}

		data := pterm.TableData{{"A", "B", "Cosine"}}
		for i := range args {
			for j := i + 1; j < len(args); j++ {
				sim, err := llm.CosineSimilarity(vectors[i], vectors[j])
				if err != nil {
					return err
				}
				data = append(data, []string{args[i], args[j], fmt.Sprintf("%.4f", sim)})
			}
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(embedCmd)
}
