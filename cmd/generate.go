package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/elemental-clash/dataset"
	"github.com/luca-patrignani/elemental-clash/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate labeled sample rounds",
	Long: `Generate independent random rounds labeled with their winner and write
them as CSV. Cards are sampled with replacement across rounds and are
distinct inside each round.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("samples")
		players, _ := cmd.Flags().GetInt("players")
		workers, _ := cmd.Flags().GetInt("workers")
		seed, _ := cmd.Flags().GetUint64("seed")
		out, _ := cmd.Flags().GetString("out")
		dbPath, _ := cmd.Flags().GetString("db")

		g := &dataset.Generator{Players: players, Seed: seedOrNow(seed), Workers: workers}
		spinner, _ := pterm.DefaultSpinner.WithWriter(os.Stderr).Start(fmt.Sprintf("Generating %d samples ...", n))
		samples, err := g.Generate(cmd.Context(), n)
		if err != nil {
			spinner.Fail()
			return err
		}
		spinner.Success()

		if err := writeSamples(out, players, samples); err != nil {
			return err
		}
		if dbPath != "" {
			batchID := uuid.NewString()
			if err := saveBatch(dbPath, store.Batch{ID: batchID, Seed: int64(g.Seed), Players: players}, samples); err != nil {
				return err
			}
			slog.Info("stored batch", "id", batchID, "db", dbPath, "seed", g.Seed)
		}
		return nil
	},
}

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect stored sample batches",
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		batches, err := s.ListBatches()
		if err != nil {
			return err
		}
		data := pterm.TableData{{"ID", "Seed", "Players"}}
		for _, b := range batches {
			data = append(data, []string{b.ID, fmt.Sprint(uint64(b.Seed)), fmt.Sprint(b.Players)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var datasetExportCmd = &cobra.Command{
	Use:   "export <batch-id>",
	Short: "Write a stored batch as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		batch, samples, err := s.LoadBatch(args[0])
		if err != nil {
			return err
		}
		return writeSamples(out, batch.Players, samples)
	},
}

// writeSamples writes CSV to path, or to stdout when path is empty or "-".
func writeSamples(path string, players int, samples []dataset.Sample) error {
	var w io.Writer = os.Stdout
	toFile := path != "" && path != "-"
	if toFile {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := dataset.WriteCSV(w, players, samples); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if toFile {
		pterm.Success.Printfln("Wrote %d samples to %s", len(samples), path)
	}
	return nil
}

func saveBatch(path string, batch store.Batch, samples []dataset.Sample) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.SaveBatch(batch, samples)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		return nil, fmt.Errorf("--db is required")
	}
	return store.Open(path)
}

func init() {
	generateCmd.Flags().IntP("samples", "n", 1000, "Number of samples")
	generateCmd.Flags().Int("players", dataset.DefaultPlayers, "Players per round (2-10)")
	generateCmd.Flags().Int("workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	generateCmd.Flags().Uint64("seed", 0, "Random seed (0 = time based)")
	generateCmd.Flags().StringP("out", "o", "", "Output CSV file (default stdout)")
	generateCmd.Flags().String("db", "", "Also store the batch in this SQLite database")
	rootCmd.AddCommand(generateCmd)

	datasetCmd.PersistentFlags().String("db", "clash.db", "SQLite database")
	datasetExportCmd.Flags().StringP("out", "o", "", "Output CSV file (default stdout)")
	datasetCmd.AddCommand(datasetListCmd, datasetExportCmd)
	rootCmd.AddCommand(datasetCmd)
}
