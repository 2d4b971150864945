package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/luca-patrignani/elemental-clash/domain/clash"
)

const winnerColumn = "Winner"

// Header returns the CSV header for a table of the given size.
func Header(players int) []string {
	h := make([]string, 0, players+1)
	for i := range players {
		h = append(h, PlayerLabel(i))
	}
	return append(h, winnerColumn)
}

// WriteCSV writes the samples as rows of card strings followed by the
// winner's column name.
func WriteCSV(w io.Writer, players int, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(players)); err != nil {
		return err
	}
	for _, s := range samples {
		if len(s.PlayerCards) != players {
			return fmt.Errorf("sample %d has %d players, expected %d", s.ID, len(s.PlayerCards), players)
		}
		row := make([]string, 0, players+1)
		for _, p := range s.PlayerCards {
			row = append(row, p.Card.String())
		}
		row = append(row, s.Winner)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows written by WriteCSV. Card strings and winner labels
// are validated; every malformed row is reported.
func ReadCSV(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	players := len(header) - 1
	if players < 2 || !slices.Equal(header, Header(players)) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var samples []Sample
	var errs []error
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		s := Sample{ID: len(samples)}
		for i, text := range row[:players] {
			c, err := clash.ParseCard(text)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", line, err))
				continue
			}
			s.PlayerCards = append(s.PlayerCards, clash.Play{Player: header[i], Card: c})
		}
		s.Winner = row[players]
		if !slices.Contains(header[:players], s.Winner) {
			errs = append(errs, fmt.Errorf("line %d: unknown winner %q", line, s.Winner))
			continue
		}
		samples = append(samples, s)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return samples, nil
}
