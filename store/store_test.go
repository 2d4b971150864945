package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/luca-patrignani/elemental-clash/dataset"
	"github.com/luca-patrignani/elemental-clash/domain/clash"
	"github.com/luca-patrignani/elemental-clash/domain/deck"
	"github.com/luca-patrignani/elemental-clash/ledger"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "clash.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBatchRoundTrip(t *testing.T) {
	s := openTestStore(t)
	samples, err := dataset.NewGenerator(4).Generate(context.Background(), 25)
	if err != nil {
		t.Fatal(err)
	}
	batch := Batch{ID: "b1", Seed: 4, Players: 3}
	if err := s.SaveBatch(batch, samples); err != nil {
		t.Fatal(err)
	}

	gotBatch, got, err := s.LoadBatch("b1")
	if err != nil {
		t.Fatal(err)
	}
	if gotBatch != batch {
		t.Fatalf("batch = %+v, want %+v", gotBatch, batch)
	}
	if !reflect.DeepEqual(got, samples) {
		t.Fatal("loaded samples differ from saved ones")
	}

	batches, err := s.ListBatches()
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 || batches[0].ID != "b1" {
		t.Fatalf("unexpected batches %+v", batches)
	}

	if err := s.SaveBatch(batch, samples); err == nil {
		t.Fatal("expected duplicate batch id to fail")
	}
	if _, _, err := s.LoadBatch("missing"); err == nil {
		t.Fatal("expected error for unknown batch")
	}
}

func TestChainRoundTrip(t *testing.T) {
	s := openTestStore(t)
	session, err := clash.NewSession("game-1", []string{"Alice", "Bob"}, deck.NewRand(8))
	if err != nil {
		t.Fatal(err)
	}
	bc := ledger.NewBlockchain("game-1")
	m := &clash.ClashManager{Session: session, Recorder: bc}
	for range 3 {
		for _, id := range m.Waiting() {
			p := session.Players[session.FindPlayerIndex(id)]
			if _, err := m.Apply(m.ActionPlayFor(id, p.Hand[0])); err != nil {
				t.Fatal(err)
			}
		}
	}

	if err := s.SaveChain(bc); err != nil {
		t.Fatal(err)
	}
	// saving again replaces the stored blocks
	if err := s.SaveChain(bc); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.LoadChain("game-1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.Blocks(), bc.Blocks()) {
		t.Fatal("loaded chain differs from saved one")
	}
	if _, err := s.LoadChain("other"); err == nil {
		t.Fatal("expected error for unknown game")
	}
}
