package ledger

import "github.com/luca-patrignani/elemental-clash/domain/clash"

// Block is one entry of the chain.
type Block struct {
	Index     int               `json:"index"`
	Timestamp int64             `json:"timestamp"`
	PrevHash  string            `json:"prev_hash"`
	Hash      string            `json:"hash"`
	Result    clash.RoundResult `json:"result"`
	Metadata  Metadata          `json:"metadata"`
}

type Metadata struct {
	GameID string            `json:"game_id"`
	Extra  map[string]string `json:"extra,omitempty"`
}
