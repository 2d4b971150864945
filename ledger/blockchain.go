package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/luca-patrignani/elemental-clash/domain/clash"
)

// GenesisPrevHash is the previous hash stored in every genesis block.
const GenesisPrevHash = "0"

type Blockchain struct {
	mu     sync.RWMutex
	gameID string
	blocks []Block
	now    func() time.Time
}

// NewBlockchain creates a new blockchain for gameID with an initialized
// genesis block.
func NewBlockchain(gameID string) *Blockchain {
	bc := &Blockchain{gameID: gameID, now: time.Now}
	genesis := Block{
		Index:     0,
		Timestamp: bc.now().Unix(),
		PrevHash:  GenesisPrevHash,
		Result:    clash.RoundResult{GameID: gameID},
		Metadata:  Metadata{GameID: gameID},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)
	return bc
}

// FromBlocks rebuilds a chain from stored blocks and verifies it.
func FromBlocks(gameID string, blocks []Block) (*Blockchain, error) {
	bc := &Blockchain{gameID: gameID, blocks: blocks, now: time.Now}
	if err := bc.Verify(); err != nil {
		return nil, err
	}
	return bc, nil
}

// GameID returns the game the chain belongs to.
func (bc *Blockchain) GameID() string {
	return bc.gameID
}

// Record appends a resolved round.
func (bc *Blockchain) Record(result clash.RoundResult) error {
	return bc.append(result, nil)
}

// RecordWithExtra appends a resolved round with additional metadata.
func (bc *Blockchain) RecordWithExtra(result clash.RoundResult, extra map[string]string) error {
	return bc.append(result, extra)
}

// Annotated returns a recorder that appends every round with extra as its
// block metadata, e.g. the shuffle seed a game can be replayed from.
func (bc *Blockchain) Annotated(extra map[string]string) clash.RoundRecorder {
	return annotated{bc: bc, extra: maps.Clone(extra)}
}

type annotated struct {
	bc    *Blockchain
	extra map[string]string
}

func (a annotated) Record(result clash.RoundResult) error {
	return a.bc.RecordWithExtra(result, a.extra)
}

func (bc *Blockchain) append(result clash.RoundResult, extra map[string]string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(extra) == 0 {
		extra = nil
	}
	if result.GameID != bc.gameID {
		return fmt.Errorf("round of game %s recorded in the ledger of %s", result.GameID, bc.gameID)
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: bc.now().Unix(),
		PrevHash:  latest.Hash,
		Result:    result,
		Metadata:  Metadata{GameID: bc.gameID, Extra: extra},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	bc.blocks = append(bc.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (*Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return nil, fmt.Errorf("index out of range")
	}
	b := bc.blocks[index]
	return &b, nil
}

// Blocks returns a copy of the chain, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// Len returns the number of blocks including genesis.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}
	genesis := bc.blocks[0]
	if genesis.PrevHash != GenesisPrevHash || genesis.Index != 0 || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	if current.Metadata.GameID != previous.Metadata.GameID {
		return fmt.Errorf("game changed from %s to %s", previous.Metadata.GameID, current.Metadata.GameID)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp,
// previous hash, JSON encoded result and game id.
func calculateHash(block Block) string {
	resultBytes, _ := json.Marshal(block.Result)
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(resultBytes),
		block.Metadata.GameID,
		string(extraBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
