// Package ledger implements an append-only hash chain recording the rounds
// of an Elemental Clash game.
//
// # Core Components
//
// Blockchain: An append-only log of resolved rounds with SHA-256 hash
// chaining for tamper detection. It implements clash.RoundRecorder.
//
// Block: A single resolved round with its index, timestamp and the hash
// of the previous block.
//
// # Usage
//
// Create a blockchain for a game, hand it to the ClashManager as recorder
// and call Verify at any time to check the chain is intact.
package ledger
