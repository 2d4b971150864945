// Package dataset builds labeled Elemental Clash training data.
//
// Samples are independent random rounds, not full games: every player's card
// is drawn with replacement, redrawn until the round holds no duplicate, and
// labeled with the resolver's winner. Rows are written as CSV with the header
// "Player 1,...,Player N,Winner".
package dataset
