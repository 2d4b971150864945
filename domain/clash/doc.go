// Package clash implements the domain logic for Elemental Clash, a
// four-suit card game where every suit stands for an element.
//
// # Core Types
//
// Card: Represents a playing card with suit and rank. Its textual form is
// "<rank> of <suit>", e.g. "10 of hearts".
//
// Element: Fire, Air, Earth or Water, derived from the card's suit
// (spades, clubs, hearts, diamonds respectively).
//
// Round: The cards revealed by each player at the same time, in seat order.
//
// Session: The complete state of a full game including hands, the draw pile
// and the cards each player has collected.
//
// # Round Resolution
//
// Elements dominate each other along the cycle Fire → Air → Earth → Water →
// Fire. Cards of the same element are decided by rank. A round is resolved by
// folding from left to right: the first play is the champion and every
// following play challenges it. The cycle is not transitive, so the winner
// depends on seat order. This is the rule of the game, not an accident.
//
// # Game Flow
//
// Each player holds five cards. Every round each player commits one card face
// down, the cards are revealed together and the winner collects them all.
// Players then draw back up while the draw pile lasts. The game ends when all
// cards have been played and the player with the most collected cards wins.
package clash
