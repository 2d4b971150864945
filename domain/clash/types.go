package clash

// HandSize is the number of cards each player is dealt and draws back up to.
const HandSize = 5

// MaxPlayers is the largest table a 52-card deck can deal full hands to.
const MaxPlayers = DeckSize / HandSize

type Player struct {
	Name      string
	Id        int
	Hand      []Card
	Collected []Card // cards won in previous rounds
}

// PlayAction is a face-down card commitment for the current round.
type PlayAction struct {
	RoundID  string `json:"round_id"`
	PlayerID int    `json:"player_id"`
	Card     Card   `json:"card"`
}

// RoundResult describes one resolved round of a full game.
type RoundResult struct {
	GameID   string `json:"game_id"`
	RoundID  string `json:"round_id"`
	Number   int    `json:"number"`
	Round    Round  `json:"round"`
	Winner   string `json:"winner"`
	WinnerID int    `json:"winner_id"`
}

// RoundRecorder receives every resolved round, e.g. an append-only ledger.
type RoundRecorder interface {
	Record(result RoundResult) error
}

// Session is the representation of a full game.
type Session struct {
	GameID       string
	Players      []Player
	Deck         ClashDeck
	RoundNumber  int
	RoundID      string       // identifier for the round being played
	Participants []int        // ids of players who must commit this round, in seat order
	Pending      map[int]Card // face-down commitments by player id
	History      []RoundResult
}
