package board

import "fmt"

// Move is a candidate or applied move: a pair of squares. Promotion, en
// passant, and castling are not flagged on the move itself — they are
// derived from the moving piece and the position, as GameState.MakeMove
// and the legality filter do.
type Move struct {
	From Square
	To   Square
}

// String renders the move in UCI-like coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.From, m.To)
}
