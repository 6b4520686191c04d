package board

import "errors"

// Precondition-violation errors returned by GameState and PiecePlacement
// operations. None of these corrupt state: every rejecting call leaves its
// receiver exactly as it was before the call.
var (
	// ErrSameSquare is returned when a move's from and to squares match.
	ErrSameSquare = errors.New("board: move from and to squares are identical")

	// ErrNotSingleton is returned when a bitboard expected to hold exactly
	// one square holds zero or more than one.
	ErrNotSingleton = errors.New("board: expected a bitboard with exactly one square set")

	// ErrInvalidPromotion is returned when a promotion move is applied
	// without a valid promotion piece type (knight, bishop, rook, or queen).
	ErrInvalidPromotion = errors.New("board: promotion selection must be knight, bishop, rook, or queen")

	// ErrNoPieceAtSquare is returned when a move's from square holds no piece.
	ErrNoPieceAtSquare = errors.New("board: no piece at move's source square")

	// ErrNoHistory is returned by UndoPreviousMove when there is nothing to undo.
	ErrNoHistory = errors.New("board: no previous move to undo")
)
