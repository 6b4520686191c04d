package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// move is a small test helper: applies an algebraic-coordinate move and
// requires it to succeed.
func move(t *testing.T, gs *GameState, from, to string, promotion PieceType) {
	t.Helper()
	f, err := ParseSquare(from)
	require.NoError(t, err)
	tt, err := ParseSquare(to)
	require.NoError(t, err)
	require.NoError(t, gs.MakeMove(Move{From: f, To: tt}, promotion))
}

func TestFoolsMate(t *testing.T) {
	gs := NewGameState()
	move(t, gs, "f2", "f3", NoPieceType)
	move(t, gs, "e7", "e5", NoPieceType)
	move(t, gs, "g2", "g4", NoPieceType)
	move(t, gs, "d8", "h4", NoPieceType)

	require.True(t, gs.IsInCheck(White))
	require.True(t, gs.IsCheckmate())
	require.False(t, gs.IsStalemate())
}

func TestScholarsMate(t *testing.T) {
	gs := NewGameState()
	move(t, gs, "e2", "e4", NoPieceType)
	move(t, gs, "e7", "e5", NoPieceType)
	move(t, gs, "d1", "h5", NoPieceType)
	move(t, gs, "b8", "c6", NoPieceType)
	move(t, gs, "f1", "c4", NoPieceType)
	move(t, gs, "g8", "f6", NoPieceType)
	move(t, gs, "h5", "f7", NoPieceType)

	require.True(t, gs.IsInCheck(Black))
	require.True(t, gs.IsCheckmate())
}

func TestCastlingKingsideClearsPathAndHopsRook(t *testing.T) {
	gs := NewGameState()
	move(t, gs, "e2", "e4", NoPieceType)
	move(t, gs, "e7", "e5", NoPieceType)
	move(t, gs, "g1", "f3", NoPieceType)
	move(t, gs, "b8", "c6", NoPieceType)
	move(t, gs, "f1", "c4", NoPieceType)
	move(t, gs, "g8", "f6", NoPieceType)
	move(t, gs, "e1", "g1", NoPieceType)

	king, ok := gs.PieceAt(SquareAt(7, 6))
	require.True(t, ok)
	require.Equal(t, Piece{White, King}, king)
	rook, ok := gs.PieceAt(SquareAt(7, 5))
	require.True(t, ok)
	require.Equal(t, Piece{White, Rook}, rook)
	_, onOriginalSquare := gs.PieceAt(SquareAt(7, 7))
	require.False(t, onOriginalSquare)
}

func TestCastlingForeclosedAfterRookCaptured(t *testing.T) {
	// A white knight sits one jump from black's untouched queenside rook
	// on a8 and captures it; black must no longer be able to castle
	// queenside even though neither its king nor that rook ever moved.
	var pp PiecePlacement
	pp.Set(Piece{Black, King}, SquareBB(SquareAt(0, 4)))
	pp.Set(Piece{Black, Rook}, SquareBB(SquareAt(0, 0))|SquareBB(SquareAt(0, 7)))
	pp.Set(Piece{White, King}, SquareBB(SquareAt(7, 4)))
	pp.Set(Piece{White, Knight}, SquareBB(SquareAt(2, 1)))
	gs := &GameState{core: core{sideToMove: White, enPassant: NoSquare, placement: pp}}

	require.NoError(t, gs.MakeMove(Move{From: SquareAt(2, 1), To: SquareAt(0, 0)}, NoPieceType))
	require.True(t, gs.blackQueenRookMoved, "capturing the rook on a8 forecloses black queenside castling")
	require.False(t, gs.castlingLegal(Black, false))
}

func TestEnPassantCapture(t *testing.T) {
	gs := NewGameState()
	move(t, gs, "e2", "e4", NoPieceType)
	move(t, gs, "a7", "a6", NoPieceType)
	move(t, gs, "e4", "e5", NoPieceType)
	move(t, gs, "d7", "d5", NoPieceType)

	ep, err := ParseSquare("d6")
	require.NoError(t, err)
	require.Equal(t, ep, gs.enPassant)

	move(t, gs, "e5", "d6", NoPieceType)

	capturedSquare, err := ParseSquare("d5")
	require.NoError(t, err)
	_, captured := gs.PieceAt(capturedSquare)
	require.False(t, captured, "the passed-over black pawn is removed")

	landed, err := ParseSquare("d6")
	require.NoError(t, err)
	p, ok := gs.PieceAt(landed)
	require.True(t, ok)
	require.Equal(t, Piece{White, Pawn}, p)
}

func TestPromotionToQueen(t *testing.T) {
	var pp PiecePlacement
	pp.Set(Piece{White, Pawn}, SquareBB(SquareAt(1, 0)))
	pp.Set(Piece{White, King}, SquareBB(SquareAt(7, 4)))
	pp.Set(Piece{Black, King}, SquareBB(SquareAt(0, 4)))
	gs := &GameState{core: core{sideToMove: White, enPassant: NoSquare, placement: pp}}

	require.True(t, gs.IsPromotionMove(Move{From: SquareAt(1, 0), To: SquareAt(0, 0)}))

	err := gs.MakeMove(Move{From: SquareAt(1, 0), To: SquareAt(0, 0)}, NoPieceType)
	require.ErrorIs(t, err, ErrInvalidPromotion)

	err = gs.MakeMove(Move{From: SquareAt(1, 0), To: SquareAt(0, 0)}, Queen)
	require.NoError(t, err)
	p, ok := gs.PieceAt(SquareAt(0, 0))
	require.True(t, ok)
	require.Equal(t, Piece{White, Queen}, p)
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king cornered on a8, no legal moves, not in
	// check.
	var pp PiecePlacement
	pp.Set(Piece{Black, King}, SquareBB(SquareAt(0, 0)))
	pp.Set(Piece{White, King}, SquareBB(SquareAt(2, 1)))
	pp.Set(Piece{White, Queen}, SquareBB(SquareAt(1, 2)))
	gs := &GameState{core: core{sideToMove: Black, enPassant: NoSquare, placement: pp}}

	require.False(t, gs.IsInCheck(Black))
	require.True(t, gs.IsStalemate())
	require.False(t, gs.IsCheckmate())
}

func TestUndoRestoresExactPriorState(t *testing.T) {
	gs := NewGameState()
	before := gs.placement
	beforeSide := gs.sideToMove
	beforeEP := gs.enPassant

	move(t, gs, "e2", "e4", NoPieceType)
	require.NoError(t, gs.UndoPreviousMove())

	require.Equal(t, before, gs.placement)
	require.Equal(t, beforeSide, gs.sideToMove)
	require.Equal(t, beforeEP, gs.enPassant)
}

func TestUndoWithNoHistoryReturnsError(t *testing.T) {
	gs := NewGameState()
	require.ErrorIs(t, gs.UndoPreviousMove(), ErrNoHistory)
}
