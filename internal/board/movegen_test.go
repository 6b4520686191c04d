package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartingPositionMoveCounts(t *testing.T) {
	gs := NewGameState()
	total := 0
	own := gs.placement.BoardOfColor(White)
	for _, sq := range own.Squares() {
		total += gs.ValidMoves(sq).Count()
	}
	require.Equal(t, 20, total, "16 pawn pushes + 4 knight moves from the back rank")
}

func TestKnightMovesFromCorner(t *testing.T) {
	moves := knightMoves(SquareAt(0, 0))
	require.Equal(t, 2, moves.Count())
	require.True(t, moves.Test(SquareAt(1, 2)))
	require.True(t, moves.Test(SquareAt(2, 1)))
}

func TestPawnCannotCaptureForward(t *testing.T) {
	var pp PiecePlacement
	pp.Set(Piece{White, Pawn}, SquareBB(SquareAt(4, 4)))
	pp.Set(Piece{Black, Pawn}, SquareBB(SquareAt(3, 4)))
	moves := pawnMoves(&pp, SquareAt(4, 4), White, NoSquare)
	require.True(t, moves.IsEmpty(), "blocked pawn has no forward move and nothing to capture diagonally")
}

func TestPawnDoublePushOnlyFromStartRow(t *testing.T) {
	var pp PiecePlacement
	pp.Set(Piece{White, Pawn}, SquareBB(SquareAt(6, 4)))
	moves := pawnMoves(&pp, SquareAt(6, 4), White, NoSquare)
	require.True(t, moves.Test(SquareAt(5, 4)))
	require.True(t, moves.Test(SquareAt(4, 4)))

	pp2 := PiecePlacement{}
	pp2.Set(Piece{White, Pawn}, SquareBB(SquareAt(5, 4)))
	moves2 := pawnMoves(&pp2, SquareAt(5, 4), White, NoSquare)
	require.True(t, moves2.Test(SquareAt(4, 4)))
	require.False(t, moves2.Test(SquareAt(3, 4)))
}

func TestAttackSetExcludesOwnColor(t *testing.T) {
	var pp PiecePlacement
	pp.Set(Piece{White, Rook}, SquareBB(SquareAt(7, 0)))
	pp.Set(Piece{White, Pawn}, SquareBB(SquareAt(7, 4)))
	attacks := AttackSet(&pp, White)
	require.False(t, attacks.TestAny(pp.White))
}

func TestCastlingTargetsRequireEmptyAndUnattackedPath(t *testing.T) {
	gs := &GameState{core: core{sideToMove: White, enPassant: NoSquare}}
	pp := &gs.placement
	pp.Set(Piece{White, King}, SquareBB(SquareAt(7, 4)))
	pp.Set(Piece{White, Rook}, SquareBB(SquareAt(7, 7))|SquareBB(SquareAt(7, 0)))
	pp.Set(Piece{Black, King}, SquareBB(SquareAt(0, 4)))

	targets := gs.castlingTargets(White)
	require.True(t, targets.Test(SquareAt(7, 6)), "kingside clear and unattacked")
	require.True(t, targets.Test(SquareAt(7, 2)), "queenside clear and unattacked")

	pp.Set(Piece{Black, Rook}, SquareBB(SquareAt(0, 5)))
	targets = gs.castlingTargets(White)
	require.False(t, targets.Test(SquareAt(7, 6)), "f1 is attacked, kingside castle blocked")
}

func TestCastlingForeclosedOnceKingHasMoved(t *testing.T) {
	gs := &GameState{core: core{sideToMove: White, enPassant: NoSquare, whiteKingMoved: true}}
	pp := &gs.placement
	pp.Set(Piece{White, King}, SquareBB(SquareAt(7, 4)))
	pp.Set(Piece{White, Rook}, SquareBB(SquareAt(7, 7)))

	require.False(t, gs.castlingLegal(White, true))
}
