package board

// This file implements the geometric move layer of §4.3: per-piece-type
// candidate destinations that ignore whether the resulting position leaves
// the mover's own king in check, plus the attack-set computation used both
// by the legality filter and by castling's "does the king pass through
// check" rule. Attack-set generation never calls the legality filter —
// see position.go for the simulate-then-check-attacked stratification that
// resolves the cyclic dependency between the two.

var knightDeltas = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// knightMoves returns the knight's eight L-jump destinations from sq,
// clipped to the board.
func knightMoves(sq Square) Bitboard {
	return neighboursByDelta(sq, knightDeltas)
}

// promotionRow is the row a pawn of colour c must reach to promote: the
// opponent's back rank.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// pawnForward is the push direction and starting row for colour c.
func pawnForward(c Color) (dir Direction, startRow int) {
	if c == White {
		return Up, 6
	}
	return Down, 1
}

// pawnAttackSquares returns the two diagonal squares a pawn of colour c on
// sq could capture on, ignoring whether those squares are actually
// occupied by an enemy piece or an en-passant target. Used for attack-set
// generation: pawns attack diagonally only, never forward.
func pawnAttackSquares(sq Square, c Color) Bitboard {
	from := SquareBB(sq)
	if c == White {
		return from.Shift(UpLeft, 1) | from.Shift(UpRight, 1)
	}
	return from.Shift(DownLeft, 1) | from.Shift(DownRight, 1)
}

// pawnMoves computes a pawn's full geometric move set on sq: forward
// push(es) and diagonal captures (including the en-passant target, if any).
func pawnMoves(pp *PiecePlacement, sq Square, c Color, enPassant Square) Bitboard {
	occupied := pp.Occupied()
	enemy := pp.BoardOfColor(c.Other())
	from := SquareBB(sq)
	dir, startRow := pawnForward(c)

	var moves Bitboard
	one := from.Shift(dir, 1) &^ occupied
	moves |= one
	if sq.Row() == startRow && !one.IsEmpty() {
		two := one.Shift(dir, 1) &^ occupied
		moves |= two
	}

	var epTarget Bitboard
	if enPassant.IsValid() {
		epTarget = SquareBB(enPassant)
	}
	captureTargets := enemy | epTarget
	if c == White {
		moves |= from.Shift(UpLeft, 1) & captureTargets
		moves |= from.Shift(UpRight, 1) & captureTargets
	} else {
		moves |= from.Shift(DownLeft, 1) & captureTargets
		moves |= from.Shift(DownRight, 1) & captureTargets
	}
	return moves
}

// pieceAttackSquares is the attack-only geometric set for a single piece:
// identical to its move geometry except pawns never attack forward and
// kings never include castling.
func pieceAttackSquares(pp *PiecePlacement, sq Square, c Color, pt PieceType) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttackSquares(sq, c)
	case Knight:
		return knightMoves(sq)
	case Bishop:
		return pp.SlidingMoves(SquareBB(sq), diagonalDirs[:], 8)
	case Rook:
		return pp.SlidingMoves(SquareBB(sq), cardinalDirs[:], 8)
	case Queen:
		return pp.SlidingMoves(SquareBB(sq), allDirs[:], 8)
	case King:
		return NeighboursAll(sq)
	default:
		return Empty
	}
}

// AttackSet returns the union of every square a piece of colour c could
// move or capture onto, using geometric move rules only (pawns diagonal
// only, king without castling). A piece never counts as attacking its own
// colour's squares.
func AttackSet(pp *PiecePlacement, c Color) Bitboard {
	own := pp.BoardOfColor(c)
	var result Bitboard
	for _, sq := range own.Squares() {
		pt, _ := pp.TypeAt(sq)
		result |= pieceAttackSquares(pp, sq, c, pt)
	}
	return result &^ own
}

// castlingSquares returns the squares relevant to castling on the given
// side and colour: the king's origin/destination, the rook's
// origin/destination, the squares that must be empty between king and
// rook, and the squares the king must not be passing through check on
// (its origin, destination, and anything in between).
func castlingSquares(c Color, kingside bool) (kingFrom, kingTo, rookFrom, rookTo Square, between, kingPath Bitboard) {
	row := 7
	if c == Black {
		row = 0
	}
	kingFrom = SquareAt(row, 4)
	if kingside {
		kingTo = SquareAt(row, 6)
		rookFrom = SquareAt(row, 7)
		rookTo = SquareAt(row, 5)
		between = SquareBB(SquareAt(row, 5)) | SquareBB(SquareAt(row, 6))
		kingPath = SquareBB(kingFrom) | SquareBB(SquareAt(row, 5)) | SquareBB(SquareAt(row, 6))
		return
	}
	kingTo = SquareAt(row, 2)
	rookFrom = SquareAt(row, 0)
	rookTo = SquareAt(row, 3)
	between = SquareBB(SquareAt(row, 1)) | SquareBB(SquareAt(row, 2)) | SquareBB(SquareAt(row, 3))
	kingPath = SquareBB(kingFrom) | SquareBB(SquareAt(row, 3)) | SquareBB(SquareAt(row, 2))
	return
}
