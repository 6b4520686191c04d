package board

import "fmt"

// PiecePlacement holds eight bitboards — one per piece type, one per
// colour — that together describe which square holds which piece. The six
// type bitboards are pairwise disjoint, as are the two colour bitboards,
// and Occupied always equals the union of either set.
type PiecePlacement struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings Bitboard
	Black, White                                  Bitboard
}

// typeBoard returns a pointer to the bitboard for pt, or nil for
// NoPieceType.
func (pp *PiecePlacement) typeBoard(pt PieceType) *Bitboard {
	switch pt {
	case Pawn:
		return &pp.Pawns
	case Knight:
		return &pp.Knights
	case Bishop:
		return &pp.Bishops
	case Rook:
		return &pp.Rooks
	case Queen:
		return &pp.Queens
	case King:
		return &pp.Kings
	default:
		return nil
	}
}

// colorBoard returns a pointer to the bitboard for c.
func (pp *PiecePlacement) colorBoard(c Color) *Bitboard {
	if c == White {
		return &pp.White
	}
	return &pp.Black
}

// Occupied returns the set of all occupied squares.
func (pp *PiecePlacement) Occupied() Bitboard {
	return pp.Black | pp.White
}

// TypeAt returns the piece type at sq, if any.
func (pp *PiecePlacement) TypeAt(sq Square) (PieceType, bool) {
	for _, pt := range [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if pp.typeBoard(pt).Test(sq) {
			return pt, true
		}
	}
	return NoPieceType, false
}

// ColorAt returns the piece colour at sq, if any.
func (pp *PiecePlacement) ColorAt(sq Square) (Color, bool) {
	if pp.White.Test(sq) {
		return White, true
	}
	if pp.Black.Test(sq) {
		return Black, true
	}
	return White, false
}

// PieceAt returns the piece at sq, if any.
func (pp *PiecePlacement) PieceAt(sq Square) (Piece, bool) {
	c, ok := pp.ColorAt(sq)
	if !ok {
		return Piece{}, false
	}
	t, _ := pp.TypeAt(sq)
	return Piece{Color: c, Type: t}, true
}

// mustPieceAt returns the piece at sq, panicking if sq is empty. Callers
// use this only where a piece's presence is already a position invariant
// (e.g. the rook's home square during a castling move already validated
// legal) — never reachable from an external call with unchecked input.
func (pp *PiecePlacement) mustPieceAt(sq Square) Piece {
	p, ok := pp.PieceAt(sq)
	if !ok {
		panic(fmt.Sprintf("board: expected a piece at %s", sq))
	}
	return p
}

// BoardOfColor returns the occupancy bitboard for c.
func (pp *PiecePlacement) BoardOfColor(c Color) Bitboard {
	return *pp.colorBoard(c)
}

// BoardOfType returns the occupancy bitboard for piece type pt.
func (pp *PiecePlacement) BoardOfType(pt PieceType) Bitboard {
	b := pp.typeBoard(pt)
	if b == nil {
		return Empty
	}
	return *b
}

// BoardOfPiece returns the occupancy bitboard for exactly piece p
// (its type bitboard intersected with its colour bitboard).
func (pp *PiecePlacement) BoardOfPiece(p Piece) Bitboard {
	return pp.BoardOfType(p.Type) & pp.BoardOfColor(p.Color)
}

// Clear removes every piece whose square is in mask from every type and
// colour bitboard.
func (pp *PiecePlacement) Clear(mask Bitboard) {
	pp.Pawns &^= mask
	pp.Knights &^= mask
	pp.Bishops &^= mask
	pp.Rooks &^= mask
	pp.Queens &^= mask
	pp.Kings &^= mask
	pp.Black &^= mask
	pp.White &^= mask
}

// Set first clears mask, then places piece on exactly the squares of mask.
func (pp *PiecePlacement) Set(piece Piece, mask Bitboard) {
	pp.Clear(mask)
	*pp.typeBoard(piece.Type) |= mask
	*pp.colorBoard(piece.Color) |= mask
}

// Move relocates piece from fromMask to toMask, both of which must be
// singleton bitboards. It clears fromMask and sets piece at toMask.
func (pp *PiecePlacement) Move(piece Piece, fromMask, toMask Bitboard) error {
	if fromMask.Count() != 1 || toMask.Count() != 1 {
		return ErrNotSingleton
	}
	pp.Set(piece, toMask)
	pp.Clear(fromMask)
	return nil
}

// SlidingMoves computes the squares reachable from the singleton bitboard
// from by dilating one step at a time along each direction in dirs, up to
// rangeN steps, stopping a direction's extension at the first step after
// which the dilated squares meet an occupied square or the board edge in
// that direction. from itself is excluded from the result. The result is
// the union over all directions.
func (pp *PiecePlacement) SlidingMoves(from Bitboard, dirs []Direction, rangeN int) Bitboard {
	occupied := pp.Occupied()
	var result Bitboard
	for _, d := range dirs {
		moves := from
		for step := 0; step < rangeN; step++ {
			moves = moves.Dilate(d, 1)
			blocked := (moves &^ from).TestAny(occupied)
			onEdge := moves.OnEdge(d)
			if blocked || onEdge {
				break
			}
		}
		result |= moves &^ from
	}
	return result
}
