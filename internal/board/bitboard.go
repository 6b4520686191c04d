package board

import (
	"fmt"
	"math/bits"
)

// Bitboard is a set of squares packed into a 64-bit word. Bit index =
// row*8 + col, matching Square's own bit index, so SquareBB(sq) always
// sets exactly bit sq. The zero value is the empty set.
type Bitboard uint64

// Column masks. Column 0 is the a-file.
const (
	col0 Bitboard = 0x0101010101010101
	col7 Bitboard = col0 << 7
)

// Row masks. Row 0 is black's back rank.
const (
	row0 Bitboard = 0x00000000000000FF
	row7 Bitboard = row0 << 56
)

// Empty is the bitboard with no squares set.
const Empty Bitboard = 0

func colMask(col int) Bitboard { return col0 << uint(col) }
func rowMask(row int) Bitboard { return row0 << uint(8*row) }

// SquareBB returns the singleton bitboard containing only sq.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	return 1 << uint(sq)
}

// Test reports whether sq is a member of b.
func (b Bitboard) Test(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// WithSquare returns b with sq added.
func (b Bitboard) WithSquare(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// WithoutSquare returns b with sq removed.
func (b Bitboard) WithoutSquare(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// Count is the population count: the number of member squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether b has no member squares.
func (b Bitboard) IsEmpty() bool {
	return b == Empty
}

// TestAny reports whether b and other share any square (non-empty intersection).
func (b Bitboard) TestAny(other Bitboard) bool {
	return b&other != 0
}

// TestAll reports whether other is a subset of b.
func (b Bitboard) TestAll(other Bitboard) bool {
	return b&other == other
}

// LSB returns the lowest-index member square, or NoSquare if b is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest-index member square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares enumerates the member squares in ascending bit-index order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// Singles enumerates the member squares as singleton bitboards, in
// ascending bit-index order.
func (b Bitboard) Singles() []Bitboard {
	singles := make([]Bitboard, 0, b.Count())
	for b != 0 {
		singles = append(singles, SquareBB(b.PopLSB()))
	}
	return singles
}

// String renders b as an 8x8 grid, row 0 (black's back rank) first.
func (b Bitboard) String() string {
	s := ""
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.Test(SquareAt(row, col)) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return s
}

// Direction is one of the eight compass directions a bitboard can be
// shifted in, named independent of piece colour.
type Direction int

const (
	Right Direction = iota
	UpRight
	Up
	UpLeft
	Left
	DownLeft
	Down
	DownRight
)

// shift1 moves every member square of b one step in direction d, dropping
// squares that would leave the board. Diagonal directions compose the two
// orthogonal single-step shifts, per the package's edge-masking contract.
func (b Bitboard) shift1(d Direction) Bitboard {
	switch d {
	case Right:
		return (b &^ col7) << 1
	case Left:
		return (b &^ col0) >> 1
	case Up:
		return b >> 8
	case Down:
		return b << 8
	case UpRight:
		return b.shift1(Up).shift1(Right)
	case UpLeft:
		return b.shift1(Up).shift1(Left)
	case DownRight:
		return b.shift1(Down).shift1(Right)
	case DownLeft:
		return b.shift1(Down).shift1(Left)
	default:
		panic(fmt.Sprintf("board: invalid direction %d", d))
	}
}

// Shift moves every member square n steps in direction d. n=0 is identity;
// shift(d, n) is shift(d, 1) iterated n times.
func (b Bitboard) Shift(d Direction, n int) Bitboard {
	for i := 0; i < n; i++ {
		b = b.shift1(d)
	}
	return b
}

// OnEdge reports whether any member square lies on the edge(s) bounding
// direction d, i.e. shifting further in that direction would drop it.
func (b Bitboard) OnEdge(d Direction) bool {
	switch d {
	case Right:
		return b.TestAny(col7)
	case Left:
		return b.TestAny(col0)
	case Up:
		return b.TestAny(row0)
	case Down:
		return b.TestAny(row7)
	case UpRight:
		return b.TestAny(row0 | col7)
	case UpLeft:
		return b.TestAny(row0 | col0)
	case DownRight:
		return b.TestAny(row7 | col7)
	case DownLeft:
		return b.TestAny(row7 | col0)
	default:
		panic(fmt.Sprintf("board: invalid direction %d", d))
	}
}

// Dilate returns self ∪ shift(d,1) ∪ ... ∪ shift(d,n).
func (b Bitboard) Dilate(d Direction, n int) Bitboard {
	result := b
	cur := b
	for i := 0; i < n; i++ {
		cur = cur.shift1(d)
		result |= cur
	}
	return result
}

var cardinalDirs = [4]Direction{Right, Up, Left, Down}
var diagonalDirs = [4]Direction{UpRight, UpLeft, DownLeft, DownRight}
var allDirs = [8]Direction{Right, UpRight, Up, UpLeft, Left, DownLeft, Down, DownRight}

// neighboursByDelta builds the neighbour set of sq from a list of
// (Δrow, Δcol) offsets, dropping any that fall off the board. It backs
// NeighboursCardinal, NeighboursDiagonal, NeighboursAll, and the knight/king
// geometric move sets.
func neighboursByDelta(sq Square, deltas [][2]int) Bitboard {
	var result Bitboard
	r, c := sq.Row(), sq.Col()
	for _, d := range deltas {
		nr, nc := r+d[0], c+d[1]
		if nr >= 0 && nr < 8 && nc >= 0 && nc < 8 {
			result = result.WithSquare(SquareAt(nr, nc))
		}
	}
	return result
}

var cardinalDeltas = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var diagonalDeltas = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var allDeltas = append(append([][2]int{}, cardinalDeltas...), diagonalDeltas...)

// NeighboursCardinal returns the 4-connected neighbours of sq (fewer at an edge).
func NeighboursCardinal(sq Square) Bitboard {
	return neighboursByDelta(sq, cardinalDeltas)
}

// NeighboursDiagonal returns the 4 diagonal neighbours of sq (fewer at an edge).
func NeighboursDiagonal(sq Square) Bitboard {
	return neighboursByDelta(sq, diagonalDeltas)
}

// NeighboursAll returns the 8-connected neighbours of sq (fewer at an edge
// or corner).
func NeighboursAll(sq Square) Bitboard {
	return neighboursByDelta(sq, allDeltas)
}
