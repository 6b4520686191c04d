package board

import "fmt"

// core holds the mutable state of a position: the piece placement, whose
// turn it is, the en-passant target (if any), and which of the four
// king/rook pairs have ever moved, which castling legality is keyed off of
// rather than a separate rights bitmask — a rook or king that moves back
// to its home square must not regain castling rights.
type core struct {
	placement PiecePlacement
	sideToMove Color
	enPassant Square

	whiteKingMoved, whiteKingRookMoved, whiteQueenRookMoved bool
	blackKingMoved, blackKingRookMoved, blackQueenRookMoved bool
}

// castlingMoved reports whether castling on the given side for colour c is
// foreclosed by the king or relevant rook having already moved (or been
// captured — capture sets the same flag, see updateCastlingRights).
func (c *core) castlingMoved(color Color, kingside bool) bool {
	if color == White {
		if c.whiteKingMoved {
			return true
		}
		if kingside {
			return c.whiteKingRookMoved
		}
		return c.whiteQueenRookMoved
	}
	if c.blackKingMoved {
		return true
	}
	if kingside {
		return c.blackKingRookMoved
	}
	return c.blackQueenRookMoved
}

// snapshot is a full copy of core, pushed to GameState's history stack
// before every applied move so UndoPreviousMove can restore it verbatim.
// §9 favours this over an unmove-record: core is small, and a full-state
// snapshot can never drift out of sync with a move's side effects.
type snapshot struct {
	state core
}

// GameState is a complete, mutable chess position: the state in core
// (piece placement included), with an undo history. The zero value is not valid;
// use NewGameState.
type GameState struct {
	core
	history []snapshot
}

// NewGameState returns the standard chess starting position.
func NewGameState() *GameState {
	gs := &GameState{
		core: core{
			sideToMove: White,
			enPassant:  NoSquare,
		},
	}
	p := &gs.placement
	p.Set(Piece{White, Pawn}, rowMask(6))
	p.Set(Piece{Black, Pawn}, rowMask(1))
	p.Set(Piece{White, Rook}, SquareBB(SquareAt(7, 0))|SquareBB(SquareAt(7, 7)))
	p.Set(Piece{Black, Rook}, SquareBB(SquareAt(0, 0))|SquareBB(SquareAt(0, 7)))
	p.Set(Piece{White, Knight}, SquareBB(SquareAt(7, 1))|SquareBB(SquareAt(7, 6)))
	p.Set(Piece{Black, Knight}, SquareBB(SquareAt(0, 1))|SquareBB(SquareAt(0, 6)))
	p.Set(Piece{White, Bishop}, SquareBB(SquareAt(7, 2))|SquareBB(SquareAt(7, 5)))
	p.Set(Piece{Black, Bishop}, SquareBB(SquareAt(0, 2))|SquareBB(SquareAt(0, 5)))
	p.Set(Piece{White, Queen}, SquareBB(SquareAt(7, 3)))
	p.Set(Piece{Black, Queen}, SquareBB(SquareAt(0, 3)))
	p.Set(Piece{White, King}, SquareBB(SquareAt(7, 4)))
	p.Set(Piece{Black, King}, SquareBB(SquareAt(0, 4)))
	return gs
}

// PieceAt returns the piece occupying sq, if any.
func (gs *GameState) PieceAt(sq Square) (Piece, bool) {
	return gs.placement.PieceAt(sq)
}

// SideToMove returns the colour to move.
func (gs *GameState) SideToMove() Color {
	return gs.sideToMove
}

// ActiveKingSquare returns the square of the king belonging to the side
// to move.
func (gs *GameState) ActiveKingSquare() Square {
	return gs.placement.BoardOfPiece(Piece{gs.sideToMove, King}).LSB()
}

// IsInCheck reports whether colour c's king is currently attacked.
func (gs *GameState) IsInCheck(c Color) bool {
	king := gs.placement.BoardOfPiece(Piece{c, King})
	if king.IsEmpty() {
		return false
	}
	return AttackSet(&gs.placement, c.Other()).TestAny(king)
}

// geometricMoves returns the full geometric (check-ignoring) destination
// set for piece standing on from, including
// castling targets for a king.
func (gs *GameState) geometricMoves(from Square, piece Piece) Bitboard {
	own := gs.placement.BoardOfColor(piece.Color)
	switch piece.Type {
	case Pawn:
		return pawnMoves(&gs.placement, from, piece.Color, gs.enPassant)
	case Knight:
		return knightMoves(from) &^ own
	case Bishop:
		return gs.placement.SlidingMoves(SquareBB(from), diagonalDirs[:], 8) &^ own
	case Rook:
		return gs.placement.SlidingMoves(SquareBB(from), cardinalDirs[:], 8) &^ own
	case Queen:
		return gs.placement.SlidingMoves(SquareBB(from), allDirs[:], 8) &^ own
	case King:
		moves := NeighboursAll(from) &^ own
		moves |= gs.castlingTargets(piece.Color)
		return moves
	default:
		return Empty
	}
}

// castlingLegal reports whether colour c may castle on the given side
// right now: neither the king nor the relevant rook has moved, the
// squares between them are empty, and the king's full transit path
// (origin, transit square, destination) is not attacked.
func (gs *GameState) castlingLegal(color Color, kingside bool) bool {
	if gs.castlingMoved(color, kingside) {
		return false
	}
	_, _, rookFrom, _, between, kingPath := castlingSquares(color, kingside)
	if p, ok := gs.placement.PieceAt(rookFrom); !ok || p != (Piece{color, Rook}) {
		return false
	}
	if between.TestAny(gs.placement.Occupied()) {
		return false
	}
	for _, sq := range kingPath.Squares() {
		if AttackSet(&gs.placement, color.Other()).Test(sq) {
			return false
		}
	}
	return true
}

// castlingTargets returns the king destination squares castling is
// currently legal to for colour c (zero, one, or both of kingside and
// queenside).
func (gs *GameState) castlingTargets(color Color) Bitboard {
	var targets Bitboard
	if gs.castlingLegal(color, true) {
		_, kingTo, _, _, _, _ := castlingSquares(color, true)
		targets = targets.WithSquare(kingTo)
	}
	if gs.castlingLegal(color, false) {
		_, kingTo, _, _, _, _ := castlingSquares(color, false)
		targets = targets.WithSquare(kingTo)
	}
	return targets
}

// ValidMoves returns every legal destination for the piece standing on
// from: the geometric move set, filtered to exclude any move that would
// leave the mover's own king attacked.
func (gs *GameState) ValidMoves(from Square) Bitboard {
	piece, ok := gs.placement.PieceAt(from)
	if !ok {
		return Empty
	}
	candidates := gs.geometricMoves(from, piece)
	var legal Bitboard
	for _, to := range candidates.Squares() {
		if gs.simulateLegal(from, to, piece) {
			legal = legal.WithSquare(to)
		}
	}
	return legal
}

// simulateLegal reports whether moving piece from from to to leaves the
// mover's own king safe, by applying the move to a scratch copy of the
// placement (not the live GameState) and checking king safety there. It
// never calls ValidMoves or any legality-filtered function, avoiding the
// cycle §9 warns about between move generation and attack generation.
func (gs *GameState) simulateLegal(from, to Square, piece Piece) bool {
	scratch := gs.placement
	applyPlacement(&scratch, piece, from, to, gs.enPassant)
	king := scratch.BoardOfPiece(Piece{piece.Color, King})
	if king.IsEmpty() {
		return true
	}
	return !AttackSet(&scratch, piece.Color.Other()).TestAny(king)
}

// applyPlacement mutates pp to reflect moving piece from from to to,
// handling capture (including en passant) and castling's rook move. It
// does not handle promotion: callers that need the promoted type replace
// it afterward.
func applyPlacement(pp *PiecePlacement, piece Piece, from, to Square, enPassant Square) {
	if piece.Type == Pawn && enPassant.IsValid() && to == enPassant {
		capturedSq := SquareAt(from.Row(), to.Col())
		pp.Clear(SquareBB(capturedSq))
	}
	pp.Set(piece, SquareBB(to))
	pp.Clear(SquareBB(from))

	if piece.Type == King {
		fromCol, toCol := from.Col(), to.Col()
		if toCol-fromCol == 2 || fromCol-toCol == 2 {
			kingside := toCol > fromCol
			_, _, rookFrom, rookTo, _, _ := castlingSquares(piece.Color, kingside)
			rookPiece := pp.mustPieceAt(rookFrom)
			pp.Set(rookPiece, SquareBB(rookTo))
			pp.Clear(SquareBB(rookFrom))
		}
	}
}

// IsPromotionMove reports whether applying m would be a pawn promotion: a
// pawn reaching the opponent's back rank.
func (gs *GameState) IsPromotionMove(m Move) bool {
	piece, ok := gs.placement.PieceAt(m.From)
	if !ok || piece.Type != Pawn {
		return false
	}
	return m.To.Row() == promotionRow(piece.Color)
}

// MakeMove applies the move from -> to. promotion is consulted only when
// the move is a promotion (IsPromotionMove); it must then be one of
// Knight, Bishop, Rook, or Queen. The prior state is pushed onto the undo
// history so UndoPreviousMove can restore it.
func (gs *GameState) MakeMove(m Move, promotion PieceType) error {
	if m.From == m.To {
		return ErrSameSquare
	}
	piece, ok := gs.placement.PieceAt(m.From)
	if !ok {
		return ErrNoPieceAtSquare
	}
	isPromotion := gs.IsPromotionMove(m)
	if isPromotion {
		switch promotion {
		case Knight, Bishop, Rook, Queen:
		default:
			return ErrInvalidPromotion
		}
	}

	gs.history = append(gs.history, snapshot{state: gs.core})

	applyPlacement(&gs.placement, piece, m.From, m.To, gs.enPassant)
	if isPromotion {
		gs.placement.Set(Piece{piece.Color, promotion}, SquareBB(m.To))
	}

	gs.updateCastlingRights(m.From, m.To, piece)
	gs.updateEnPassant(m.From, m.To, piece)
	gs.sideToMove = gs.sideToMove.Other()
	return nil
}

// updateCastlingRights marks a king or rook home square as vacated,
// foreclosing castling on that side. Both from and to are checked against
// every home square, so capturing an enemy rook on its home square
// forecloses that castle exactly as the rook's own moving away would.
func (gs *GameState) updateCastlingRights(from, to Square, piece Piece) {
	touch := func(sq Square) {
		switch sq {
		case SquareAt(7, 4):
			gs.whiteKingMoved = true
		case SquareAt(7, 7):
			gs.whiteKingRookMoved = true
		case SquareAt(7, 0):
			gs.whiteQueenRookMoved = true
		case SquareAt(0, 4):
			gs.blackKingMoved = true
		case SquareAt(0, 7):
			gs.blackKingRookMoved = true
		case SquareAt(0, 0):
			gs.blackQueenRookMoved = true
		}
	}
	touch(from)
	touch(to)
}

// updateEnPassant recomputes the en-passant target for the move just
// made: set when a pawn advanced exactly two rows (Chebyshev distance 2
// along a single file), cleared otherwise.
func (gs *GameState) updateEnPassant(from, to Square, piece Piece) {
	if piece.Type == Pawn && from.Col() == to.Col() && ChebyshevDistance(from, to) == 2 {
		midRow := (from.Row() + to.Row()) / 2
		gs.enPassant = SquareAt(midRow, from.Col())
		return
	}
	gs.enPassant = NoSquare
}

// UndoPreviousMove restores the position to its state immediately before
// the last MakeMove call, piece placement included. It returns
// ErrNoHistory if there is nothing to undo. §9 prefers this full-snapshot
// approach over an unmove record: a snapshot can never drift out of sync
// with a move's side effects (rook hop, en-passant capture, promotion).
func (gs *GameState) UndoPreviousMove() error {
	if len(gs.history) == 0 {
		return ErrNoHistory
	}
	last := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]
	gs.core = last.state
	return nil
}

// HasAnyLegalMove reports whether the side to move has at least one
// legal move anywhere on the board.
func (gs *GameState) HasAnyLegalMove() bool {
	own := gs.placement.BoardOfColor(gs.sideToMove)
	for _, from := range own.Squares() {
		if !gs.ValidMoves(from).IsEmpty() {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func (gs *GameState) IsCheckmate() bool {
	return gs.IsInCheck(gs.sideToMove) && !gs.HasAnyLegalMove()
}

// IsStalemate reports whether the side to move is not in check but has
// no legal moves.
func (gs *GameState) IsStalemate() bool {
	return !gs.IsInCheck(gs.sideToMove) && !gs.HasAnyLegalMove()
}

// String renders the position as an 8x8 grid, row 0 (black's back rank)
// first, followed by side to move.
func (gs *GameState) String() string {
	s := ""
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := SquareAt(row, col)
			if p, ok := gs.placement.PieceAt(sq); ok {
				s += p.String() + " "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	return fmt.Sprintf("%s%s to move\n", s, gs.sideToMove)
}
