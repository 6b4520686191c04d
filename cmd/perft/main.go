// Command perft walks the legal-move tree of the standard starting
// position to a fixed depth and prints the node count contributed by
// each root move, plus the total. It exists to exercise and sanity-check
// internal/board's move generator against known perft node counts.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hailam/bitchess/internal/board"
)

var depth = flag.Int("depth", 4, "search depth in plies")

func main() {
	flag.Parse()
	if *depth < 1 {
		log.Fatal("depth must be at least 1")
	}

	gs := board.NewGameState()
	total := uint64(0)
	for _, from := range rootSquares(gs) {
		for _, to := range gs.ValidMoves(from).Squares() {
			promo := board.NoPieceType
			if gs.IsPromotionMove(board.Move{From: from, To: to}) {
				promo = board.Queen
			}
			m := board.Move{From: from, To: to}
			if err := gs.MakeMove(m, promo); err != nil {
				log.Fatalf("make move %s: %v", m, err)
			}
			n := perft(gs, *depth-1)
			if err := gs.UndoPreviousMove(); err != nil {
				log.Fatalf("undo move %s: %v", m, err)
			}
			fmt.Printf("%s: %d\n", m, n)
			total += n
		}
	}
	fmt.Printf("total: %d\n", total)
}

// rootSquares returns every square occupied by the side to move.
func rootSquares(gs *board.GameState) []board.Square {
	var squares []board.Square
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		if p, ok := gs.PieceAt(sq); ok && p.Color == gs.SideToMove() {
			squares = append(squares, sq)
		}
	}
	return squares
}

// perft counts the leaf positions reachable in depth plies from gs's
// current position.
func perft(gs *board.GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, from := range rootSquares(gs) {
		for _, to := range gs.ValidMoves(from).Squares() {
			promo := board.NoPieceType
			if gs.IsPromotionMove(board.Move{From: from, To: to}) {
				promo = board.Queen
			}
			m := board.Move{From: from, To: to}
			if err := gs.MakeMove(m, promo); err != nil {
				log.Fatalf("make move %s: %v", m, err)
			}
			nodes += perft(gs, depth-1)
			if err := gs.UndoPreviousMove(); err != nil {
				log.Fatalf("undo move %s: %v", m, err)
			}
		}
	}
	return nodes
}
