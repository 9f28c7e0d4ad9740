// Package minimax solves tic-tac-toe positions with exhaustive alpha-beta search.
package minimax

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Sentinels sit outside the utility range so the first explored move always improves on them.
const (
	lowSentinel  = -2
	highSentinel = 2
)

// Result is the outcome of a search: the chosen move, the position's value from X's side,
// and how many positions were visited.
type Result struct {
	Move    entity.Move `json:"move"`
	HasMove bool        `json:"has_move"`
	Value   int         `json:"value"`
	Nodes   int         `json:"nodes"`
}

// OptimalMove returns the best move for the side to move, or false if the game is over.
func OptimalMove(board entity.Board) (entity.Move, bool) {
	result := Search(board)
	return result.Move, result.HasMove
}

// Search runs alpha-beta over the whole game tree below board. Among moves of equal value
// the first one in LegalMoves order is kept.
func Search(board entity.Board) Result {
	var nodes int

	move, hasMove, value := alphaBeta(board, lowSentinel, highSentinel, &nodes)

	return Result{Move: move, HasMove: hasMove, Value: value, Nodes: nodes}
}

func alphaBeta(board entity.Board, alpha, beta int, nodes *int) (entity.Move, bool, int) {
	*nodes++

	if outcome, ok := tictactoe.Evaluate(board); ok {
		return entity.Move{}, false, outcome.Utility()
	}

	if board.ActivePlayer() == entity.PlayerX {
		return maximize(board, alpha, beta, nodes)
	}

	return minimize(board, alpha, beta, nodes)
}

func maximize(board entity.Board, alpha, beta int, nodes *int) (entity.Move, bool, int) {
	var bestMove entity.Move
	bestValue := lowSentinel

	for _, move := range board.LegalMoves() {
		_, _, value := alphaBeta(mustApply(board, move), alpha, beta, nodes)

		if value > bestValue {
			bestValue, bestMove = value, move
		}

		if bestValue > alpha {
			alpha = bestValue
		}

		// beta cut-off
		if bestValue >= beta {
			break
		}
	}

	return bestMove, true, bestValue
}

func minimize(board entity.Board, alpha, beta int, nodes *int) (entity.Move, bool, int) {
	var bestMove entity.Move
	bestValue := highSentinel

	for _, move := range board.LegalMoves() {
		_, _, value := alphaBeta(mustApply(board, move), alpha, beta, nodes)

		if value < bestValue {
			bestValue, bestMove = value, move
		}

		if bestValue < beta {
			beta = bestValue
		}

		// alpha cut-off
		if bestValue <= alpha {
			break
		}
	}

	return bestMove, true, bestValue
}

// mustApply is only called with moves taken from LegalMoves.
func mustApply(board entity.Board, move entity.Move) entity.Board {
	next, err := board.Apply(move)
	if err != nil {
		panic(fmt.Errorf("legal move rejected: %w", err))
	}

	return next
}

// SearchParallel searches every root move in its own goroutine with a full window and
// merges the children in LegalMoves order, so Move, HasMove and Value match Search.
func SearchParallel(ctx context.Context, board entity.Board) (Result, error) {
	if outcome, ok := tictactoe.Evaluate(board); ok {
		return Result{Value: outcome.Utility(), Nodes: 1}, nil
	}

	moves := board.LegalMoves()
	children := make([]Result, len(moves))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, move := range moves {
		i, move := i, move
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			children[i] = Search(mustApply(board, move))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, fmt.Errorf("parallel search canceled: %w", err)
	}

	maximizing := board.ActivePlayer() == entity.PlayerX

	result := Result{HasMove: true, Value: highSentinel, Nodes: 1}
	if maximizing {
		result.Value = lowSentinel
	}

	for i, child := range children {
		result.Nodes += child.Nodes

		if (maximizing && child.Value > result.Value) || (!maximizing && child.Value < result.Value) {
			result.Value, result.Move = child.Value, moves[i]
		}
	}

	return result, nil
}
