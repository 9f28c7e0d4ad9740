package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type botService interface {
	BestMove(ctx context.Context, board entity.Board) (minimax.Result, error)
	MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error)
}

type GameUseCase struct {
	logger *slog.Logger
	bot    botService
}

func NewGameUseCase(logger *slog.Logger, bot botService) *GameUseCase {
	return &GameUseCase{
		logger: logger.With("component", "game"),
		bot:    bot,
	}
}

// Solve finds and logs the optimal move and value of board.
func (that *GameUseCase) Solve(ctx context.Context, board entity.Board) (minimax.Result, error) {
	log := that.logger.With("method", "Solve")

	result, err := that.bot.BestMove(ctx, board)
	if err != nil {
		return minimax.Result{}, fmt.Errorf("could not solve position: %w", err)
	}

	if !result.HasMove {
		outcome, _ := tictactoe.Evaluate(board)
		log.Info("Position is terminal", "board", board.String(), "result", outcome.String(), "value", result.Value)

		return result, nil
	}

	log.Info("Position solved",
		"board", board.String(),
		"player", board.ActivePlayer().String(),
		"move", result.Move,
		"value", result.Value,
		"nodes", result.Nodes,
	)

	return result, nil
}

// SelfPlay lets the engine play both sides from board until the game ends and returns
// the final board with the moves played.
func (that *GameUseCase) SelfPlay(ctx context.Context, board entity.Board) (entity.Board, []entity.Move, error) {
	log := that.logger.With("method", "SelfPlay")

	var moves []entity.Move

	for ply := 1; !tictactoe.IsTerminal(board); ply++ {
		if err := ctx.Err(); err != nil {
			return board, moves, fmt.Errorf("self-play interrupted: %w", err)
		}

		player := board.ActivePlayer()

		next, move, err := that.bot.MakeTurn(ctx, board)
		if err != nil {
			return board, moves, fmt.Errorf("ply %d: %w", ply, err)
		}

		log.Info("Move played", "ply", ply, "player", player.String(), "move", move, "board", next.String())

		board = next
		moves = append(moves, move)
	}

	outcome, _ := tictactoe.Evaluate(board)
	log.Info("Game over", "board", board.String(), "result", outcome.String(), "utility", outcome.Utility())

	return board, moves, nil
}
