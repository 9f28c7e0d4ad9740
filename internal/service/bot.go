package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	BestMove(ctx context.Context, board entity.Board) (minimax.Result, error)
	MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error)
}

type positionRepoDep interface {
	Save(ctx context.Context, board entity.Board, result minimax.Result) error
	GetByBoard(ctx context.Context, board entity.Board) (*minimax.Result, error)
}

type botService struct {
	logger *slog.Logger

	// nil when the position cache is disabled
	positionRepo positionRepoDep
	parallel     bool
}

func NewBotService(logger *slog.Logger, positionRepo positionRepoDep, parallel bool) BotService {
	return &botService{
		logger:       logger.With("component", "bot"),
		positionRepo: positionRepo,
		parallel:     parallel,
	}
}

// BestMove solves board, consulting the position cache first when one is configured.
// Cache failures are logged and fall through to a fresh search.
func (that *botService) BestMove(ctx context.Context, board entity.Board) (minimax.Result, error) {
	log := that.logger.With("method", "BestMove", "board", board.String())

	if tictactoe.IsTerminal(board) {
		return minimax.Search(board), nil
	}

	if cached, ok := that.lookup(ctx, log, board); ok {
		return cached, nil
	}

	result, err := that.search(ctx, board)
	if err != nil {
		return minimax.Result{}, err
	}

	log.Debug("position solved", "move", result.Move, "value", result.Value, "nodes", result.Nodes)

	if that.positionRepo != nil {
		if err = that.positionRepo.Save(ctx, board, result); err != nil {
			log.Warn("could not cache position", "error", err)
		}
	}

	return result, nil
}

func (that *botService) MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error) {
	result, err := that.BestMove(ctx, board)
	if err != nil {
		return board, entity.Move{}, fmt.Errorf("failed to find best move: %w", err)
	}

	if !result.HasMove {
		return board, entity.Move{}, ErrNoAvailableMoves
	}

	next, err := board.Apply(result.Move)
	if err != nil {
		return board, entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, result.Move, nil
}

func (that *botService) lookup(ctx context.Context, log *slog.Logger, board entity.Board) (minimax.Result, bool) {
	if that.positionRepo == nil {
		return minimax.Result{}, false
	}

	cached, err := that.positionRepo.GetByBoard(ctx, board)
	if err != nil {
		if !errors.Is(err, repository.ErrPositionNotFound) {
			log.Warn("could not read position cache", "error", err)
		}

		return minimax.Result{}, false
	}

	log.Debug("position cache hit", "move", cached.Move, "value", cached.Value)

	return *cached, true
}

func (that *botService) search(ctx context.Context, board entity.Board) (minimax.Result, error) {
	if !that.parallel {
		return minimax.Search(board), nil
	}

	result, err := minimax.SearchParallel(ctx, board)
	if err != nil {
		return minimax.Result{}, fmt.Errorf("failed to search position: %w", err)
	}

	return result, nil
}
