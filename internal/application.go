package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	runLogger := logger.With("run_id", uuid.NewString())
	log := runLogger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board, err := entity.ParseBoard(conf.Position)
	if err != nil {
		return fmt.Errorf("could not parse position: %w", err)
	}

	var positionRepo repository.PositionRepository
	if conf.Cache.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, connErr := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if connErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", connErr)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		positionRepo = repository.NewPositionRepository(redisStorage, conf.Cache.TTL)
	}

	bot := service.NewBotService(runLogger, positionRepo, conf.Search.Parallel)
	gameUseCase := usecase.NewGameUseCase(runLogger, bot)

	if conf.Mode == config.ModeSelfPlay {
		_, _, err = gameUseCase.SelfPlay(ctx, board)
	} else {
		_, err = gameUseCase.Solve(ctx, board)
	}

	if err != nil {
		return fmt.Errorf("%s failed: %w", conf.Mode, err)
	}

	return nil
}
