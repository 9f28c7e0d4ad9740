package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
)

const positionKeyPrefix = "position:"

var ErrPositionNotFound = errors.New("position not found")

// PositionRepository caches solved positions keyed by board.
type PositionRepository interface {
	Save(ctx context.Context, board entity.Board, result minimax.Result) error
	GetByBoard(ctx context.Context, board entity.Board) (*minimax.Result, error)
	DeleteByBoard(ctx context.Context, board entity.Board) error
}

type dbPosition struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPositionRepository returns a Redis-backed cache. A zero ttl keeps entries forever.
func NewPositionRepository(client *redis.Client, ttl time.Duration) PositionRepository {
	return &dbPosition{
		client: client,
		ttl:    ttl,
	}
}

func positionKey(board entity.Board) string {
	return positionKeyPrefix + board.String()
}

func (that *dbPosition) Save(ctx context.Context, board entity.Board, result minimax.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal position: %w", err)
	}

	err = that.client.Set(ctx, positionKey(board), resultJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}

	return nil
}

func (that *dbPosition) GetByBoard(ctx context.Context, board entity.Board) (*minimax.Result, error) {
	response, err := that.client.Get(ctx, positionKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPositionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	var result minimax.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position: %w", err)
	}

	return &result, nil
}

func (that *dbPosition) DeleteByBoard(ctx context.Context, board entity.Board) error {
	deleted, err := that.client.Del(ctx, positionKey(board)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	if deleted == 0 {
		return ErrPositionNotFound
	}

	return nil
}
