package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

func gameKey(id string) string {
	return "game:" + id
}

func encodeGame(game *entity.Game) ([]byte, error) {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	return gameJSON, nil
}

func decodeGame(data []byte) (*entity.Game, error) {
	var existingGame entity.Game
	if err := json.Unmarshal(data, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if err := existingGame.Validate(); err != nil {
		return nil, fmt.Errorf("stored game %s: %w", existingGame.ID, err)
	}

	return &existingGame, nil
}
