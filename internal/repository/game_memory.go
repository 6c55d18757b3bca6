package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// memoryGame keeps encoded games so callers never share state with the store.
type memoryGame struct {
	mu    sync.RWMutex
	games map[string][]byte
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string][]byte),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := encodeGame(game)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[gameKey(game.ID)] = gameJSON

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	gameJSON, ok := that.games[gameKey(id)]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	return decodeGame(gameJSON)
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[gameKey(id)]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, gameKey(id))

	return nil
}
