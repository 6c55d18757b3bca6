package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager loads a game, runs one operation on it and stores it back.
// Operations on the same game are serialised.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	locks    *gameLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		locks:    newGameLocks(),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays cell for whoever is to move. A rejected move returns the unchanged game
// together with an error wrapping apperror.ErrInvalidOperation.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	return that.update(ctx, id, "makeTurn", func(game *entity.Game) error {
		return tictactoe.ApplyMove(game, cell)
	})
}

func (that *GameManager) JumpTo(ctx context.Context, id string, index int) (*entity.Game, error) {
	return that.update(ctx, id, "jumpTo", func(game *entity.Game) error {
		return tictactoe.JumpTo(game, index)
	})
}

func (that *GameManager) ToggleHistoryOrder(ctx context.Context, id string) (*entity.Game, error) {
	return that.update(ctx, id, "toggleHistoryOrder", func(game *entity.Game) error {
		tictactoe.ToggleHistoryOrder(game)
		return nil
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) update(ctx context.Context, id, method string, apply func(game *entity.Game) error) (*entity.Game, error) {
	log := that.logger.With("method", method, "gameID", id)

	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = apply(game); err != nil {
		if errors.Is(err, apperror.ErrInvalidOperation) {
			log.Debug("operation rejected", "error", err)
			return game, err
		}

		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("game updated", "currentMove", game.CurrentMove, "status", game.Status().State)

	return game, nil
}
