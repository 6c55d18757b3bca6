package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repoFactory func(t *testing.T) (context.Context, GameRepository)

func newMemoryRepo(t *testing.T) (context.Context, GameRepository) {
	t.Helper()

	return context.Background(), NewMemoryGameRepository()
}

func newSQLiteRepo(t *testing.T) (context.Context, GameRepository) {
	t.Helper()

	ctx := context.Background()

	st, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	require.NoError(t, st.Init(ctx))

	return ctx, NewSQLiteGameRepository(st.Connection)
}

func newRedisRepo(t *testing.T) (context.Context, GameRepository) {
	t.Helper()

	ctx, st := suite.New(t)

	return ctx, NewGameRepository(st.Storage, time.Minute)
}

func playedGame() *entity.Game {
	return &entity.Game{
		ID: "123",
		History: []entity.Snapshot{
			{Board: entity.Board{}},
			{Board: entity.Board{entity.PlayerX}, Move: &entity.Move{Row: 0, Col: 0}},
			{Board: entity.Board{entity.PlayerX, "", "", "", entity.PlayerO}, Move: &entity.Move{Row: 1, Col: 1}},
		},
		CurrentMove: 1,
		Reversed:    true,
	}
}

func TestMemoryGameRepository(t *testing.T) {
	testGameRepository(t, newMemoryRepo)
}

func TestSQLiteGameRepository(t *testing.T) {
	testGameRepository(t, newSQLiteRepo)
}

func TestRedisGameRepository(t *testing.T) {
	testGameRepository(t, newRedisRepo)
}

func testGameRepository(t *testing.T, newRepo repoFactory) {
	t.Helper()

	t.Run("CreateOrUpdate", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a new game
		game := entity.NewGame("123")

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, game)

		// Then: no error should be returned, and game is stored
		require.NoError(t, err)
	})

	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game with history
		game := playedGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_ReturnsCopy", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := playedGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the retrieved game is changed without saving
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		retrievedGame.CurrentMove = 2

		// Then: the stored game is unaffected
		again, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, again.CurrentMove)
	})

	t.Run("CreateOrUpdate_Overwrites", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := playedGame()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the game is saved again after a change
		game.Reversed = false
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the latest version is returned
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.False(t, retrievedGame.Reversed)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// Given: a stored game
		game := entity.NewGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, gameRepo := newRepo(t)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestDecodeGame_Corrupted(t *testing.T) {
	// Given: a stored document whose current move points past the history
	data := []byte(`{"id":"1","history":[{"board":["","","","","","","","",""]}],"current_move":4}`)

	// When: decoding it
	game, err := decodeGame(data)

	// Then: the game is rejected
	require.ErrorIs(t, err, entity.ErrCorruptedGame)
	assert.Nil(t, game)
}
