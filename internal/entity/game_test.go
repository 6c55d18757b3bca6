package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123")

	// Then: it should hold only the empty starting snapshot
	expectedGame := &Game{
		ID:          "123",
		History:     []Snapshot{{Board: Board{}}},
		CurrentMove: 0,
		Reversed:    false,
	}

	require.Equal(t, expectedGame, game)
	assert.Nil(t, game.History[0].Move)
}

func TestGame_NextPlayer(t *testing.T) {
	t.Run("X moves on even positions", func(t *testing.T) {
		game := &Game{History: make([]Snapshot, 5), CurrentMove: 4}

		assert.Equal(t, PlayerX, game.NextPlayer())
	})

	t.Run("O moves on odd positions", func(t *testing.T) {
		game := &Game{History: make([]Snapshot, 5), CurrentMove: 3}

		assert.Equal(t, PlayerO, game.NextPlayer())
	})
}

func TestGame_Status(t *testing.T) {
	t.Run("In progress reports the next player", func(t *testing.T) {
		// Given: a game with one move made
		game := &Game{
			History: []Snapshot{
				{Board: Board{}},
				{Board: Board{PlayerX}, Move: &Move{Row: 0, Col: 0}},
			},
			CurrentMove: 1,
		}

		// When: reading the status
		status := game.Status()

		// Then: O should be next
		assert.Equal(t, GameStatus{State: StatusInProgress, NextPlayer: PlayerO}, status)
		assert.False(t, status.IsFinished())
		assert.Equal(t, "Next player: O", status.String())
	})

	t.Run("Won reports the mark and the line", func(t *testing.T) {
		// Given: a game where O holds the middle column
		game := &Game{
			History: []Snapshot{{Board: Board{
				PlayerX, PlayerO, PlayerX,
				EmptyCell, PlayerO, EmptyCell,
				PlayerX, PlayerO, EmptyCell,
			}}},
		}

		// When: reading the status
		status := game.Status()

		// Then: O should be the winner on the middle column
		require.Equal(t, StatusWon, status.State)
		assert.Equal(t, PlayerO, status.Winner)
		assert.Equal(t, &Line{1, 4, 7}, status.Line)
		assert.True(t, status.IsFinished())
		assert.True(t, status.IsWinningCell(4))
		assert.False(t, status.IsWinningCell(0))
		assert.Equal(t, "Winner: O", status.String())
	})

	t.Run("Full board without line is a draw", func(t *testing.T) {
		// Given: a full board with no line
		game := &Game{
			History: []Snapshot{{Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			}}},
		}

		// When: reading the status
		status := game.Status()

		// Then: it should be a draw
		assert.Equal(t, GameStatus{State: StatusDraw}, status)
		assert.True(t, status.IsFinished())
		assert.Equal(t, "Draw", status.String())
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		// Given: a full board where X completes the main diagonal
		game := &Game{
			History: []Snapshot{{Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerX,
			}}},
		}

		// When: reading the status
		status := game.Status()

		// Then: X should be the winner
		assert.Equal(t, StatusWon, status.State)
		assert.Equal(t, PlayerX, status.Winner)
	})
}

func TestGame_Validate(t *testing.T) {
	t.Run("New game is valid", func(t *testing.T) {
		assert.NoError(t, NewGame("1").Validate())
	})

	t.Run("Empty history is rejected", func(t *testing.T) {
		err := (&Game{ID: "1"}).Validate()

		assert.ErrorIs(t, err, ErrCorruptedGame)
	})

	t.Run("Current move out of range is rejected", func(t *testing.T) {
		game := NewGame("1")
		game.CurrentMove = 3

		assert.ErrorIs(t, game.Validate(), ErrCorruptedGame)
	})
}
