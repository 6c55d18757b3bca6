package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// HistoryEntry is one row of the move list as it should be displayed.
type HistoryEntry struct {
	Index     int
	Move      *entity.Move
	IsCurrent bool
}

// ApplyMove - puts the mark of the player to move on cell and makes the result the current snapshot.
// Snapshots after the current one are dropped. On error the game is left untouched.
func ApplyMove(gameInstance *entity.Game, cell int) error {
	if err := validateMove(gameInstance, cell); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	board := gameInstance.CurrentBoard()
	board[cell] = gameInstance.NextPlayer()
	move := entity.MoveFromCell(cell)

	// capping the capacity makes append copy, so older views of the history stay intact
	keep := gameInstance.CurrentMove + 1
	gameInstance.History = append(gameInstance.History[:keep:keep], entity.Snapshot{Board: board, Move: &move})
	gameInstance.CurrentMove = gameInstance.LastMove()

	return nil
}

// JumpTo - makes the snapshot at index the current one without changing the history.
func JumpTo(gameInstance *entity.Game, index int) error {
	if index < 0 || index > gameInstance.LastMove() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMoveIndex, index)
	}

	gameInstance.CurrentMove = index

	return nil
}

// ToggleHistoryOrder - flips the display order of the move list.
func ToggleHistoryOrder(gameInstance *entity.Game) {
	gameInstance.Reversed = !gameInstance.Reversed
}

// History - returns the move list, oldest first or newest first depending on the game's display order.
func History(gameInstance *entity.Game) []HistoryEntry {
	entries := make([]HistoryEntry, len(gameInstance.History))

	for i, snapshot := range gameInstance.History {
		pos := i
		if gameInstance.Reversed {
			pos = len(entries) - 1 - i
		}

		entries[pos] = HistoryEntry{
			Index:     i,
			Move:      snapshot.Move,
			IsCurrent: i == gameInstance.CurrentMove,
		}
	}

	return entries
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Status().IsFinished() {
		return apperror.ErrGameFinished
	}

	if !gameInstance.CurrentBoard().IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}
