package rest

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type CellView struct {
	Index   int         `json:"index"`
	Mark    entity.Cell `json:"mark"`
	Winning bool        `json:"winning"`
}

type HistoryItemView struct {
	Index   int          `json:"index"`
	Label   string       `json:"label"`
	Current bool         `json:"current"`
	Move    *entity.Move `json:"move,omitempty"`
}

// GameView is everything a page needs to draw one game.
type GameView struct {
	ID          string            `json:"id"`
	Rows        [3][3]CellView    `json:"rows"`
	Status      string            `json:"status"`
	State       entity.GameStatus `json:"state"`
	CurrentMove int               `json:"current_move"`
	Reversed    bool              `json:"reversed"`
	History     []HistoryItemView `json:"history"`
}

func newGameView(game *entity.Game) GameView {
	status := game.Status()
	board := game.CurrentBoard()

	view := GameView{
		ID:          game.ID,
		Status:      status.String(),
		State:       status,
		CurrentMove: game.CurrentMove,
		Reversed:    game.Reversed,
	}

	for cell, mark := range board {
		view.Rows[cell/3][cell%3] = CellView{
			Index:   cell,
			Mark:    mark,
			Winning: status.IsWinningCell(cell),
		}
	}

	for _, entry := range tictactoe.History(game) {
		view.History = append(view.History, HistoryItemView{
			Index:   entry.Index,
			Label:   historyLabel(entry),
			Current: entry.IsCurrent,
			Move:    entry.Move,
		})
	}

	return view
}

func historyLabel(entry tictactoe.HistoryEntry) string {
	var position string
	if entry.Move == nil {
		position = "game start"
	} else {
		position = fmt.Sprintf("move #%d (%d, %d)", entry.Index, entry.Move.Row, entry.Move.Col)
	}

	if entry.IsCurrent {
		return "You are at " + position
	}

	return "Go to " + position
}
