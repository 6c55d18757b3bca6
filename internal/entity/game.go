package entity

import (
	"errors"
	"fmt"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

var ErrCorruptedGame = errors.New("corrupted game state")

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func MoveFromCell(cell int) Move {
	return Move{Row: cell / boardSide, Col: cell % boardSide}
}

func (that Move) Cell() int {
	return that.Row*boardSide + that.Col
}

// Snapshot is one board in the history together with the move that produced it.
// The first snapshot of a game has no move.
type Snapshot struct {
	Board Board `json:"board"`
	Move  *Move `json:"move,omitempty"`
}

// Game is the whole history of one session and the snapshot currently viewed.
// The player to move is never stored, it follows from CurrentMove.
type Game struct {
	ID          string     `json:"id"`
	History     []Snapshot `json:"history"`
	CurrentMove int        `json:"current_move"`
	Reversed    bool       `json:"reversed"`
}

// GameStatus is derived from the current snapshot on every call.
type GameStatus struct {
	State      string `json:"state"`
	Winner     Cell   `json:"winner,omitempty"`
	Line       *Line  `json:"line,omitempty"`
	NextPlayer Cell   `json:"next_player,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		History: []Snapshot{{Board: Board{}}},
	}
}

func (that *Game) CurrentBoard() Board {
	return that.History[that.CurrentMove].Board
}

// NextPlayer - X moves on even positions of the history, O on odd ones.
func (that *Game) NextPlayer() Cell {
	if that.CurrentMove%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

func (that *Game) LastMove() int {
	return len(that.History) - 1
}

func (that *Game) Status() GameStatus {
	board := that.CurrentBoard()

	if line, ok := DetectWinner(board); ok {
		return GameStatus{
			State:  StatusWon,
			Winner: board[line[0]],
			Line:   &line,
		}
	}

	if board.IsFull() {
		return GameStatus{State: StatusDraw}
	}

	return GameStatus{
		State:      StatusInProgress,
		NextPlayer: that.NextPlayer(),
	}
}

// Validate - checks a game restored from storage before it is played on.
func (that *Game) Validate() error {
	if len(that.History) == 0 {
		return fmt.Errorf("%w: empty history", ErrCorruptedGame)
	}

	if that.CurrentMove < 0 || that.CurrentMove >= len(that.History) {
		return fmt.Errorf("%w: current move %d out of range", ErrCorruptedGame, that.CurrentMove)
	}

	return nil
}

func (that GameStatus) IsFinished() bool {
	return that.State == StatusWon || that.State == StatusDraw
}

func (that GameStatus) IsWinningCell(cell int) bool {
	if that.Line == nil {
		return false
	}

	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}

	return false
}

// String - the status line shown above the board.
func (that GameStatus) String() string {
	switch that.State {
	case StatusWon:
		return "Winner: " + string(that.Winner)
	case StatusDraw:
		return "Draw"
	default:
		return "Next player: " + string(that.NextPlayer)
	}
}
