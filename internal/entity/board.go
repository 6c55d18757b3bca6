package entity

type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const (
	BoardSize = 9
	boardSide = 3
)

// Board holds the cells row-major: cell i sits at row i/3, column i%3.
type Board [BoardSize]Cell

// Line is a triple of cell indices.
type Line [3]int

// WinCombos - rows top to bottom, columns left to right, then both diagonals.
var WinCombos = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// DetectWinner - returns the first line held entirely by one mark.
// A full board without such a line is reported as no winner; telling a draw apart is up to the caller.
func DetectWinner(board Board) (Line, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return Line{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}
