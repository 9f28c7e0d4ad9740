package tictactoe

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// WinCombos lists the cell indexes of every line: rows, columns, then both diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner reports the player owning a complete line. X is checked before O, so on a
// board holding lines for both players X is returned.
func Winner(board entity.Board) (entity.Player, bool) {
	for _, mark := range []entity.Player{entity.PlayerX, entity.PlayerO} {
		if hasLine(board, mark) {
			return mark, true
		}
	}

	return entity.EmptyCell, false
}

func hasLine(board entity.Board, mark entity.Player) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the game is over on board.
func IsTerminal(board entity.Board) bool {
	_, ok := Evaluate(board)
	return ok
}

// Outcome is the result of a finished game. It can only be obtained from Evaluate.
type Outcome struct {
	winner    entity.Player
	hasWinner bool
}

// Evaluate returns the outcome of board, or false if the game is still going.
func Evaluate(board entity.Board) (Outcome, bool) {
	if winner, ok := Winner(board); ok {
		return Outcome{winner: winner, hasWinner: true}, true
	}

	if board.IsFull() {
		return Outcome{}, true
	}

	return Outcome{}, false
}

func (that Outcome) Winner() (entity.Player, bool) {
	return that.winner, that.hasWinner
}

func (that Outcome) IsDraw() bool {
	return !that.hasWinner
}

// Utility scores the outcome from X's side: 1 for an X win, -1 for an O win, 0 for a draw.
func (that Outcome) Utility() int {
	if !that.hasWinner {
		return 0
	}

	if that.winner == entity.PlayerX {
		return 1
	}

	return -1
}

func (that Outcome) String() string {
	if !that.hasWinner {
		return "draw"
	}

	return that.winner.String()
}
