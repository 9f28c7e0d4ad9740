package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const BoardSize = 3

// Cell is the occupancy of a single square.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

// Player is the mark of the side to move. Only MarkX and MarkO are valid players.
type Player = Cell

const (
	PlayerX Player = MarkX
	PlayerO Player = MarkO
)

const (
	symbolEmpty = '.'
	symbolX     = 'X'
	symbolO     = 'O'
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return string(symbolX)
	case MarkO:
		return string(symbolO)
	default:
		return string(symbolEmpty)
	}
}

// Move addresses a cell by zero-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a row-major 3x3 grid. It is a value: transitions return a new Board.
type Board [BoardSize * BoardSize]Cell

// NewBoard returns the starting position.
func NewBoard() Board {
	return Board{}
}

func (that Board) At(move Move) Cell {
	return that[move.index()]
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// ActivePlayer derives the side to move from mark parity; X moves first.
func (that Board) ActivePlayer() Player {
	if that.Count(MarkX) <= that.Count(MarkO) {
		return PlayerX
	}

	return PlayerO
}

// LegalMoves returns every empty cell in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, Move{Row: i / BoardSize, Col: i % BoardSize})
		}
	}

	return moves
}

// Apply places the active player's mark on move and returns the resulting board.
func (that Board) Apply(move Move) (Board, error) {
	if !move.InBounds() {
		return that, fmt.Errorf("%w: %s is out of bounds", apperror.ErrInvalidMove, move)
	}

	if that.At(move) != EmptyCell {
		return that, fmt.Errorf("%w: %s is already occupied", apperror.ErrInvalidMove, move)
	}

	next := that
	next[move.index()] = that.ActivePlayer()

	return next, nil
}

func (that Board) Row(index int) [BoardSize]Cell {
	var row [BoardSize]Cell
	copy(row[:], that[index*BoardSize:(index+1)*BoardSize])

	return row
}

func (that Board) Column(index int) [BoardSize]Cell {
	var column [BoardSize]Cell
	for row := 0; row < BoardSize; row++ {
		column[row] = that[row*BoardSize+index]
	}

	return column
}

// Diagonals returns the diagonal from the top-left and the one from the top-right.
func (that Board) Diagonals() ([BoardSize]Cell, [BoardSize]Cell) {
	var fromTopLeft, fromTopRight [BoardSize]Cell
	for i := 0; i < BoardSize; i++ {
		fromTopLeft[i] = that[i*BoardSize+i]
		fromTopRight[i] = that[i*BoardSize+(BoardSize-1-i)]
	}

	return fromTopLeft, fromTopRight
}

// String encodes the board row-major with 'X', 'O' and '.' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(len(that))

	for _, cell := range that {
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// ParseBoard decodes the String form. Whitespace and '/' row separators are ignored.
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		var cell Cell

		switch r {
		case ' ', '\t', '\n', '/':
			continue
		case symbolX, 'x':
			cell = MarkX
		case symbolO, 'o':
			cell = MarkO
		case symbolEmpty, '-', '_':
			cell = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", apperror.ErrInvalidBoard, r)
		}

		if i >= len(board) {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, len(board))
		}

		board[i] = cell
		i++
	}

	if i != len(board) {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, i, len(board))
	}

	if lead := board.Count(MarkX) - board.Count(MarkO); lead != 0 && lead != 1 {
		return Board{}, fmt.Errorf("%w: X leads O by %d marks", apperror.ErrInvalidBoard, lead)
	}

	return board, nil
}
