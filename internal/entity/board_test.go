package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: create a new board
	board := NewBoard()

	// Then: every cell is empty and X is to move
	assert.Equal(t, 9, board.Count(EmptyCell))
	assert.Equal(t, PlayerX, board.ActivePlayer())
	assert.Len(t, board.LegalMoves(), 9)
}

func TestBoard_ActivePlayer(t *testing.T) {
	t.Run("O moves after X", func(t *testing.T) {
		// Given: a board with a single X
		board := Board{
			MarkX, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: asking for the active player
		player := board.ActivePlayer()

		// Then: it should be O
		assert.Equal(t, PlayerO, player)
	})

	t.Run("X moves when counts are equal", func(t *testing.T) {
		// Given: a board with one X and one O
		board := Board{
			MarkX, MarkO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: asking for the active player
		player := board.ActivePlayer()

		// Then: it should be X
		assert.Equal(t, PlayerX, player)
	})

	t.Run("Parity holds along a played game", func(t *testing.T) {
		// Given: a sequence of moves filling the board
		board := NewBoard()
		moves := []Move{{1, 1}, {0, 0}, {0, 2}, {2, 0}, {1, 0}, {1, 2}, {0, 1}, {2, 1}, {2, 2}}

		for _, move := range moves {
			// When: each move is applied
			next, err := board.Apply(move)
			require.NoError(t, err)
			board = next

			// Then: X never trails O and never leads by more than one mark
			lead := board.Count(MarkX) - board.Count(MarkO)
			assert.Contains(t, []int{0, 1}, lead)
		}
	})
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Row-major order of empty cells", func(t *testing.T) {
		// Given: a board with the centre and a corner taken
		board := Board{
			MarkO, EmptyCell, EmptyCell,
			EmptyCell, MarkX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: listing legal moves
		moves := board.LegalMoves()

		// Then: the empty cells come back in row-major order
		expected := []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
		assert.Equal(t, expected, moves)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		// Given: a full board
		board := Board{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		}

		// Then: there is nothing to play
		assert.Empty(t, board.LegalMoves())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Places the active mark", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: X plays the centre
		next, err := board.Apply(Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the centre holds X and O is to move
		assert.Equal(t, MarkX, next.At(Move{Row: 1, Col: 1}))
		assert.Equal(t, PlayerO, next.ActivePlayer())

		// Then: the played cell is no longer legal
		assert.NotContains(t, next.LegalMoves(), Move{Row: 1, Col: 1})
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds the corner
		board, err := NewBoard().Apply(Move{Row: 0, Col: 0})
		require.NoError(t, err)
		snapshot := board

		// When: O tries to play the same corner
		_, err = board.Apply(Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// Then: the original board is unchanged
		assert.Equal(t, snapshot, board)
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {20, 20}} {
			// When: a move outside the grid is applied
			_, err := board.Apply(move)

			// Then: ErrInvalidMove is returned
			assert.ErrorIs(t, err, apperror.ErrInvalidMove, "move %s", move)
		}

		// Then: the board is still empty
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_Lines(t *testing.T) {
	// Given: a board with distinct marks on each line
	board := Board{
		MarkX, MarkO, EmptyCell,
		MarkO, MarkX, EmptyCell,
		MarkX, EmptyCell, MarkO,
	}

	// Then: rows, columns and diagonals are read in order
	assert.Equal(t, [3]Cell{MarkO, MarkX, EmptyCell}, board.Row(1))
	assert.Equal(t, [3]Cell{MarkO, MarkX, EmptyCell}, board.Column(1))

	fromTopLeft, fromTopRight := board.Diagonals()
	assert.Equal(t, [3]Cell{MarkX, MarkX, MarkO}, fromTopLeft)
	assert.Equal(t, [3]Cell{EmptyCell, MarkX, MarkX}, fromTopRight)
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a mid-game board
		board := Board{
			MarkX, MarkO, EmptyCell,
			EmptyCell, MarkX, EmptyCell,
			EmptyCell, EmptyCell, MarkO,
		}

		// When: encoding and decoding it
		parsed, err := ParseBoard(board.String())

		// Then: the same board comes back
		require.NoError(t, err)
		assert.Equal(t, "XO..X...O", board.String())
		assert.Equal(t, board, parsed)
	})

	t.Run("Row separators are ignored", func(t *testing.T) {
		parsed, err := ParseBoard("xo./.x./..o")

		require.NoError(t, err)
		assert.Equal(t, "XO..X...O", parsed.String())
	})

	t.Run("Invalid input", func(t *testing.T) {
		for _, input := range []string{"", "XO", "XXXXXXXXXX", "XO..Z...O", "XX.......", "O........"} {
			// When: parsing malformed input
			_, err := ParseBoard(input)

			// Then: ErrInvalidBoard is returned
			assert.ErrorIs(t, err, apperror.ErrInvalidBoard, "input %q", input)
		}
	})
}
