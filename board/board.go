// Package board contains the grid model for the game: pieces, gravity
// drops, move legality and the 2x2 square win rule.
package board

import (
	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

const (
	// DefaultRows and DefaultCols give the fixed 7x7 grid used for play.
	DefaultRows = 7
	DefaultCols = 7
	// NoColumn stands in for an absent column.
	NoColumn = -1
)

// A Piece is the content of a single cell.
type Piece uint8

const (
	Empty Piece = iota
	PlayerPiece
	AIPiece
)

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "X"
	case AIPiece:
		return "O"
	}
	return "."
}

// Opponent returns the piece of the other side. Anything that is not the
// player's piece is treated as the AI, so the opponent of Empty is the
// player.
func (p Piece) Opponent() Piece {
	if p == PlayerPiece {
		return AIPiece
	}
	return PlayerPiece
}

// A Board is a rows x cols grid. Row 0 is the bottom row; pieces fall
// down to the lowest empty cell of a column.
type Board struct {
	rows  int
	cols  int
	cells []Piece
}

// NewBoard makes an empty board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Piece, rows*cols),
	}
}

// NewDefaultBoard makes an empty 7x7 board.
func NewDefaultBoard() *Board {
	return NewBoard(DefaultRows, DefaultCols)
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) idx(row, col int) int {
	return row*b.cols + col
}

// At returns the piece at the given cell.
func (b *Board) At(row, col int) Piece {
	return b.cells[b.idx(row, col)]
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	n := &Board{rows: b.rows, cols: b.cols, cells: make([]Piece, len(b.cells))}
	copy(n.cells, b.cells)
	return n
}

// CopyFrom copies the cells of other into b. Dimensions must match.
func (b *Board) CopyFrom(other *Board) {
	copy(b.cells, other.cells)
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// IsValidMove returns true iff col is on the board and its top cell is
// empty.
func (b *Board) IsValidMove(col int) bool {
	if col < 0 || col >= b.cols {
		return false
	}
	return b.At(b.rows-1, col) == Empty
}

// ValidMoves returns every playable column in ascending order.
func (b *Board) ValidMoves() []int {
	return lo.Filter(lo.Range(b.cols), func(col int, _ int) bool {
		return b.IsValidMove(col)
	})
}

// NextOpenRow returns the lowest empty row in col, or -1 if the column is
// full. Check IsValidMove first.
func (b *Board) NextOpenRow(col int) int {
	for r := 0; r < b.rows; r++ {
		if b.At(r, col) == Empty {
			return r
		}
	}
	return -1
}

// DropPiece sets the cell at (row, col). It does not validate anything;
// callers obtain row from NextOpenRow after checking IsValidMove.
func (b *Board) DropPiece(row, col int, piece Piece) {
	b.cells[b.idx(row, col)] = piece
}

// WinningMove returns true if piece fills some 2x2 square on the board.
// The win condition of this game is a square, not a line of four.
func (b *Board) WinningMove(piece Piece) bool {
	for c := 0; c < b.cols-1; c++ {
		for r := 0; r < b.rows-1; r++ {
			if b.At(r, c) == piece && b.At(r, c+1) == piece &&
				b.At(r+1, c) == piece && b.At(r+1, c+1) == piece {
				return true
			}
		}
	}
	return false
}

// IsFull is true when no column can take another piece.
func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.IsValidMove(c) {
			return false
		}
	}
	return true
}

// IsTerminal returns true if either side has won or the board is full.
func (b *Board) IsTerminal() bool {
	return b.WinningMove(PlayerPiece) || b.WinningMove(AIPiece) || b.IsFull()
}

// PiecesPlayed counts occupied cells.
func (b *Board) PiecesPlayed() int {
	return lo.CountBy(b.cells, func(p Piece) bool { return p != Empty })
}

// Hash returns a hash of the cell contents. Boards with equal dimensions
// and equal cells hash equally.
func (b *Board) Hash() uint64 {
	buf := make([]byte, len(b.cells))
	for i, p := range b.cells {
		buf[i] = byte(p)
	}
	return xxhash.Sum64(buf)
}

// Equals compares dimensions and cells.
func (b *Board) Equals(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
