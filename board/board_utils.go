package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board with the top row first, the way the
// board looks to a player. Column indices are printed underneath.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for r := b.rows - 1; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%2d|", r))
		for c := 0; c < b.cols; c++ {
			sb.WriteString(" " + b.At(r, c).String())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("   " + strings.Repeat("-", b.cols*2+1) + "\n")
	sb.WriteString("   ")
	for c := 0; c < b.cols; c++ {
		sb.WriteString(fmt.Sprintf(" %d", c))
	}
	sb.WriteString("\n")
	return sb.String()
}

func pieceFromRune(ch rune) (Piece, error) {
	switch ch {
	case 'X', 'x':
		return PlayerPiece, nil
	case 'O', 'o':
		return AIPiece, nil
	case '.', ' ', '_':
		return Empty, nil
	}
	return Empty, fmt.Errorf("unrecognized piece %q", ch)
}

// FromRows builds a board from text rows given top row first, as they
// are displayed: X is the player, O the AI and . an empty cell. Every row
// must have the same width. Gravity is not checked, so floating pieces
// can be set up on purpose.
func FromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows given")
	}
	cols := len(rows[0])
	b := NewBoard(len(rows), cols)
	for i, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has width %d, expected %d", i, len(line), cols)
		}
		r := len(rows) - 1 - i
		for c, ch := range line {
			p, err := pieceFromRune(ch)
			if err != nil {
				return nil, err
			}
			b.DropPiece(r, c, p)
		}
	}
	return b, nil
}

// MustFromRows is FromRows for fixed, known-good positions.
func MustFromRows(rows ...string) *Board {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}
