package game

import "strings"

// glyphs maps owner then rank to a board glyph.
var glyphs = [2]string{"rcdwjtle", "RCDWJTLE"}

// String renders the board row by row with '.' for empty cells. Diagnostic
// only; nothing in the engine depends on it.
func (gs *GameState) String() string {
	var sb strings.Builder
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if piece, ok := gs.PieceAt(Position{X: x, Y: y}); ok {
				sb.WriteByte(glyphs[piece.Owner][piece.Rank])
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
