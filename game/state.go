package game

import "strings"

// initialLayout is the canonical starting position. Lowercase glyphs belong
// to player 0 (bottom side), uppercase to player 1 (top side).
const initialLayout = `
L.....T
.D...C.
R.J.W.E
.......
.......
.......
e.w.j.r
.c...d.
t.....l
`

var glyphRanks = map[byte]Rank{
	'r': Rat, 'c': Cat, 'd': Dog, 'w': Wolf,
	'j': Jaguar, 't': Tiger, 'l': Lion, 'e': Elephant,
}

// GameState is the dynamic state of one game. The board array and the
// per-rank location index are two views of the same relation; they are only
// ever updated together, inside Place, remove, ApplyMove and UndoMove.
type GameState struct {
	Terrain *Terrain
	Rules   Rules

	board  [BoardHeight][BoardWidth]square
	pieces [2][NumRanks]Position // meaningful only where alive
	alive  [2][NumRanks]bool

	CurrentPlayer int
	PeaceCounter  int // half-moves since the last capture
	Result        Result
}

// NewGameState returns a fresh game in the canonical starting position,
// player 0 to be tracked as current until real play says otherwise.
func NewGameState(t *Terrain, r Rules) *GameState {
	gs := NewCustomGameState(t, r)
	rows := strings.Fields(initialLayout)
	for y, row := range rows {
		for x := 0; x < BoardWidth; x++ {
			c := row[x]
			if c == '.' {
				continue
			}
			owner := 0
			if c >= 'A' && c <= 'Z' {
				owner = 1
				c += 'a' - 'A'
			}
			gs.Place(owner, glyphRanks[c], Position{X: x, Y: y})
		}
	}
	return gs
}

// NewCustomGameState returns an empty board, for setting up endgame studies
// and test positions with Place.
func NewCustomGameState(t *Terrain, r Rules) *GameState {
	return &GameState{Terrain: t, Rules: r}
}

// Copy returns an independent deep copy. The struct holds only value arrays
// besides Terrain, which is immutable and deliberately shared.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Place puts a piece on an empty cell, updating board and index together.
func (gs *GameState) Place(owner int, rank Rank, pos Position) {
	gs.board[pos.Y][pos.X] = makeSquare(owner, rank)
	gs.pieces[owner][rank] = pos
	gs.alive[owner][rank] = true
}

func (gs *GameState) remove(owner int, rank Rank, pos Position) {
	gs.board[pos.Y][pos.X] = 0
	gs.alive[owner][rank] = false
}

// PieceAt returns the piece occupying pos, if any.
func (gs *GameState) PieceAt(pos Position) (Piece, bool) {
	s := gs.board[pos.Y][pos.X]
	if s == 0 {
		return Piece{}, false
	}
	return s.piece(), true
}

// PiecePosition returns the location of a live piece.
func (gs *GameState) PiecePosition(owner int, rank Rank) (Position, bool) {
	if !gs.alive[owner][rank] {
		return Position{}, false
	}
	return gs.pieces[owner][rank], true
}

// HasPiece reports whether owner's piece of the given rank is alive.
func (gs *GameState) HasPiece(owner int, rank Rank) bool {
	return gs.alive[owner][rank]
}

// LiveCount returns the number of owner's live pieces.
func (gs *GameState) LiveCount(owner int) int {
	count := 0
	for rank := Rat; rank < NumRanks; rank++ {
		if gs.alive[owner][rank] {
			count++
		}
	}
	return count
}

// Undo records everything ApplyMove changed, so UndoMove can reverse it
// exactly. Search correctness depends on the pair leaving zero residue.
type Undo struct {
	move       Move
	mover      Piece
	captured   Piece
	didCapture bool
	peace      int
}

// ApplyMove performs a generated-legal move in place and returns the record
// needed to take it back. It does not touch CurrentPlayer or Result.
func (gs *GameState) ApplyMove(m Move) Undo {
	mover, _ := gs.PieceAt(m.From)
	u := Undo{move: m, mover: mover, peace: gs.PeaceCounter}
	if victim, ok := gs.PieceAt(m.To); ok {
		u.captured = victim
		u.didCapture = true
		gs.remove(victim.Owner, victim.Rank, m.To)
		gs.PeaceCounter = 0
	} else {
		gs.PeaceCounter++
	}
	gs.board[m.From.Y][m.From.X] = 0
	gs.Place(mover.Owner, mover.Rank, m.To)
	return u
}

// UndoMove is the exact inverse of the ApplyMove call that produced u.
func (gs *GameState) UndoMove(u Undo) {
	gs.board[u.move.To.Y][u.move.To.X] = 0
	gs.Place(u.mover.Owner, u.mover.Rank, u.move.From)
	if u.didCapture {
		gs.Place(u.captured.Owner, u.captured.Rank, u.move.To)
	}
	gs.PeaceCounter = u.peace
}

// DoMove performs a real (non-search) move and advances the turn.
func (gs *GameState) DoMove(m Move) {
	gs.CurrentPlayer = 1 - gs.CurrentPlayer
	gs.ApplyMove(m)
}

// Pass skips the mover's turn without touching the board.
func (gs *GameState) Pass() {
	gs.CurrentPlayer = 1 - gs.CurrentPlayer
}
