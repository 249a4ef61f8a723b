package game

const (
	BoardWidth  = 7
	BoardHeight = 9
)

// Position is a cell on the board, x growing rightward and y downward.
type Position struct {
	X int
	Y int
}

// directions is the fixed order in which single-step moves are tried.
var directions = [4]Position{{0, 1}, {1, 0}, {-1, 0}, {0, -1}}

// Terrain holds the static board features. It is built once and shared
// read-only by every state derived from it.
type Terrain struct {
	Traps map[Position]bool
	River map[Position]bool
	Dens  [2]Position // indexed by owner
}

// CreateTerrain builds the standard Jungle board: three traps around each
// den, two 2x3 rivers in the middle rows, and a den on each back row center.
func CreateTerrain() *Terrain {
	t := &Terrain{
		Traps: map[Position]bool{
			{2, 0}: true, {4, 0}: true, {3, 1}: true,
			{2, 8}: true, {4, 8}: true, {3, 7}: true,
		},
		River: make(map[Position]bool),
		Dens:  [2]Position{{3, 8}, {3, 0}},
	}
	for _, x := range []int{1, 2, 4, 5} {
		for y := 3; y <= 5; y++ {
			t.River[Position{x, y}] = true
		}
	}
	return t
}

// OnBoard reports whether p lies within the grid.
func (t *Terrain) OnBoard(p Position) bool {
	return p.X >= 0 && p.X < BoardWidth && p.Y >= 0 && p.Y < BoardHeight
}
