package game

// Rank identifies one of the eight piece types, ordered by default capture
// strength: any piece captures an equal or lower rank, subject to the
// rat/elephant and trap exceptions.
type Rank int

const (
	Rat Rank = iota
	Cat
	Dog
	Wolf
	Jaguar
	Tiger
	Lion
	Elephant

	NumRanks = 8
)

// Piece is a live piece on the board.
type Piece struct {
	Owner int
	Rank  Rank
}

// square encodes the contents of one board cell: 0 for empty, otherwise
// 1 + owner*NumRanks + rank.
type square int8

func makeSquare(owner int, rank Rank) square {
	return square(1 + owner*NumRanks + int(rank))
}

func (s square) piece() Piece {
	v := int(s) - 1
	return Piece{Owner: v / NumRanks, Rank: Rank(v % NumRanks)}
}
