package types

// Mate is the magnitude a terminal (won/lost) score is anchored to;
// every ordinary evaluation stays far enough below it that mate scores
// always dominate comparisons against them. Earlier mates score closer
// to ±Mate via MateIn.
const Mate = 200_000

// MateIn returns the mate score for a win found ply plies from the
// current node - shallower mates score higher in magnitude than deeper
// ones, so the search prefers the fastest forced win.
func MateIn(ply int) float64 {
	return Mate - float64(ply)
}
