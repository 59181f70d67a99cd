package rules

// MaxNeighbors is the size of the Moore neighborhood of an interior cell.
const MaxNeighbors = 8

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, neighbors < 2   -> dies (underpopulation)
	alive, neighbors 2..3  -> lives
	alive, neighbors >= 4  -> dies (overpopulation)
	dead,  neighbors == 3  -> born
	dead,  otherwise       -> stays dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
