package filter

// Reflect mirrors every row horizontally in place.
//
// Column j is swapped with column width-1-j; the middle column of an
// odd-width row stays where it is. Reflect is its own inverse.
func Reflect(g *Grid) {
	for row := 0; row < g.height; row++ {
		line := g.Row(row)
		for j, k := 0, len(line)-1; j < k; j, k = j+1, k-1 {
			line[j], line[k] = line[k], line[j]
		}
	}
}
