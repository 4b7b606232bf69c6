package game

// Infinity is the distance between unreachable cells. It is larger than any real
// distance and is only ever used in comparisons.
const Infinity = 1_000_000_000

// Distances is the all-pairs shortest path table of a Map, in edges.
type Distances struct {
	size int
	dist []int // Row-major size x size
}

// NewDistances runs one breadth-first search per origin cell. Cells in other
// components keep Infinity.
func NewDistances(m *Map) *Distances {
	n := m.Size()
	if n == 0 {
		panic("cannot compute distances over an empty map")
	}
	d := &Distances{
		size: n,
		dist: make([]int, n*n),
	}
	for i := range d.dist {
		d.dist[i] = Infinity
	}

	queue := make([]int, 0, n)
	for from := 0; from < n; from++ {
		row := d.dist[from*n : (from+1)*n]
		row[from] = 0
		queue = append(queue[:0], from)
		for head := 0; head < len(queue); head++ {
			cell := queue[head]
			next := row[cell] + 1
			for _, neighbor := range m.Neighbors(cell) {
				// Only enqueue improvements
				if row[neighbor] > next {
					row[neighbor] = next
					queue = append(queue, neighbor)
				}
			}
		}
	}
	return d
}

// Dist returns the number of edges on a shortest path between two cells, or Infinity.
func (d *Distances) Dist(from, to int) int {
	return d.dist[from*d.size+to]
}

// Reachable reports whether a path exists between two cells.
func (d *Distances) Reachable(from, to int) bool {
	return d.Dist(from, to) < Infinity
}

// Size returns the number of cells covered by the table.
func (d *Distances) Size() int {
	return d.size
}
