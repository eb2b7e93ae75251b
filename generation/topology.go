package generation

// Topology is an adjacency list: Topology[i] lists the indices of slot i's
// neighbors. Ported from the teacher's pop/graph/graph.go layout
// constructors (Grid, Hypercube, Ring, Custom), which computed the same
// adjacency math to wire up per-node goroutines; here the layout is used
// instead to restrict which individuals a NeighborhoodDriver considers when
// building each slot's offspring, so a population can evolve under spatial
// structure without needing graph.go's own actor-per-node concurrency model
// (superseded here by Driver's errgroup-based ParNext).
type Topology [][]int

// Ring arranges n slots in a cycle, each adjacent to its immediate
// predecessor and successor.
func Ring(n int) Topology {
	t := make(Topology, n)
	for i := range t {
		t[i] = []int{(i - 1 + n) % n, (i + 1) % n}
	}
	return t
}

// Grid arranges n slots as a torus: each slot is adjacent to its left/right
// and up/down neighbors, where "up/down" wraps at half the population size.
func Grid(n int) Topology {
	offset := n / 2
	t := make(Topology, n)
	for i := range t {
		t[i] = []int{
			(i + 1 + n) % n,
			(i - 1 + n) % n,
			(i + offset + n) % n,
			(i - offset + n) % n,
		}
	}
	return t
}

// Hypercube arranges n slots as the vertices of a hypercube: slot i is
// adjacent to every slot reachable by flipping exactly one bit of i, for
// each bit below the smallest power of two that is >= n. When n is not a
// power of two, a flipped index that falls at or past n wraps modulo n.
func Hypercube(n int) Topology {
	var dimension uint
	for dimension = 0; n > (1 << dimension); dimension++ {
	}
	t := make(Topology, n)
	for i := range t {
		t[i] = make([]int, dimension)
		for j := range t[i] {
			t[i][j] = (i ^ (1 << uint(j))) % n
		}
	}
	return t
}

// Neighbors returns the individuals adjacent to slot i in the topology,
// including i itself, so neighborhood-restricted selection always has at
// least one candidate.
func (t Topology) Neighbors(i int) []int {
	out := make([]int, 0, len(t[i])+1)
	out = append(out, i)
	out = append(out, t[i]...)
	return out
}
