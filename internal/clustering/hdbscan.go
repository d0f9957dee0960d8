package clustering

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// NOISE labels a point that belongs to no cluster
const NOISE = -1

// minMergeDistance keeps lambda finite for duplicate points
const minMergeDistance = 1e-12

// HDBSCAN is a density clustering over Euclidean distance with excess-of-mass cluster selection.
// MinSamples counts the point itself, so 2 means the core distance is the nearest-neighbour distance.
type HDBSCAN struct {
	MinClusterSize int
	MinSamples     int
}

type mstEdge struct {
	a, b   int
	weight float64
}

type mergeNode struct {
	left, right int
	distance    float64
	size        int
}

type condensedEdge struct {
	parent, child int
	lambda        float64
	size          int
}

// Fit returns one label per point: 0..k-1 for clusters, NOISE otherwise
func (h HDBSCAN) Fit(points [][]float64) ([]int, error) {
	if h.MinClusterSize < 2 {
		return nil, fmt.Errorf("min cluster size must be at least 2, got %d", h.MinClusterSize)
	}
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = NOISE
	}
	if n < h.MinClusterSize {
		return labels, nil
	}

	d := len(points[0])
	for _, p := range points {
		if len(p) != d {
			return nil, errors.New("points have inconsistent dimensions")
		}
		if floats.HasNaN(p) {
			return nil, errors.New("points contain NaN")
		}
	}

	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := floats.Distance(points[i], points[j], 2)
			dist[i*n+j] = v
			dist[j*n+i] = v
		}
	}

	k := min(max(h.MinSamples-1, 1), n-1)
	core := coreDistances(dist, n, k)
	edges := mutualReachabilityMST(dist, core, n)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	tree := singleLinkage(edges, n)
	condensed, clusterCount := condense(tree, n, h.MinClusterSize)
	selected, parents := selectClusters(condensed, n, clusterCount)

	// Selected cluster labels are ascending, so output labels follow discovery order
	ids := make([]int, 0, len(selected))
	for c := range selected {
		ids = append(ids, c)
	}
	sort.Ints(ids)
	out := make(map[int]int, len(ids))
	for i, c := range ids {
		out[c] = i
	}

	root := n
	for _, e := range condensed {
		if e.child >= n {
			continue
		}
		c := e.parent
		for c != root && !selected[c] {
			c = parents[c]
		}
		if selected[c] {
			labels[e.child] = out[c]
		}
	}
	return labels, nil
}

func coreDistances(dist []float64, n, k int) []float64 {
	core := make([]float64, n)
	row := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		row = row[:0]
		for j := 0; j < n; j++ {
			if j != i {
				row = append(row, dist[i*n+j])
			}
		}
		sort.Float64s(row)
		core[i] = row[k-1]
	}
	return core
}

// mutualReachabilityMST runs Prim's algorithm over the dense mutual reachability graph
func mutualReachabilityMST(dist, core []float64, n int) []mstEdge {
	inTree := make([]bool, n)
	best := make([]float64, n)
	from := make([]int, n)
	for i := range best {
		best[i] = math.Inf(1)
	}

	edges := make([]mstEdge, 0, n-1)
	current := 0
	inTree[0] = true
	for len(edges) < n-1 {
		next := -1
		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			w := max(dist[current*n+j], core[current], core[j])
			if w < best[j] {
				best[j] = w
				from[j] = current
			}
			if next == -1 || best[j] < best[next] {
				next = j
			}
		}
		edges = append(edges, mstEdge{a: from[next], b: next, weight: best[next]})
		inTree[next] = true
		current = next
	}
	return edges
}

// singleLinkage builds the merge hierarchy; node n+i is the i-th merge
func singleLinkage(edges []mstEdge, n int) []mergeNode {
	parent := make([]int, 2*n-1)
	size := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = i
		if i < n {
			size[i] = 1
		}
	}
	find := func(x int) int {
		root := x
		for parent[root] != root {
			root = parent[root]
		}
		for parent[x] != root {
			parent[x], x = root, parent[x]
		}
		return root
	}

	nodes := make([]mergeNode, len(edges))
	for i, e := range edges {
		a, b := find(e.a), find(e.b)
		label := n + i
		nodes[i] = mergeNode{left: a, right: b, distance: e.weight, size: size[a] + size[b]}
		parent[a], parent[b] = label, label
		size[label] = size[a] + size[b]
	}
	return nodes
}

// condense walks the hierarchy from the root and keeps only splits where both sides are
// large enough to be clusters; everything else is recorded as points falling out.
// Cluster labels start at n (the root) and grow in discovery order.
func condense(tree []mergeNode, n, minClusterSize int) ([]condensedEdge, int) {
	root := 2*n - 2
	sizeOf := func(node int) int {
		if node < n {
			return 1
		}
		return tree[node-n].size
	}

	relabel := make([]int, 2*n-1)
	ignore := make([]bool, 2*n-1)
	nextLabel := n
	relabel[root] = nextLabel
	nextLabel++

	var out []condensedEdge
	fallOut := func(parentLabel, node int, lambda float64) {
		stack := []int{node}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if x < n {
				out = append(out, condensedEdge{parent: parentLabel, child: x, lambda: lambda, size: 1})
				continue
			}
			ignore[x] = true
			stack = append(stack, tree[x-n].left, tree[x-n].right)
		}
	}

	queue := []int{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node < n || ignore[node] {
			continue
		}
		m := tree[node-n]
		lambda := 1 / max(m.distance, minMergeDistance)
		label := relabel[node]
		leftBig := sizeOf(m.left) >= minClusterSize
		rightBig := sizeOf(m.right) >= minClusterSize

		switch {
		case leftBig && rightBig:
			for _, child := range []int{m.left, m.right} {
				relabel[child] = nextLabel
				out = append(out, condensedEdge{parent: label, child: nextLabel, lambda: lambda, size: sizeOf(child)})
				nextLabel++
			}
		case leftBig:
			relabel[m.left] = label
			fallOut(label, m.right, lambda)
		case rightBig:
			relabel[m.right] = label
			fallOut(label, m.left, lambda)
		default:
			fallOut(label, m.left, lambda)
			fallOut(label, m.right, lambda)
		}
		queue = append(queue, m.left, m.right)
	}
	return out, nextLabel - n
}

// selectClusters picks the excess-of-mass clusters; the root is never selected
func selectClusters(condensed []condensedEdge, n, clusterCount int) (map[int]bool, map[int]int) {
	root := n
	birth := map[int]float64{root: 0}
	parents := make(map[int]int)
	children := make(map[int][]int)
	for _, e := range condensed {
		if e.child >= n {
			birth[e.child] = e.lambda
			parents[e.child] = e.parent
			children[e.parent] = append(children[e.parent], e.child)
		}
	}

	stability := make(map[int]float64, clusterCount)
	for _, e := range condensed {
		stability[e.parent] += (e.lambda - birth[e.parent]) * float64(e.size)
	}

	selected := make(map[int]bool)
	for c := root + 1; c < root+clusterCount; c++ {
		selected[c] = true
	}
	// Children always carry larger labels than their parent
	for c := root + clusterCount - 1; c > root; c-- {
		subtree := 0.0
		for _, child := range children[c] {
			subtree += stability[child]
		}
		if subtree > stability[c] {
			selected[c] = false
			stability[c] = subtree
			continue
		}
		stack := append([]int(nil), children[c]...)
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			selected[x] = false
			stack = append(stack, children[x]...)
		}
	}
	for c, ok := range selected {
		if !ok {
			delete(selected, c)
		}
	}
	return selected, parents
}
