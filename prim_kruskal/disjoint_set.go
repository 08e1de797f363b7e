package prim_kruskal

// disjointSet is a union-find over node IDs kept as two flat maps.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the representative of u, compressing the path by halving.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. It reports false when they
// were already in the same set.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
