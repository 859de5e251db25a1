// Package wargame models a turn-based wargame at the level an AI cares
// about: a board graph of land and water territories, per-territory
// economic attributes, canals, units, and a snapshot of ownership and
// alliances at one point in time.
package wargame

import (
	"fmt"
	"sort"
)

// Canal is a chokepoint between two water zones. Moving directly between
// the zones requires every control territory to be held by the moving
// player or an ally.
type Canal struct {
	Name     string
	Zones    [2]TerritoryID
	Controls []TerritoryID
}

// Board holds the full territory graph. It is immutable once built, so a
// single Board may back any number of snapshots concurrently.
type Board struct {
	territories map[TerritoryID]*Territory
	order       []TerritoryID
	adjacency   map[TerritoryID][]TerritoryID
	canals      []Canal
}

// NewBoard builds a board from territories, undirected adjacency pairs, and
// canals. Adjacency lists are kept ID-sorted so every graph query walks the
// board in one reproducible order.
func NewBoard(territories []*Territory, adjacency [][2]TerritoryID, canals []Canal) (*Board, error) {
	b := &Board{
		territories: make(map[TerritoryID]*Territory, len(territories)),
		adjacency:   make(map[TerritoryID][]TerritoryID),
	}
	for _, t := range territories {
		if t.ID == "" {
			return nil, fmt.Errorf("territory %q has no ID", t.Name)
		}
		if _, ok := b.territories[t.ID]; ok {
			return nil, fmt.Errorf("duplicate territory %q", t.ID)
		}
		b.territories[t.ID] = t
		b.order = append(b.order, t.ID)
	}
	sort.Slice(b.order, func(i, j int) bool { return b.order[i] < b.order[j] })

	seen := make(map[[2]TerritoryID]bool, len(adjacency))
	for _, pair := range adjacency {
		from, to := pair[0], pair[1]
		if from == to {
			return nil, fmt.Errorf("territory %q adjacent to itself", from)
		}
		if b.territories[from] == nil {
			return nil, fmt.Errorf("unknown territory %q in adjacency", from)
		}
		if b.territories[to] == nil {
			return nil, fmt.Errorf("unknown territory %q in adjacency", to)
		}
		if to < from {
			from, to = to, from
		}
		if seen[[2]TerritoryID{from, to}] {
			continue
		}
		seen[[2]TerritoryID{from, to}] = true
		b.adjacency[from] = append(b.adjacency[from], to)
		b.adjacency[to] = append(b.adjacency[to], from)
	}
	for id := range b.adjacency {
		ns := b.adjacency[id]
		sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
	}

	for _, c := range canals {
		for _, zone := range c.Zones {
			t := b.territories[zone]
			if t == nil {
				return nil, fmt.Errorf("canal %q references unknown territory %q", c.Name, zone)
			}
			if !t.Water {
				return nil, fmt.Errorf("canal %q zone %q is not water", c.Name, zone)
			}
		}
		for _, ctrl := range c.Controls {
			if b.territories[ctrl] == nil {
				return nil, fmt.Errorf("canal %q references unknown control %q", c.Name, ctrl)
			}
		}
		b.canals = append(b.canals, c)
	}
	return b, nil
}

// Territory returns the territory with the given ID, or nil.
func (b *Board) Territory(id TerritoryID) *Territory {
	return b.territories[id]
}

// Territories returns every territory, sorted by ID.
func (b *Board) Territories() []*Territory {
	out := make([]*Territory, len(b.order))
	for i, id := range b.order {
		out[i] = b.territories[id]
	}
	return out
}

// Canals returns the board's canals.
func (b *Board) Canals() []Canal {
	return b.canals
}

// CanalsBetween returns the canals whose two zones are exactly a and c,
// in either orientation.
func (b *Board) CanalsBetween(a, c TerritoryID) []Canal {
	var out []Canal
	for _, canal := range b.canals {
		if (canal.Zones[0] == a && canal.Zones[1] == c) ||
			(canal.Zones[0] == c && canal.Zones[1] == a) {
			out = append(out, canal)
		}
	}
	return out
}

// Neighbors returns the territories directly adjacent to id that match m,
// sorted by ID.
func (b *Board) Neighbors(id TerritoryID, m TerritoryMatch) []*Territory {
	var out []*Territory
	for _, nid := range b.adjacency[id] {
		if t := b.territories[nid]; m.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// NeighborsWithin returns every territory reachable from id in at most
// radius steps where each territory entered matches m. The start territory
// is exempt from the predicate and never included in the result. Results
// are sorted by ID.
func (b *Board) NeighborsWithin(id TerritoryID, radius int, m TerritoryMatch) []*Territory {
	if radius < 1 || b.territories[id] == nil {
		return nil
	}
	visited := map[TerritoryID]bool{id: true}
	frontier := []TerritoryID{id}
	var found []*Territory
	for depth := 0; depth < radius && len(frontier) > 0; depth++ {
		var next []TerritoryID
		for _, cur := range frontier {
			for _, nid := range b.adjacency[cur] {
				if visited[nid] {
					continue
				}
				visited[nid] = true
				t := b.territories[nid]
				if !m.Match(t) {
					continue
				}
				found = append(found, t)
				next = append(next, nid)
			}
		}
		frontier = next
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found
}

// Distance returns the minimum number of steps from a to c where every
// territory entered matches m. The start is exempt, the destination is not.
// Returns 0 when a == c and -1 when unreachable.
func (b *Board) Distance(a, c TerritoryID, m TerritoryMatch) int {
	if b.territories[a] == nil || b.territories[c] == nil {
		return -1
	}
	if a == c {
		return 0
	}
	visited := map[TerritoryID]bool{a: true}
	frontier := []TerritoryID{a}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []TerritoryID
		for _, cur := range frontier {
			for _, nid := range b.adjacency[cur] {
				if visited[nid] {
					continue
				}
				visited[nid] = true
				if !m.Match(b.territories[nid]) {
					continue
				}
				if nid == c {
					return depth
				}
				next = append(next, nid)
			}
		}
		frontier = next
	}
	return -1
}

// ShortestRoute returns a shortest route from a to c where every
// intermediate territory matches m; the destination itself is exempt from
// the predicate. Returns nil when no such route exists. With sorted
// adjacency the route returned for given inputs is always the same one.
func (b *Board) ShortestRoute(a, c TerritoryID, m TerritoryMatch) Route {
	if b.territories[a] == nil || b.territories[c] == nil {
		return nil
	}
	if a == c {
		return Route{a}
	}
	parent := map[TerritoryID]TerritoryID{a: a}
	frontier := []TerritoryID{a}
	for len(frontier) > 0 {
		var next []TerritoryID
		for _, cur := range frontier {
			for _, nid := range b.adjacency[cur] {
				if _, ok := parent[nid]; ok {
					continue
				}
				if nid != c && !m.Match(b.territories[nid]) {
					continue
				}
				parent[nid] = cur
				if nid == c {
					return routeFrom(parent, a, c)
				}
				next = append(next, nid)
			}
		}
		frontier = next
	}
	return nil
}

func routeFrom(parent map[TerritoryID]TerritoryID, a, c TerritoryID) Route {
	var rev Route
	for cur := c; cur != a; cur = parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, a)
	route := make(Route, len(rev))
	for i, id := range rev {
		route[len(rev)-1-i] = id
	}
	return route
}
