package wargame

import "sort"

// Snapshot is the complete dynamic state of a game at one point in time:
// who owns what, which units stand where, and which powers are in which
// coalition. Valuation code treats a snapshot as read-only; concurrent
// readers are safe as long as nothing mutates it mid-call. The board is
// immutable and may be shared between snapshots.
type Snapshot struct {
	Board     *Board
	Owners    map[TerritoryID]PlayerID
	Units     map[TerritoryID][]Unit
	Alliances map[PlayerID]string // player -> coalition tag
}

// Owner returns the player holding the territory, or Neutral.
func (s *Snapshot) Owner(id TerritoryID) PlayerID {
	return s.Owners[id]
}

// IsAllied reports whether a and b are the same power or members of the
// same coalition. Neutral is allied with nobody, itself included.
func (s *Snapshot) IsAllied(a, b PlayerID) bool {
	if a == Neutral || b == Neutral {
		return false
	}
	if a == b {
		return true
	}
	ca, cb := s.Alliances[a], s.Alliances[b]
	return ca != "" && ca == cb
}

// Players returns every declared power, sorted.
func (s *Snapshot) Players() []PlayerID {
	out := make([]PlayerID, 0, len(s.Alliances))
	for p := range s.Alliances {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PotentialEnemies returns every declared power not allied with player,
// sorted. Neutral is not a power and never appears.
func (s *Snapshot) PotentialEnemies(player PlayerID) []PlayerID {
	var out []PlayerID
	for _, p := range s.Players() {
		if !s.IsAllied(p, player) {
			out = append(out, p)
		}
	}
	return out
}

// LiveEnemyCapitals returns the capitals of powers not allied with player
// that are still held by their home power, sorted by ID.
func (s *Snapshot) LiveEnemyCapitals(player PlayerID) []*Territory {
	var out []*Territory
	for _, t := range s.Board.Territories() {
		if !t.Capital || t.HomePlayer == Neutral {
			continue
		}
		if s.IsAllied(t.HomePlayer, player) {
			continue
		}
		if s.Owner(t.ID) == t.HomePlayer {
			out = append(out, t)
		}
	}
	return out
}

// PlayerProduction sums the production of every territory the player holds.
func (s *Snapshot) PlayerProduction(player PlayerID) int {
	total := 0
	for _, t := range s.Board.Territories() {
		if s.Owner(t.ID) == player {
			total += t.Production
		}
	}
	return total
}

// UnitsAt returns the units standing in the territory.
func (s *Snapshot) UnitsAt(id TerritoryID) []Unit {
	return s.Units[id]
}

// HasFactory reports whether a factory stands in the territory. A captured
// factory serves its captor, so ownership of the unit does not matter.
func (s *Snapshot) HasFactory(id TerritoryID) bool {
	for _, u := range s.Units[id] {
		if u.Kind == Factory {
			return true
		}
	}
	return false
}

// EnemyUnitCount returns how many units in the territory belong to powers
// not allied with player. Independent garrisons count.
func (s *Snapshot) EnemyUnitCount(id TerritoryID, player PlayerID) int {
	count := 0
	for _, u := range s.Units[id] {
		if !s.IsAllied(u.Owner, player) {
			count++
		}
	}
	return count
}

// CanalBlocked reports whether the route crosses a canal whose control
// territories are not all held by player or an ally.
func (s *Snapshot) CanalBlocked(r Route, player PlayerID) bool {
	for i := 0; i+1 < len(r); i++ {
		for _, c := range s.Board.CanalsBetween(r[i], r[i+1]) {
			for _, ctrl := range c.Controls {
				if !s.IsAllied(s.Owner(ctrl), player) {
					return true
				}
			}
		}
	}
	return false
}

// Clone returns a deep copy of the snapshot. Mutations to the clone do not
// affect the original, so each concurrent valuation can work on its own
// copy. The immutable board is shared.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{Board: s.Board}
	if s.Owners != nil {
		c.Owners = make(map[TerritoryID]PlayerID, len(s.Owners))
		for k, v := range s.Owners {
			c.Owners[k] = v
		}
	}
	if s.Units != nil {
		c.Units = make(map[TerritoryID][]Unit, len(s.Units))
		for k, v := range s.Units {
			units := make([]Unit, len(v))
			copy(units, v)
			c.Units[k] = units
		}
	}
	if s.Alliances != nil {
		c.Alliances = make(map[PlayerID]string, len(s.Alliances))
		for k, v := range s.Alliances {
			c.Alliances[k] = v
		}
	}
	return c
}
