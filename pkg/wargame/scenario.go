package wargame

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Scenario is the on-disk description of a board and a starting position.
// It is the interchange format for the command-line tools and for tests
// that want a position without building one in code.
type Scenario struct {
	Name        string                         `json:"name,omitempty"`
	Players     []ScenarioPlayer               `json:"players"`
	Territories []ScenarioTerritory            `json:"territories"`
	Adjacency   [][2]TerritoryID               `json:"adjacency"`
	Canals      []Canal                        `json:"canals,omitempty"`
	Owners      map[TerritoryID]PlayerID       `json:"owners,omitempty"`
	Units       map[TerritoryID][]ScenarioUnit `json:"units,omitempty"`
}

// ScenarioPlayer declares a power and its coalition.
type ScenarioPlayer struct {
	ID       PlayerID `json:"id"`
	Alliance string   `json:"alliance,omitempty"`
}

// ScenarioTerritory mirrors Territory with JSON tags.
type ScenarioTerritory struct {
	ID         TerritoryID `json:"id"`
	Name       string      `json:"name,omitempty"`
	Water      bool        `json:"water,omitempty"`
	Impassable bool        `json:"impassable,omitempty"`
	Production int         `json:"production,omitempty"`
	Capital    bool        `json:"capital,omitempty"`
	Home       PlayerID    `json:"home,omitempty"`
}

// ScenarioUnit is a stack of identical units. A zero count means one.
type ScenarioUnit struct {
	Kind  string   `json:"kind"`
	Owner PlayerID `json:"owner,omitempty"`
	Count int      `json:"count,omitempty"`
}

// LoadScenario parses a JSON scenario. Structural validation happens in
// Build, so a loaded scenario may still fail to produce a snapshot.
func LoadScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

// Encode renders the scenario as indented JSON.
func (sc *Scenario) Encode() ([]byte, error) {
	return json.MarshalIndent(sc, "", "  ")
}

// Build validates the scenario and produces a snapshot over a fresh board.
func (sc *Scenario) Build() (*Snapshot, error) {
	if len(sc.Players) == 0 {
		return nil, fmt.Errorf("scenario declares no players")
	}
	alliances := make(map[PlayerID]string, len(sc.Players))
	for _, p := range sc.Players {
		if p.ID == Neutral {
			return nil, fmt.Errorf("player with empty ID; the neutral power is implicit")
		}
		if _, ok := alliances[p.ID]; ok {
			return nil, fmt.Errorf("duplicate player %q", p.ID)
		}
		alliances[p.ID] = p.Alliance
	}

	territories := make([]*Territory, 0, len(sc.Territories))
	for _, st := range sc.Territories {
		if st.Home != Neutral {
			if _, ok := alliances[st.Home]; !ok {
				return nil, fmt.Errorf("territory %q has undeclared home player %q", st.ID, st.Home)
			}
		}
		if st.Capital && st.Home == Neutral {
			return nil, fmt.Errorf("capital %q has no home player", st.ID)
		}
		if st.Capital && st.Water {
			return nil, fmt.Errorf("capital %q is water", st.ID)
		}
		if st.Production < 0 {
			return nil, fmt.Errorf("territory %q has negative production", st.ID)
		}
		territories = append(territories, &Territory{
			ID:         st.ID,
			Name:       st.Name,
			Water:      st.Water,
			Impassable: st.Impassable,
			Production: st.Production,
			Capital:    st.Capital,
			HomePlayer: st.Home,
		})
	}

	board, err := NewBoard(territories, sc.Adjacency, sc.Canals)
	if err != nil {
		return nil, err
	}

	owners := make(map[TerritoryID]PlayerID, len(sc.Owners))
	for id, owner := range sc.Owners {
		if board.Territory(id) == nil {
			return nil, fmt.Errorf("owner entry for unknown territory %q", id)
		}
		if owner == Neutral {
			return nil, fmt.Errorf("territory %q owned by empty player; omit the entry instead", id)
		}
		if _, ok := alliances[owner]; !ok {
			return nil, fmt.Errorf("territory %q owned by undeclared player %q", id, owner)
		}
		owners[id] = owner
	}

	units := make(map[TerritoryID][]Unit)
	unitTerritories := make([]TerritoryID, 0, len(sc.Units))
	for id := range sc.Units {
		unitTerritories = append(unitTerritories, id)
	}
	sort.Slice(unitTerritories, func(i, j int) bool { return unitTerritories[i] < unitTerritories[j] })
	for _, id := range unitTerritories {
		t := board.Territory(id)
		if t == nil {
			return nil, fmt.Errorf("units in unknown territory %q", id)
		}
		for _, su := range sc.Units[id] {
			kind, err := ParseUnitKind(su.Kind)
			if err != nil {
				return nil, fmt.Errorf("territory %q: %w", id, err)
			}
			if su.Owner != Neutral {
				if _, ok := alliances[su.Owner]; !ok {
					return nil, fmt.Errorf("territory %q: unit owned by undeclared player %q", id, su.Owner)
				}
			}
			switch kind.Stats().Class {
			case ClassSea:
				if !t.Water {
					return nil, fmt.Errorf("territory %q: %s on land", id, kind)
				}
			case ClassLand, ClassInfra:
				if t.Water {
					return nil, fmt.Errorf("territory %q: %s at sea", id, kind)
				}
			}
			count := su.Count
			if count == 0 {
				count = 1
			}
			if count < 0 {
				return nil, fmt.Errorf("territory %q: negative unit count", id)
			}
			for i := 0; i < count; i++ {
				units[id] = append(units[id], Unit{Kind: kind, Owner: su.Owner})
			}
		}
	}

	return &Snapshot{
		Board:     board,
		Owners:    owners,
		Units:     units,
		Alliances: alliances,
	}, nil
}

// ExportScenario renders a snapshot back into the scenario format with a
// stable element order, so exports of equal snapshots compare equal.
func ExportScenario(name string, s *Snapshot) *Scenario {
	sc := &Scenario{Name: name}

	for _, p := range s.Players() {
		sc.Players = append(sc.Players, ScenarioPlayer{ID: p, Alliance: s.Alliances[p]})
	}

	for _, t := range s.Board.Territories() {
		sc.Territories = append(sc.Territories, ScenarioTerritory{
			ID:         t.ID,
			Name:       t.Name,
			Water:      t.Water,
			Impassable: t.Impassable,
			Production: t.Production,
			Capital:    t.Capital,
			Home:       t.HomePlayer,
		})
		for _, n := range s.Board.Neighbors(t.ID, Any) {
			if t.ID < n.ID {
				sc.Adjacency = append(sc.Adjacency, [2]TerritoryID{t.ID, n.ID})
			}
		}
		if owner := s.Owner(t.ID); owner != Neutral {
			if sc.Owners == nil {
				sc.Owners = make(map[TerritoryID]PlayerID)
			}
			sc.Owners[t.ID] = owner
		}
		if stacks := stackUnits(s.UnitsAt(t.ID)); len(stacks) > 0 {
			if sc.Units == nil {
				sc.Units = make(map[TerritoryID][]ScenarioUnit)
			}
			sc.Units[t.ID] = stacks
		}
	}

	sc.Canals = append(sc.Canals, s.Board.Canals()...)
	return sc
}

// stackUnits collapses a unit list into sorted (kind, owner, count) stacks.
func stackUnits(units []Unit) []ScenarioUnit {
	counts := make(map[Unit]int)
	for _, u := range units {
		counts[u]++
	}
	stacks := make([]ScenarioUnit, 0, len(counts))
	for u, n := range counts {
		stacks = append(stacks, ScenarioUnit{Kind: u.Kind.String(), Owner: u.Owner, Count: n})
	}
	sort.Slice(stacks, func(i, j int) bool {
		if stacks[i].Kind != stacks[j].Kind {
			return stacks[i].Kind < stacks[j].Kind
		}
		return stacks[i].Owner < stacks[j].Owner
	})
	return stacks
}
