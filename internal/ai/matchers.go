// Package ai scores territories for the move planner. The entry points are
// AttackValue, TerritoryValues, and SeaTerritoryValues; everything works on
// a read-only snapshot and returns fresh maps.
package ai

import (
	"github.com/freeeve/warplan/pkg/wargame"
)

// isPotentialEnemy reports whether owner is a declared power not allied
// with player. Neutral is not a power.
func isPotentialEnemy(s *wargame.Snapshot, player, owner wargame.PlayerID) bool {
	return owner != wargame.Neutral && !s.IsAllied(owner, player)
}

// EnemyOrCantBeHeld matches territories worth contesting: held by a
// potential enemy, neutral land, or listed as unholdable. Unowned water is
// not enemy ground.
func EnemyOrCantBeHeld(s *wargame.Snapshot, player wargame.PlayerID, cantBeHeld map[wargame.TerritoryID]bool) wargame.TerritoryMatch {
	return wargame.TerritoryMatch{
		Name: "enemy-or-cant-be-held",
		Test: func(t *wargame.Territory) bool {
			if cantBeHeld[t.ID] {
				return true
			}
			owner := s.Owner(t.ID)
			if owner == wargame.Neutral {
				return !t.Water
			}
			return isPotentialEnemy(s, player, owner)
		},
	}
}

// HasEnemyUnits matches territories holding at least one unit of a power
// not allied with player, independent garrisons included.
func HasEnemyUnits(s *wargame.Snapshot, player wargame.PlayerID) wargame.TerritoryMatch {
	return wargame.TerritoryMatch{
		Name: "has-enemy-units",
		Test: func(t *wargame.Territory) bool {
			return s.EnemyUnitCount(t.ID, player) > 0
		},
	}
}

// LandFactory matches land territories with a standing factory, whoever
// holds them.
func LandFactory(s *wargame.Snapshot) wargame.TerritoryMatch {
	return wargame.TerritoryMatch{
		Name: "land-factory",
		Test: func(t *wargame.Territory) bool {
			return !t.Water && s.HasFactory(t.ID)
		},
	}
}

// EnemyLandFactory matches land factories on hostile ground: held by a
// potential enemy or by nobody.
func EnemyLandFactory(s *wargame.Snapshot, player wargame.PlayerID) wargame.TerritoryMatch {
	return wargame.TerritoryMatch{
		Name: "enemy-land-factory",
		Test: func(t *wargame.Territory) bool {
			if t.Water || !s.HasFactory(t.ID) {
				return false
			}
			owner := s.Owner(t.ID)
			return owner == wargame.Neutral || isPotentialEnemy(s, player, owner)
		},
	}
}

// AlliedLandNoEnemyNeighbors matches friendly land with no adjacent
// enemy-held land. Such territories face amphibious raids at worst, so the
// planner discounts them.
func AlliedLandNoEnemyNeighbors(s *wargame.Snapshot, player wargame.PlayerID) wargame.TerritoryMatch {
	return wargame.TerritoryMatch{
		Name: "allied-land-no-enemy-neighbors",
		Test: func(t *wargame.Territory) bool {
			if t.Water || !s.IsAllied(s.Owner(t.ID), player) {
				return false
			}
			for _, n := range s.Board.Neighbors(t.ID, wargame.LandMobile) {
				if isPotentialEnemy(s, player, s.Owner(n.ID)) {
					return false
				}
			}
			return true
		},
	}
}
