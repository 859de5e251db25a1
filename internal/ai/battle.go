package ai

import (
	"github.com/freeeve/warplan/pkg/wargame"
)

// EstimateDefenseStrength scores how hard a stack of defenders is to
// clear: two points per hit point plus defensive power normalized to a
// six-sided die. Infrastructure does not fight.
func EstimateDefenseStrength(units []wargame.Unit) float64 {
	hitPoints, power := 0, 0
	for _, u := range units {
		stats := u.Kind.Stats()
		if stats.Class == wargame.ClassInfra {
			continue
		}
		hitPoints += stats.HitPoints
		defense := stats.Defense
		if defense > wargame.DiceSides {
			defense = wargame.DiceSides
		}
		power += defense
	}
	return float64(2*hitPoints) + float64(power)*6/float64(wargame.DiceSides)
}

// MinCostPerHitPoint returns the cheapest cost per hit point among the
// unit kinds the player currently fields, so casualty estimates assume the
// player screens with its most expendable units. A player with no units
// falls back to the full catalog.
func MinCostPerHitPoint(s *wargame.Snapshot, player wargame.PlayerID) float64 {
	fielded := make(map[wargame.UnitKind]bool)
	for _, t := range s.Board.Territories() {
		for _, u := range s.UnitsAt(t.ID) {
			if u.Owner == player {
				fielded[u.Kind] = true
			}
		}
	}

	best := 0.0
	found := false
	consider := func(k wargame.UnitKind) {
		stats := k.Stats()
		if stats.Class == wargame.ClassInfra || stats.HitPoints == 0 {
			return
		}
		cost := float64(stats.Cost) / float64(stats.HitPoints)
		if !found || cost < best {
			best = cost
			found = true
		}
	}
	for k := range fielded {
		consider(k)
	}
	if !found {
		for k := wargame.Infantry; k <= wargame.Factory; k++ {
			consider(k)
		}
	}
	return best
}
