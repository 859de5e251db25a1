package ai

import (
	"math"
	"sort"

	"github.com/freeeve/warplan/pkg/wargame"
)

// Tuned search horizons, in mobility steps. The asset search widens one
// ring at a time and stops at the first ring holding a capital or factory.
const (
	assetSearchMinRadius = 9
	assetSearchMaxRadius = 30
	landThreatRadius     = 2
	waterThreatRadius    = 3
	seaSearchRadius      = 4
	landMassRadius       = 6
)

// ValueMap holds one valuation result: territory to worth. It lives for a
// single call; the water pass also uses it to memoize land values it
// computes on demand, and those entries stay in the returned map.
type ValueMap map[wargame.TerritoryID]float64

// AttackValue scores the one-shot worth of capturing a single territory:
// triple production, doubled again for a hostile land factory, less the
// estimated cost of clearing a neutral garrison. A strong garrison on poor
// ground can push the value negative.
func AttackValue(s *wargame.Snapshot, player wargame.PlayerID, id wargame.TerritoryID) float64 {
	t := s.Board.Territory(id)
	if t == nil {
		return 0
	}
	isEnemyFactory := 0
	if EnemyLandFactory(s, player).Match(t) {
		isEnemyFactory = 1
	}
	value := 3 * float64(t.Production) * float64(isEnemyFactory+1)
	if !t.Water && s.Owner(t.ID) == wargame.Neutral {
		strength := EstimateDefenseStrength(s.UnitsAt(t.ID))
		value -= strength / 8 * MinCostPerHitPoint(s, player)
	}
	return value
}

// TerritoryValues scores every territory in toCheck for the player: the
// land pass first, then the water pass, which may extend the map with
// land values it needs along the way. A nil toCheck means the whole
// board. Territories in cantBeHeld score zero; territories in toAttack
// are already committed targets and do not count as nearby threats.
func TerritoryValues(s *wargame.Snapshot, player wargame.PlayerID, cantBeHeld, toAttack, toCheck map[wargame.TerritoryID]bool) ValueMap {
	maxLandMass := maxLandMassSize(s.Board)
	assets := assetWeights(s, player, maxLandMass, cantBeHeld, toAttack)

	values := make(ValueMap)
	for _, t := range s.Board.Territories() {
		if t.Water || (toCheck != nil && !toCheck[t.ID]) {
			continue
		}
		values[t.ID] = landValue(s, player, t, maxLandMass, assets, cantBeHeld, toAttack)
	}
	for _, t := range s.Board.Territories() {
		if !t.Water || (toCheck != nil && !toCheck[t.ID]) {
			continue
		}
		values[t.ID] = waterValue(s, player, t, maxLandMass, assets, cantBeHeld, toAttack, values)
	}
	return values
}

// SeaTerritoryValues scores only water territories, for placing and moving
// fleets: nearby hostile convoy production weighted a hundredfold plus
// nearby hostile fleet counts, both decayed by sea route length. Water in
// cantBeHeld or without a water neighbor scores zero; land does not appear
// in the result.
func SeaTerritoryValues(s *wargame.Snapshot, player wargame.PlayerID, cantBeHeld map[wargame.TerritoryID]bool) ValueMap {
	values := make(ValueMap)
	enemy := EnemyOrCantBeHeld(s, player, cantBeHeld)
	hasEnemyUnits := HasEnemyUnits(s, player)
	for _, t := range s.Board.Territories() {
		if !t.Water {
			continue
		}
		if cantBeHeld[t.ID] || len(s.Board.Neighbors(t.ID, wargame.IsWater)) == 0 {
			values[t.ID] = 0
			continue
		}

		nearby := s.Board.NeighborsWithin(t.ID, seaSearchRadius, wargame.SeaMobile)

		production := 0.0
		for _, n := range nearby {
			if !enemy.Match(n) {
				continue
			}
			steps := seaRouteSteps(s, player, t.ID, n.ID)
			if steps > 0 {
				production += float64(n.Production) / math.Pow(2, float64(steps))
			}
		}

		enemyUnits := 0.0
		for _, n := range nearby {
			if !hasEnemyUnits.Match(n) {
				continue
			}
			steps := seaRouteSteps(s, player, t.ID, n.ID)
			if steps > 0 {
				enemyUnits += float64(s.EnemyUnitCount(n.ID, player)) / math.Pow(2, float64(steps))
			}
		}

		values[t.ID] = 100*production + enemyUnits
	}
	return values
}

// maxLandMassSize is the largest land mass measure on the board, the
// normalizer for capital and factory weights.
func maxLandMassSize(b *wargame.Board) int {
	max := 1
	for _, t := range b.Territories() {
		if t.Water {
			continue
		}
		if size := landMassSize(b, t.ID); size > max {
			max = size
		}
	}
	return max
}

func landMassSize(b *wargame.Board, id wargame.TerritoryID) int {
	return 1 + len(b.NeighborsWithin(id, landMassRadius, wargame.LandMobile))
}

// assetWeights locates the enemy capitals and factories worth marching
// toward and weighs each by production and the size of its land mass.
// When enemies have factories in at least half their territories, single
// factories stop being meaningful targets and only live capitals remain.
func assetWeights(s *wargame.Snapshot, player wargame.PlayerID, maxLandMass int, cantBeHeld, toAttack map[wargame.TerritoryID]bool) ValueMap {
	candidates := make(map[wargame.TerritoryID]bool)
	enemyTerritories := 0
	for _, t := range s.Board.Territories() {
		owner := s.Owner(t.ID)
		if isPotentialEnemy(s, player, owner) {
			enemyTerritories++
		}
		if t.Water || !s.HasFactory(t.ID) {
			continue
		}
		if isPotentialEnemy(s, player, owner) || (owner == player && cantBeHeld[t.ID]) {
			candidates[t.ID] = true
		}
	}
	if 2*len(candidates) >= enemyTerritories {
		clear(candidates)
	}
	for _, t := range s.LiveEnemyCapitals(player) {
		candidates[t.ID] = true
	}
	for id := range toAttack {
		delete(candidates, id)
	}

	landFactory := LandFactory(s)
	weights := make(ValueMap, len(candidates))
	for _, t := range s.Board.Territories() {
		if !candidates[t.ID] {
			continue
		}
		factoryProduction := 0
		if landFactory.Match(t) {
			factoryProduction = t.Production
		}
		playerProduction := 0.0
		if t.Capital {
			playerProduction = float64(s.PlayerProduction(s.Owner(t.ID)))
		}
		isNeutral := 0
		if s.Owner(t.ID) == wargame.Neutral {
			isNeutral = 1
		}
		size := landMassSize(s.Board, t.ID)
		weights[t.ID] = math.Sqrt(float64(factoryProduction)+math.Sqrt(playerProduction)) *
			32 / float64(1+3*isNeutral) * float64(size) / float64(maxLandMass)
	}
	return weights
}

// nearestAssets widens the plain-adjacency search ring from the minimum
// radius until it first catches one of the asset territories, and returns
// everything inside that ring. An empty result means no asset lies within
// the maximum radius.
func nearestAssets(b *wargame.Board, from wargame.TerritoryID, assets ValueMap) []*wargame.Territory {
	for radius := assetSearchMinRadius; radius <= assetSearchMaxRadius; radius++ {
		var found []*wargame.Territory
		for _, n := range b.NeighborsWithin(from, radius, wargame.Any) {
			if _, ok := assets[n.ID]; ok {
				found = append(found, n)
			}
		}
		if len(found) > 0 {
			return found
		}
	}
	return nil
}

// rankedAssetSum applies diminishing returns: contributions sorted
// descending, the i-th counting at 1/2^i.
func rankedAssetSum(contributions []float64) float64 {
	sort.Sort(sort.Reverse(sort.Float64Slice(contributions)))
	total := 0.0
	for i, c := range contributions {
		total += c / math.Pow(2, float64(i))
	}
	return total
}

// landValue scores one land territory: decayed weights of the nearest
// enemy capitals and factories plus decayed production of contestable
// ground within marching range, scaled by the local land mass.
func landValue(s *wargame.Snapshot, player wargame.PlayerID, t *wargame.Territory, maxLandMass int, assets ValueMap, cantBeHeld, toAttack map[wargame.TerritoryID]bool) float64 {
	if cantBeHeld[t.ID] {
		return 0
	}

	var contributions []float64
	for _, asset := range nearestAssets(s.Board, t.ID, assets) {
		distance := s.Board.Distance(t.ID, asset.ID, wargame.LandMobile)
		if distance > 0 {
			contributions = append(contributions, assets[asset.ID]/math.Pow(2, float64(distance)))
		}
	}
	capitalOrFactoryValue := rankedAssetSum(contributions)

	nearbyEnemyValue := 0.0
	enemy := EnemyOrCantBeHeld(s, player, cantBeHeld)
	discounted := AlliedLandNoEnemyNeighbors(s, player)
	for _, n := range s.Board.NeighborsWithin(t.ID, landThreatRadius, wargame.LandMobile) {
		if toAttack[n.ID] || !enemy.Match(n) {
			continue
		}
		distance := s.Board.Distance(t.ID, n.ID, wargame.LandMobile)
		if distance <= 0 {
			continue
		}
		value := float64(n.Production)
		if s.Owner(n.ID) == wargame.Neutral {
			value = AttackValue(s, player, n.ID) / 3
		} else if discounted.Match(n) {
			value *= 0.1
		}
		if value > 0 {
			nearbyEnemyValue += value / math.Pow(2, float64(distance))
		}
	}

	size := landMassSize(s.Board, t.ID)
	value := nearbyEnemyValue*float64(size)/float64(maxLandMass) + capitalOrFactoryValue
	if LandFactory(s).Match(t) {
		value *= 1.1
	}
	return value
}

// waterValue scores one water territory: decayed asset weights over sea
// routes, plus a tenth of the worth of the land it can project onto
// within three steps. Land values needed here are computed through the
// shared memo, the cross-recursion with landValue.
func waterValue(s *wargame.Snapshot, player wargame.PlayerID, t *wargame.Territory, maxLandMass int, assets ValueMap, cantBeHeld, toAttack map[wargame.TerritoryID]bool, memo ValueMap) float64 {
	if cantBeHeld[t.ID] || len(s.Board.Neighbors(t.ID, wargame.IsWater)) == 0 {
		return 0
	}

	var contributions []float64
	for _, asset := range nearestAssets(s.Board, t.ID, assets) {
		steps := seaRouteSteps(s, player, t.ID, asset.ID)
		if steps > 0 {
			contributions = append(contributions, assets[asset.ID]/math.Pow(2, float64(steps)))
		}
	}
	capitalOrFactoryValue := rankedAssetSum(contributions)

	nearbyLandValue := 0.0
	enemy := EnemyOrCantBeHeld(s, player, cantBeHeld)
	for _, n := range s.Board.NeighborsWithin(t.ID, waterThreatRadius, wargame.Any) {
		if !wargame.LandMobile.Match(n) || toAttack[n.ID] {
			continue
		}
		steps := seaRouteSteps(s, player, t.ID, n.ID)
		if steps <= 0 || steps > waterThreatRadius {
			continue
		}
		if enemy.Match(n) {
			value := float64(n.Production)
			if s.Owner(n.ID) == wargame.Neutral {
				value = AttackValue(s, player, n.ID)
			}
			nearbyLandValue += value
		}
		if _, ok := memo[n.ID]; !ok {
			memo[n.ID] = landValue(s, player, n, maxLandMass, assets, cantBeHeld, toAttack)
		}
		nearbyLandValue += memo[n.ID]
	}

	return capitalOrFactoryValue/100 + nearbyLandValue/10
}

// seaRouteSteps returns the length of the shortest sea route between two
// territories, or -1 when no route exists or a hostile canal blocks it.
// The destination may be land; only the waypoints must be navigable.
func seaRouteSteps(s *wargame.Snapshot, player wargame.PlayerID, from, to wargame.TerritoryID) int {
	route := s.Board.ShortestRoute(from, to, wargame.SeaMobile)
	if route == nil || s.CanalBlocked(route, player) {
		return -1
	}
	return route.Steps()
}
