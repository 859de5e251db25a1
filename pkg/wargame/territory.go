package wargame

// TerritoryID uniquely identifies a territory on the board.
type TerritoryID string

// Territory represents a single territory on the map. Static attributes only;
// ownership and units live on the Snapshot.
type Territory struct {
	ID         TerritoryID
	Name       string
	Water      bool
	Impassable bool     // nothing may enter (mountain ranges, deep neutrals)
	Production int      // economic output when held; convoy value for water
	Capital    bool     // capital of HomePlayer
	HomePlayer PlayerID // power this territory originally belongs to ("" if none)
}

// TerritoryMatch is a named predicate over territories. Graph queries take a
// match so callers can restrict traversal to what a unit class can enter.
// A zero Test matches every territory.
type TerritoryMatch struct {
	Name string
	Test func(*Territory) bool
}

// Match reports whether t satisfies the predicate.
func (m TerritoryMatch) Match(t *Territory) bool {
	return m.Test == nil || m.Test(t)
}

func (m TerritoryMatch) String() string { return m.Name }

// Any matches every territory.
var Any = TerritoryMatch{Name: "any"}

// IsWater matches water territories, passable or not.
var IsWater = TerritoryMatch{
	Name: "water",
	Test: func(t *Territory) bool { return t.Water },
}

// LandMobile matches territories land units can operate in.
var LandMobile = TerritoryMatch{
	Name: "land-mobile",
	Test: func(t *Territory) bool { return !t.Water && !t.Impassable },
}

// SeaMobile matches territories sea units can operate in.
var SeaMobile = TerritoryMatch{
	Name: "sea-mobile",
	Test: func(t *Territory) bool { return t.Water && !t.Impassable },
}

// Route is an ordered path of territories from a start to a destination,
// both included.
type Route []TerritoryID

// Steps returns the number of moves along the route.
func (r Route) Steps() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}
