package wargame

import "fmt"

// PlayerID identifies a power. The empty value is the neutral non-player:
// unowned territories and independent garrisons belong to Neutral.
type PlayerID string

// Neutral owns unclaimed territories and independent garrisons.
const Neutral PlayerID = ""

// DiceSides is the number of faces on the combat die; unit attack and
// defense values are rolled against it.
const DiceSides = 6

// UnitKind enumerates the unit types of the game.
type UnitKind int

const (
	Infantry UnitKind = iota
	Artillery
	Armor
	Fighter
	Bomber
	Transport
	Submarine
	Destroyer
	Carrier
	Battleship
	Factory
)

var unitKindNames = [...]string{
	Infantry:   "infantry",
	Artillery:  "artillery",
	Armor:      "armor",
	Fighter:    "fighter",
	Bomber:     "bomber",
	Transport:  "transport",
	Submarine:  "submarine",
	Destroyer:  "destroyer",
	Carrier:    "carrier",
	Battleship: "battleship",
	Factory:    "factory",
}

func (k UnitKind) String() string {
	if k < 0 || int(k) >= len(unitKindNames) {
		return fmt.Sprintf("unitkind(%d)", int(k))
	}
	return unitKindNames[k]
}

// ParseUnitKind converts a kind name to its UnitKind.
func ParseUnitKind(name string) (UnitKind, error) {
	for k, n := range unitKindNames {
		if n == name {
			return UnitKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown unit kind %q", name)
}

// UnitClass groups kinds by where they can be placed.
type UnitClass int

const (
	ClassLand UnitClass = iota
	ClassSea
	ClassAir
	ClassInfra
)

// UnitStats holds the static combat and economic attributes of a unit kind.
type UnitStats struct {
	Attack    int
	Defense   int
	Move      int
	HitPoints int
	Cost      int
	Class     UnitClass
}

var unitStats = [...]UnitStats{
	Infantry:   {Attack: 1, Defense: 2, Move: 1, HitPoints: 1, Cost: 3, Class: ClassLand},
	Artillery:  {Attack: 2, Defense: 2, Move: 1, HitPoints: 1, Cost: 4, Class: ClassLand},
	Armor:      {Attack: 3, Defense: 3, Move: 2, HitPoints: 1, Cost: 5, Class: ClassLand},
	Fighter:    {Attack: 3, Defense: 4, Move: 4, HitPoints: 1, Cost: 10, Class: ClassAir},
	Bomber:     {Attack: 4, Defense: 1, Move: 6, HitPoints: 1, Cost: 12, Class: ClassAir},
	Transport:  {Attack: 0, Defense: 0, Move: 2, HitPoints: 1, Cost: 7, Class: ClassSea},
	Submarine:  {Attack: 2, Defense: 1, Move: 2, HitPoints: 1, Cost: 6, Class: ClassSea},
	Destroyer:  {Attack: 2, Defense: 2, Move: 2, HitPoints: 1, Cost: 8, Class: ClassSea},
	Carrier:    {Attack: 1, Defense: 2, Move: 2, HitPoints: 2, Cost: 14, Class: ClassSea},
	Battleship: {Attack: 4, Defense: 4, Move: 2, HitPoints: 2, Cost: 20, Class: ClassSea},
	Factory:    {Attack: 0, Defense: 0, Move: 0, HitPoints: 0, Cost: 15, Class: ClassInfra},
}

// Stats returns the static attributes of the kind.
func (k UnitKind) Stats() UnitStats {
	if k < 0 || int(k) >= len(unitStats) {
		return UnitStats{}
	}
	return unitStats[k]
}

// Unit is a single piece on the board. Its location is the key of the
// Snapshot's unit map.
type Unit struct {
	Kind  UnitKind
	Owner PlayerID
}
