package wargame

import "sync"

// Coalition tags used by the standard scenario.
const (
	AxisCoalition   = "axis"
	AlliesCoalition = "allies"
)

// Standard scenario powers.
const (
	Germany PlayerID = "germany"
	Italy   PlayerID = "italy"
	Britain PlayerID = "britain"
	France  PlayerID = "france"
)

var (
	standardOnce  sync.Once
	standardBoard *Board
)

// StandardBoard returns the built-in European-theater board: the continent,
// the British Isles, Scandinavia, North Africa, and the seas between them,
// with canals at Kiel, Gibraltar, and the Bosporus. The board is built once
// and shared.
func StandardBoard() *Board {
	standardOnce.Do(func() {
		standardBoard = buildStandardBoard()
	})
	return standardBoard
}

func buildStandardBoard() *Board {
	var territories []*Territory

	land := func(id TerritoryID, name string, production int) {
		territories = append(territories, &Territory{
			ID: id, Name: name, Production: production,
		})
	}
	capital := func(id TerritoryID, name string, production int, home PlayerID) {
		territories = append(territories, &Territory{
			ID: id, Name: name, Production: production,
			Capital: true, HomePlayer: home,
		})
	}
	impassable := func(id TerritoryID, name string) {
		territories = append(territories, &Territory{
			ID: id, Name: name, Impassable: true,
		})
	}
	water := func(id TerritoryID, name string, production int) {
		territories = append(territories, &Territory{
			ID: id, Name: name, Water: true, Production: production,
		})
	}

	// The continent
	capital("germany", "Germany", 8, Germany)
	land("ruhr", "Ruhr", 6)
	land("bavaria", "Bavaria", 3)
	land("prussia", "Prussia", 4)
	land("austria", "Austria", 3)
	land("poland", "Poland", 3)
	land("ukraine", "Ukraine", 4)
	capital("france", "France", 7, France)
	land("normandy", "Normandy", 3)
	land("gascony", "Gascony", 2)
	land("provence", "Provence", 2)
	capital("italy", "Italy", 6, Italy)
	land("tuscany", "Tuscany", 2)
	land("spain", "Spain", 4)
	land("portugal", "Portugal", 2)
	land("gibraltar", "Gibraltar", 1)
	land("denmark", "Denmark", 2)
	land("turkey", "Turkey", 3)
	impassable("switzerland", "Switzerland")

	// The British Isles
	capital("britain", "Britain", 8, Britain)
	land("scotland", "Scotland", 2)
	land("wales", "Wales", 1)
	land("ireland", "Ireland", 2)

	// Scandinavia
	land("norway", "Norway", 3)
	land("sweden", "Sweden", 3)

	// North Africa
	land("morocco", "Morocco", 2)
	land("algeria", "Algeria", 2)
	land("tunisia", "Tunisia", 2)
	land("libya", "Libya", 1)
	land("egypt", "Egypt", 3)

	// Seas; production marks convoy lanes
	water("north-sea", "North Sea", 3)
	water("norwegian-sea", "Norwegian Sea", 0)
	water("baltic-sea", "Baltic Sea", 0)
	water("channel", "English Channel", 0)
	water("irish-sea", "Irish Sea", 0)
	water("biscay", "Bay of Biscay", 0)
	water("east-atlantic", "Eastern Atlantic", 2)
	water("west-med", "Western Mediterranean", 0)
	water("tyrrhenian", "Tyrrhenian Sea", 2)
	water("ionian", "Ionian Sea", 0)
	water("aegean", "Aegean Sea", 0)
	water("east-med", "Eastern Mediterranean", 0)
	water("black-sea", "Black Sea", 0)
	water("caspian-sea", "Caspian Sea", 0)

	var adjacency [][2]TerritoryID
	adj := func(from TerritoryID, tos ...TerritoryID) {
		for _, to := range tos {
			adjacency = append(adjacency, [2]TerritoryID{from, to})
		}
	}

	// Land borders
	adj("germany", "ruhr", "bavaria", "prussia", "austria", "denmark")
	adj("ruhr", "france")
	adj("bavaria", "austria", "switzerland", "france")
	adj("prussia", "poland")
	adj("poland", "ukraine", "austria")
	adj("austria", "italy", "switzerland")
	adj("france", "switzerland", "normandy", "gascony", "provence")
	adj("normandy", "gascony")
	adj("gascony", "spain")
	adj("provence", "italy")
	adj("italy", "switzerland", "tuscany")
	adj("spain", "portugal", "gibraltar")
	adj("britain", "scotland", "wales")
	adj("norway", "sweden")
	adj("morocco", "algeria")
	adj("algeria", "tunisia")
	adj("tunisia", "libya")
	adj("libya", "egypt")

	// Coasts
	adj("north-sea", "britain", "scotland", "norway", "denmark", "germany")
	adj("norwegian-sea", "norway", "scotland")
	adj("baltic-sea", "germany", "prussia", "poland", "sweden", "denmark")
	adj("channel", "britain", "wales", "normandy", "france")
	adj("irish-sea", "ireland", "wales", "scotland")
	adj("biscay", "normandy", "gascony", "spain")
	adj("east-atlantic", "spain", "portugal", "morocco", "ireland", "gibraltar")
	adj("west-med", "spain", "morocco", "algeria", "provence")
	adj("tyrrhenian", "italy", "tuscany", "tunisia")
	adj("ionian", "libya")
	adj("aegean", "turkey")
	adj("east-med", "egypt")
	adj("black-sea", "ukraine", "turkey")
	adj("caspian-sea", "ukraine")

	// Sea lanes; the canal crossings are ordinary adjacencies gated below
	adj("north-sea", "norwegian-sea", "channel", "baltic-sea")
	adj("channel", "irish-sea", "biscay")
	adj("irish-sea", "east-atlantic")
	adj("biscay", "east-atlantic")
	adj("east-atlantic", "west-med")
	adj("west-med", "tyrrhenian")
	adj("tyrrhenian", "ionian")
	adj("ionian", "aegean", "east-med")
	adj("aegean", "black-sea", "east-med")

	canals := []Canal{
		{Name: "kiel-canal", Zones: [2]TerritoryID{"north-sea", "baltic-sea"}, Controls: []TerritoryID{"germany"}},
		{Name: "gibraltar-strait", Zones: [2]TerritoryID{"east-atlantic", "west-med"}, Controls: []TerritoryID{"gibraltar"}},
		{Name: "bosporus", Zones: [2]TerritoryID{"aegean", "black-sea"}, Controls: []TerritoryID{"turkey"}},
	}

	b, err := NewBoard(territories, adjacency, canals)
	if err != nil {
		panic("standard board: " + err.Error())
	}
	return b
}

// NewStandardSnapshot returns the standard scenario's starting position:
// the Axis holds the continent's northeast plus Norway and Libya, the
// Allies hold the west, the isles, and North Africa, and armed neutrals
// sit between them. Each call builds fresh state over the shared board.
func NewStandardSnapshot() *Snapshot {
	units := make(map[TerritoryID][]Unit)
	place := func(id TerritoryID, owner PlayerID, count int, kind UnitKind) {
		for i := 0; i < count; i++ {
			units[id] = append(units[id], Unit{Kind: kind, Owner: owner})
		}
	}

	// Germany
	place("germany", Germany, 1, Factory)
	place("germany", Germany, 4, Infantry)
	place("germany", Germany, 2, Armor)
	place("ruhr", Germany, 1, Factory)
	place("ruhr", Germany, 2, Infantry)
	place("bavaria", Germany, 1, Infantry)
	place("prussia", Germany, 2, Infantry)
	place("austria", Germany, 1, Infantry)
	place("poland", Germany, 1, Infantry)
	place("ukraine", Germany, 1, Infantry)
	place("norway", Germany, 1, Infantry)
	place("baltic-sea", Germany, 2, Submarine)

	// Italy
	place("italy", Italy, 1, Factory)
	place("italy", Italy, 3, Infantry)
	place("italy", Italy, 1, Armor)
	place("tuscany", Italy, 1, Infantry)
	place("libya", Italy, 2, Infantry)
	place("tyrrhenian", Italy, 1, Destroyer)
	place("tyrrhenian", Italy, 1, Transport)

	// France
	place("france", France, 1, Factory)
	place("france", France, 3, Infantry)
	place("france", France, 1, Armor)
	place("normandy", France, 1, Infantry)
	place("gascony", France, 1, Infantry)
	place("provence", France, 1, Infantry)
	place("morocco", France, 1, Infantry)
	place("algeria", France, 1, Infantry)
	place("tunisia", France, 1, Infantry)
	place("biscay", France, 1, Destroyer)

	// Britain
	place("britain", Britain, 1, Factory)
	place("britain", Britain, 2, Infantry)
	place("britain", Britain, 1, Fighter)
	place("scotland", Britain, 1, Infantry)
	place("wales", Britain, 1, Infantry)
	place("gibraltar", Britain, 1, Infantry)
	place("egypt", Britain, 2, Infantry)
	place("north-sea", Britain, 1, Destroyer)
	place("north-sea", Britain, 1, Battleship)
	place("channel", Britain, 1, Destroyer)
	place("east-med", Britain, 1, Destroyer)

	// Armed neutrals
	place("ireland", Neutral, 2, Infantry)
	place("spain", Neutral, 4, Infantry)
	place("portugal", Neutral, 1, Infantry)
	place("denmark", Neutral, 1, Infantry)
	place("sweden", Neutral, 2, Infantry)
	place("turkey", Neutral, 3, Infantry)

	owners := map[TerritoryID]PlayerID{
		"germany": Germany, "ruhr": Germany, "bavaria": Germany,
		"prussia": Germany, "austria": Germany, "poland": Germany,
		"ukraine": Germany, "norway": Germany,

		"italy": Italy, "tuscany": Italy, "libya": Italy,
		"tyrrhenian": Italy,

		"france": France, "normandy": France, "gascony": France,
		"provence": France, "morocco": France, "algeria": France,
		"tunisia": France,

		"britain": Britain, "scotland": Britain, "wales": Britain,
		"gibraltar": Britain, "egypt": Britain,
		"north-sea": Britain, "east-atlantic": Britain,
	}

	return &Snapshot{
		Board:  StandardBoard(),
		Owners: owners,
		Units:  units,
		Alliances: map[PlayerID]string{
			Germany: AxisCoalition,
			Italy:   AxisCoalition,
			Britain: AlliesCoalition,
			France:  AlliesCoalition,
		},
	}
}
