package wargame

import (
	"reflect"
	"testing"
)

// minimalScenario returns a two-power scenario that passes validation.
func minimalScenario() *Scenario {
	return &Scenario{
		Name: "minimal",
		Players: []ScenarioPlayer{
			{ID: "red", Alliance: "east"},
			{ID: "blue", Alliance: "west"},
		},
		Territories: []ScenarioTerritory{
			{ID: "alpha", Production: 2, Capital: true, Home: "red"},
			{ID: "beta", Production: 1},
			{ID: "gulf", Water: true},
		},
		Adjacency: [][2]TerritoryID{{"alpha", "beta"}, {"beta", "gulf"}},
		Owners:    map[TerritoryID]PlayerID{"alpha": "red", "beta": "blue"},
		Units: map[TerritoryID][]ScenarioUnit{
			"alpha": {{Kind: "infantry", Owner: "red", Count: 2}},
			"gulf":  {{Kind: "destroyer", Owner: "blue"}},
		},
	}
}

func TestScenario_Build(t *testing.T) {
	s, err := minimalScenario().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if s.Owner("alpha") != "red" || s.Owner("beta") != "blue" {
		t.Error("owners not carried into snapshot")
	}
	if s.Owner("gulf") != Neutral {
		t.Error("unowned water should be neutral")
	}
	if got := len(s.UnitsAt("alpha")); got != 2 {
		t.Errorf("alpha has %d units, want 2", got)
	}
	// An omitted count means a single unit.
	if got := len(s.UnitsAt("gulf")); got != 1 {
		t.Errorf("gulf has %d units, want 1", got)
	}
	if s.Board.Territory("alpha").HomePlayer != "red" {
		t.Error("capital home player not carried into board")
	}
}

func TestScenario_Build_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"no players", func(sc *Scenario) { sc.Players = nil }},
		{"empty player ID", func(sc *Scenario) {
			sc.Players = append(sc.Players, ScenarioPlayer{ID: ""})
		}},
		{"duplicate player", func(sc *Scenario) {
			sc.Players = append(sc.Players, ScenarioPlayer{ID: "red"})
		}},
		{"undeclared home player", func(sc *Scenario) {
			sc.Territories[1].Home = "green"
		}},
		{"capital without home", func(sc *Scenario) {
			sc.Territories[0].Home = ""
		}},
		{"water capital", func(sc *Scenario) {
			sc.Territories[2].Capital = true
			sc.Territories[2].Home = "blue"
		}},
		{"negative production", func(sc *Scenario) {
			sc.Territories[1].Production = -1
		}},
		{"owner of unknown territory", func(sc *Scenario) {
			sc.Owners["nowhere"] = "red"
		}},
		{"empty owner", func(sc *Scenario) {
			sc.Owners["beta"] = ""
		}},
		{"undeclared owner", func(sc *Scenario) {
			sc.Owners["beta"] = "green"
		}},
		{"units in unknown territory", func(sc *Scenario) {
			sc.Units["nowhere"] = []ScenarioUnit{{Kind: "infantry"}}
		}},
		{"unknown unit kind", func(sc *Scenario) {
			sc.Units["alpha"] = []ScenarioUnit{{Kind: "zeppelin", Owner: "red"}}
		}},
		{"unit owner undeclared", func(sc *Scenario) {
			sc.Units["alpha"] = []ScenarioUnit{{Kind: "infantry", Owner: "green"}}
		}},
		{"sea unit on land", func(sc *Scenario) {
			sc.Units["alpha"] = []ScenarioUnit{{Kind: "destroyer", Owner: "red"}}
		}},
		{"land unit at sea", func(sc *Scenario) {
			sc.Units["gulf"] = []ScenarioUnit{{Kind: "infantry", Owner: "blue"}}
		}},
		{"factory at sea", func(sc *Scenario) {
			sc.Units["gulf"] = []ScenarioUnit{{Kind: "factory", Owner: "blue"}}
		}},
		{"negative unit count", func(sc *Scenario) {
			sc.Units["alpha"] = []ScenarioUnit{{Kind: "infantry", Owner: "red", Count: -1}}
		}},
		{"board error surfaces", func(sc *Scenario) {
			sc.Adjacency = append(sc.Adjacency, [2]TerritoryID{"alpha", "alpha"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := minimalScenario()
			tt.mutate(sc)
			if _, err := sc.Build(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadScenario_BadJSON(t *testing.T) {
	if _, err := LoadScenario([]byte("{not json")); err == nil {
		t.Error("expected parse error")
	}
}

func TestScenario_EncodeLoadRoundTrip(t *testing.T) {
	original := minimalScenario()
	data, err := original.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	loaded, err := LoadScenario(data)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Error("scenario changed across encode/load")
	}
}

func TestExportScenario_RebuildsEqualSnapshot(t *testing.T) {
	s := NewStandardSnapshot()
	data, err := ExportScenario("standard", s).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	loaded, err := LoadScenario(data)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	rebuilt, err := loaded.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !reflect.DeepEqual(rebuilt.Owners, s.Owners) {
		t.Error("owners changed across export/rebuild")
	}
	if !reflect.DeepEqual(rebuilt.Alliances, s.Alliances) {
		t.Error("alliances changed across export/rebuild")
	}
	if len(rebuilt.Board.Territories()) != len(s.Board.Territories()) {
		t.Fatal("territory count changed across export/rebuild")
	}
	for _, territory := range s.Board.Territories() {
		r := rebuilt.Board.Territory(territory.ID)
		if r == nil {
			t.Fatalf("territory %s missing after rebuild", territory.ID)
		}
		if *r != *territory {
			t.Errorf("territory %s changed: %+v vs %+v", territory.ID, r, territory)
		}
		if !reflect.DeepEqual(ids(rebuilt.Board.Neighbors(territory.ID, Any)), ids(s.Board.Neighbors(territory.ID, Any))) {
			t.Errorf("adjacency of %s changed across export/rebuild", territory.ID)
		}
		// Unit order within a stack is not preserved, grouped counts are.
		if !reflect.DeepEqual(stackUnits(rebuilt.UnitsAt(territory.ID)), stackUnits(s.UnitsAt(territory.ID))) {
			t.Errorf("units at %s changed across export/rebuild", territory.ID)
		}
	}
	if !reflect.DeepEqual(rebuilt.Board.Canals(), s.Board.Canals()) {
		t.Error("canals changed across export/rebuild")
	}
}

func TestExportScenario_StableOutput(t *testing.T) {
	a, err := ExportScenario("standard", NewStandardSnapshot()).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := ExportScenario("standard", NewStandardSnapshot()).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(a) != string(b) {
		t.Error("exports of equal snapshots should be byte identical")
	}
}
