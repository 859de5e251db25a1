package wargame

import (
	"reflect"
	"testing"
)

func TestIsAllied(t *testing.T) {
	s := NewStandardSnapshot()

	tests := []struct {
		name string
		a, b PlayerID
		want bool
	}{
		{"power with itself", Germany, Germany, true},
		{"same coalition", Germany, Italy, true},
		{"opposing coalitions", Germany, Britain, false},
		{"neutral with power", Neutral, Germany, false},
		{"power with neutral", France, Neutral, false},
		{"neutral with itself", Neutral, Neutral, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsAllied(tt.a, tt.b); got != tt.want {
				t.Errorf("IsAllied(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsAllied_SingletonPowers(t *testing.T) {
	// Powers outside any coalition are allied only with themselves.
	s := &Snapshot{Alliances: map[PlayerID]string{"red": "", "blue": ""}}
	if !s.IsAllied("red", "red") {
		t.Error("a power should be allied with itself")
	}
	if s.IsAllied("red", "blue") {
		t.Error("uncoalitioned powers should not be allied")
	}
}

func TestPlayersAndPotentialEnemies(t *testing.T) {
	s := NewStandardSnapshot()

	wantPlayers := []PlayerID{Britain, France, Germany, Italy}
	if got := s.Players(); !reflect.DeepEqual(got, wantPlayers) {
		t.Errorf("Players() = %v, want %v", got, wantPlayers)
	}

	wantEnemies := []PlayerID{Germany, Italy}
	if got := s.PotentialEnemies(France); !reflect.DeepEqual(got, wantEnemies) {
		t.Errorf("PotentialEnemies(france) = %v, want %v", got, wantEnemies)
	}
}

func TestLiveEnemyCapitals(t *testing.T) {
	s := NewStandardSnapshot()

	got := ids(s.LiveEnemyCapitals(Germany))
	want := []TerritoryID{"britain", "france"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LiveEnemyCapitals(germany) = %v, want %v", got, want)
	}

	// A fallen capital is no longer a live target.
	s.Owners["france"] = Germany
	got = ids(s.LiveEnemyCapitals(Germany))
	want = []TerritoryID{"britain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after fall of france: %v, want %v", got, want)
	}
}

func TestPlayerProduction(t *testing.T) {
	s := NewStandardSnapshot()

	tests := []struct {
		player PlayerID
		want   int
	}{
		{Germany, 34},
		{Italy, 11},
		{France, 20},
		{Britain, 20},
		{Neutral, 0},
	}
	for _, tt := range tests {
		if got := s.PlayerProduction(tt.player); got != tt.want {
			t.Errorf("PlayerProduction(%q) = %d, want %d", tt.player, got, tt.want)
		}
	}
}

func TestHasFactory(t *testing.T) {
	s := NewStandardSnapshot()
	if !s.HasFactory("germany") {
		t.Error("germany should have a factory")
	}
	if s.HasFactory("bavaria") {
		t.Error("bavaria should not have a factory")
	}
}

func TestEnemyUnitCount(t *testing.T) {
	s := NewStandardSnapshot()

	tests := []struct {
		id     TerritoryID
		player PlayerID
		want   int
	}{
		{"baltic-sea", Britain, 2},  // german submarines
		{"channel", Britain, 0},     // own destroyer
		{"ireland", Britain, 2},     // independent garrison counts
		{"germany", France, 7},      // factory, infantry, armor all hostile
		{"caspian-sea", Britain, 0}, // empty
	}
	for _, tt := range tests {
		if got := s.EnemyUnitCount(tt.id, tt.player); got != tt.want {
			t.Errorf("EnemyUnitCount(%s, %q) = %d, want %d", tt.id, tt.player, got, tt.want)
		}
	}
}

func TestCanalBlocked(t *testing.T) {
	s := NewStandardSnapshot()

	tests := []struct {
		name   string
		route  Route
		player PlayerID
		want   bool
	}{
		{"kiel open for its holder", Route{"north-sea", "baltic-sea"}, Germany, false},
		{"kiel open for an ally", Route{"north-sea", "baltic-sea"}, Italy, false},
		{"kiel closed to the enemy", Route{"north-sea", "baltic-sea"}, Britain, true},
		{"bosporus closed to everyone", Route{"aegean", "black-sea"}, Germany, true},
		{"gibraltar open for the allies", Route{"east-atlantic", "west-med"}, France, false},
		{"gibraltar closed to the axis", Route{"east-atlantic", "west-med"}, Italy, true},
		{"no canal on the crossing", Route{"north-sea", "channel"}, France, false},
		{"blocked crossing later in the route", Route{"channel", "north-sea", "baltic-sea"}, France, true},
		{"empty route", nil, Germany, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CanalBlocked(tt.route, tt.player); got != tt.want {
				t.Errorf("CanalBlocked(%v, %q) = %v, want %v", tt.route, tt.player, got, tt.want)
			}
		})
	}
}

func TestCanalBlocked_CaptureOpensCanal(t *testing.T) {
	s := NewStandardSnapshot()
	route := Route{"east-atlantic", "west-med"}

	if s.CanalBlocked(route, Germany) != true {
		t.Fatal("gibraltar should start closed to germany")
	}
	s.Owners["gibraltar"] = Germany
	if s.CanalBlocked(route, Germany) {
		t.Error("gibraltar should open once germany holds the rock")
	}
	if !s.CanalBlocked(route, Britain) {
		t.Error("gibraltar should close to britain after the capture")
	}
}

func TestSnapshot_Clone_Independent(t *testing.T) {
	s := NewStandardSnapshot()
	c := s.Clone()

	if c.Board != s.Board {
		t.Error("clone should share the immutable board")
	}

	// Mutate original owners; clone must be unaffected.
	s.Owners["spain"] = Germany
	if c.Owner("spain") != Neutral {
		t.Error("clone owners should be independent of original")
	}

	// Mutate clone units; original must be unaffected.
	c.Units["germany"][0] = Unit{Kind: Bomber, Owner: Britain}
	if s.Units["germany"][0].Owner == Britain {
		t.Error("original units should be independent of clone")
	}

	// Mutate clone alliances; original must be unaffected.
	c.Alliances[France] = AxisCoalition
	if s.Alliances[France] != AlliesCoalition {
		t.Error("original alliances should be independent of clone")
	}
}

func TestSnapshot_Clone_NilMaps(t *testing.T) {
	s := &Snapshot{Board: StandardBoard()}
	c := s.Clone()

	if c.Owners != nil || c.Units != nil || c.Alliances != nil {
		t.Error("clone of nil maps should stay nil")
	}
}
