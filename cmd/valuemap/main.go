package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/warplan/internal/ai"
	"github.com/freeeve/warplan/internal/config"
	"github.com/freeeve/warplan/internal/logger"
	"github.com/freeeve/warplan/pkg/wargame"
)

type playerResult struct {
	Player  wargame.PlayerID `json:"player"`
	Attacks []rankedValue    `json:"attacks,omitempty"`
	Values  []rankedValue    `json:"values"`
}

type rankedValue struct {
	Territory wargame.TerritoryID `json:"territory"`
	Value     float64             `json:"value"`
}

func main() {
	logger.Init()
	cfg := config.Load()

	var (
		scenarioPath string
		playersCSV   string
		cantHoldCSV  string
		attackCSV    string
		checkCSV     string
		seaOnly      bool
		showAttack   bool
		top          int
		workers      int
		jsonOut      bool
	)

	flag.StringVar(&scenarioPath, "scenario", cfg.Scenario, "Scenario JSON file (empty = built-in standard map)")
	flag.StringVar(&playersCSV, "players", cfg.Players, "Players to evaluate, comma separated (empty = all)")
	flag.StringVar(&cantHoldCSV, "cant-hold", "", "Territories assumed lost after capture, comma separated")
	flag.StringVar(&attackCSV, "attack", "", "Territories already chosen for attack, comma separated")
	flag.StringVar(&checkCSV, "check", "", "Restrict valuation to these territories, comma separated")
	flag.BoolVar(&seaOnly, "sea", false, "Compute the transport-lane sea values instead")
	flag.BoolVar(&showAttack, "show-attack", false, "Also print raw attack values")
	flag.IntVar(&top, "top", 10, "Show top N territories per player (0 = all)")
	flag.IntVar(&workers, "workers", cfg.Workers, "Concurrency (parallel players)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")

	flag.Parse()

	if workers < 1 {
		workers = 1
	}

	snap, err := loadSnapshot(scenarioPath)
	if err != nil {
		log.Fatal().Err(err).Str("scenario", scenarioPath).Msg("Scenario load failed")
	}

	players := resolvePlayers(snap, playersCSV)
	if len(players) == 0 {
		log.Fatal().Msg("No players to evaluate")
	}

	cantBeHeld := parseTerritorySet(snap, cantHoldCSV)
	toAttack := parseTerritorySet(snap, attackCSV)
	toCheck := parseTerritorySet(snap, checkCSV)

	log.Info().
		Int("players", len(players)).
		Int("territories", len(snap.Board.Territories())).
		Bool("sea", seaOnly).
		Msg("Evaluating territory values")

	results := make([]*playerResult, len(players))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, p := range players {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int, player wargame.PlayerID) {
			defer wg.Done()
			defer func() { <-sem }()

			// Each player evaluates against its own copy of the position.
			own := snap.Clone()

			var values ai.ValueMap
			if seaOnly {
				values = ai.SeaTerritoryValues(own, player, cantBeHeld)
			} else {
				values = ai.TerritoryValues(own, player, cantBeHeld, toAttack, toCheck)
			}

			r := &playerResult{Player: player, Values: rankValues(values)}
			if showAttack {
				attacks := make(ai.ValueMap, len(values))
				for id := range values {
					attacks[id] = ai.AttackValue(own, player, id)
				}
				r.Attacks = rankValues(attacks)
			}
			results[idx] = r

			log.Debug().Str("player", string(player)).Int("territories", len(values)).Msg("Player evaluated")
		}(i, p)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results)
	} else {
		printSummary(results, top, seaOnly)
	}
}

func loadSnapshot(path string) (*wargame.Snapshot, error) {
	if path == "" {
		return wargame.NewStandardSnapshot(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := wargame.LoadScenario(data)
	if err != nil {
		return nil, err
	}
	return sc.Build()
}

func resolvePlayers(snap *wargame.Snapshot, csv string) []wargame.PlayerID {
	if csv == "" {
		return snap.Players()
	}
	known := make(map[wargame.PlayerID]bool)
	for _, p := range snap.Players() {
		known[p] = true
	}
	var players []wargame.PlayerID
	for _, part := range strings.Split(csv, ",") {
		p := wargame.PlayerID(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if !known[p] {
			log.Fatal().Str("player", string(p)).Msg("Unknown player")
		}
		players = append(players, p)
	}
	return players
}

func parseTerritorySet(snap *wargame.Snapshot, csv string) map[wargame.TerritoryID]bool {
	if csv == "" {
		return nil
	}
	set := make(map[wargame.TerritoryID]bool)
	for _, part := range strings.Split(csv, ",") {
		id := wargame.TerritoryID(strings.TrimSpace(part))
		if id == "" {
			continue
		}
		if snap.Board.Territory(id) == nil {
			log.Fatal().Str("territory", string(id)).Msg("Unknown territory")
		}
		set[id] = true
	}
	return set
}

// rankValues orders a value map by descending value, territory ID breaking ties.
func rankValues(values ai.ValueMap) []rankedValue {
	ranked := make([]rankedValue, 0, len(values))
	for id, v := range values {
		ranked = append(ranked, rankedValue{Territory: id, Value: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Territory < ranked[j].Territory
	})
	return ranked
}

func printSummary(results []*playerResult, top int, seaOnly bool) {
	kind := "territory"
	if seaOnly {
		kind = "sea lane"
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		fmt.Printf("\n%s -- %s values:\n", r.Player, kind)
		for i, rv := range r.Values {
			if top > 0 && i >= top {
				fmt.Printf("  ... and %d more\n", len(r.Values)-top)
				break
			}
			fmt.Printf("  %-18s %10.3f\n", rv.Territory, rv.Value)
		}
		if len(r.Attacks) > 0 {
			fmt.Printf("  attack values:\n")
			for i, rv := range r.Attacks {
				if top > 0 && i >= top {
					break
				}
				fmt.Printf("  %-18s %10.3f\n", rv.Territory, rv.Value)
			}
		}
	}
}

func printJSON(results []*playerResult) {
	out := struct {
		Results []*playerResult `json:"results"`
	}{Results: results}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
