package main

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/theflywheel/hashy"
	"github.com/theflywheel/hashy/perfecttable"
	"github.com/theflywheel/hashy/steptable"
)

func main() {
	// Team standings keyed by team name
	standings, err := steptable.New[int](
		steptable.WithRehashOnGrow(true),
		steptable.WithLogf(log.Printf),
	)
	if err != nil {
		log.Fatalf("Failed to create standings table: %v", err)
	}

	teams := []string{"Ravens", "Harriers", "Wolves", "Comets", "Falcons", "Otters", "Rovers"}
	for i, team := range teams {
		if err := standings.Set(team, i*3); err != nil {
			log.Fatalf("Failed to insert team %s: %v", team, err)
		}
	}
	fmt.Printf("Inserted %d teams, capacity %d\n", standings.Len(), standings.Capacity())

	for _, team := range []string{"Wolves", "Pirates"} {
		points, err := standings.Get(team)
		switch {
		case err == nil:
			fmt.Printf("%s => %d points\n", team, points)
		case errors.Is(err, hashy.ErrNotFound):
			fmt.Printf("%s not found\n", team)
		default:
			log.Fatalf("Failed to look up %s: %v", team, err)
		}
	}

	if err := standings.Delete("Otters"); err != nil {
		log.Fatalf("Failed to delete team: %v", err)
	}
	fmt.Printf("Otters removed, %d teams left\n", standings.Len())

	// Player statistics keyed by the closed set of statistic names
	stats := perfecttable.New[int]()
	stats.Reset(0)

	if err := stats.SetStat(perfecttable.Goals, 2); err != nil {
		log.Fatalf("Failed to update goals: %v", err)
	}
	if err := stats.Set("Assists", 1); err != nil {
		log.Fatalf("Failed to update assists: %v", err)
	}
	if err := stats.Set("Red Cards", 1); errors.Is(err, hashy.ErrInvalidKey) {
		fmt.Println("Red Cards is not a tracked statistic")
	}

	fmt.Print(stats)

	snapshot, err := stats.MarshalJSON()
	if err != nil {
		log.Fatalf("Failed to encode statistics: %v", err)
	}
	fmt.Printf("Snapshot: %s\n", snapshot)

	fmt.Println("Example completed successfully")
}
