package collections

import (
	"maps"
	"slices"

	"github.com/marcodamonte/chapters/chapter"
)

// scoreboard builds the team scores the map demo walks through and returns
// the final state: Blue overwritten to 25, Yellow removed.
func scoreboard(p *chapter.Printer) map[string]int {
	scores := make(map[string]int)
	scores["Blue"] = 10
	scores["Yellow"] = 50

	p.Printf("The score for Blue is: %d\n", scores["Blue"])

	// Map iteration order is randomized; sort the keys for stable output.
	for _, key := range slices.Sorted(maps.Keys(scores)) {
		p.Printf("%s: %d\n", key, scores[key])
	}

	scores["Blue"] = 25
	p.Printf("The new score for Blue is: %d\n", scores["Blue"])

	delete(scores, "Yellow")
	if _, ok := scores["Yellow"]; !ok {
		p.Println("  Yellow removed")
	}
	return scores
}

func demoMaps(p *chapter.Printer) {
	scores := scoreboard(p)

	// A missing key yields the zero value; only comma-ok tells them apart.
	p.Printf("  scores[\"Yellow\"] = %d (zero value)\n", scores["Yellow"])
}
