// Command simulate opens lootboxes offline and prints the observed tier distribution
// next to the configured odds.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/catalog"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/config"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/lootbox"
)

type tally struct {
	drops map[domain.Rarity]int
	empty map[domain.Rarity]int
}

func newTally() tally {
	return tally{drops: make(map[domain.Rarity]int), empty: make(map[domain.Rarity]int)}
}

func main() {
	n := flag.Int("n", 100000, "Number of lootboxes to open")
	seed := flag.Uint64("seed", 1, "Base RNG seed; each worker derives its own")
	fixture := flag.String("fixture", config.ConfigPathSampleCatalog, "Catalog fixture to draw from")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel workers")
	flag.Parse()

	if *n <= 0 || *workers <= 0 {
		log.Fatal("n and workers must be positive")
	}

	cat, err := catalog.NewFileSource(*fixture).FetchCatalog(context.Background())
	if err != nil {
		log.Fatalf("Failed to read catalog fixture: %v", err)
	}
	pool := catalog.Classify(cat.Tiers, cat.Weapons)
	table := domain.DefaultProbabilityTable()

	results, err := simulate(pool, table, *n, *workers, *seed)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	printReport(os.Stdout, table, pool, results, *n)
}

// simulate splits n draws across workers. Seeds are fixed per worker so a run is reproducible.
func simulate(pool domain.SkinPool, table domain.ProbabilityTable, n, workers int, seed uint64) (tally, error) {
	parts := make([]tally, workers)
	var g errgroup.Group

	for w := range workers {
		count := n / workers
		if w < n%workers {
			count++
		}
		rng := lootbox.NewSeededRandomSource(seed + uint64(w))
		parts[w] = newTally()
		t := parts[w]

		g.Go(func() error {
			for range count {
				if _, rarity, ok := lootbox.DrawWithTier(pool, table, rng); ok {
					t.drops[rarity]++
				} else {
					t.empty[rarity]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	total := newTally()
	for _, p := range parts {
		for r, c := range p.drops {
			total.drops[r] += c
		}
		for r, c := range p.empty {
			total.empty[r] += c
		}
	}
	return total, nil
}

func printReport(out io.Writer, table domain.ProbabilityTable, pool domain.SkinPool, t tally, n int) {
	counts := pool.Counts()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Tier\tSkins\tExpected\tObserved\tDrops\tEmpty\t")
	for _, tp := range table {
		rolled := t.drops[tp.Rarity] + t.empty[tp.Rarity]
		fmt.Fprintf(tw, "%s\t%d\t%.4f%%\t%.4f%%\t%d\t%d\t\n",
			tp.Rarity.DisplayName(),
			counts[tp.Rarity],
			tp.Probability*100,
			float64(rolled)/float64(n)*100,
			t.drops[tp.Rarity],
			t.empty[tp.Rarity])
	}
	_ = tw.Flush()
}
