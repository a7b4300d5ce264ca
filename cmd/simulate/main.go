// Command simulate drives many independent assessment sessions in
// parallel against synthetic respondents and prints how often each
// respondent profile resolves to which state. Useful for sanity
// checking likelihood constants before touching them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"moodprobe/adapters/memstore"
	"moodprobe/app"
	"moodprobe/domain/affect"
	"moodprobe/domain/bank"
	"moodprobe/domain/catalog"
	"moodprobe/domain/core"
)

func main() {
	runs := flag.Int("runs", 200, "sessions per respondent profile")
	workers := flag.Int("workers", 8, "parallel sessions")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	cat := catalog.Default()
	b, err := bank.Default(cat)
	if err != nil {
		log.Fatalf("question bank validation failed: %v", err)
	}
	store := memstore.New()
	service := app.NewAssessmentService(cat, b, store)

	for _, target := range cat.All() {
		counts, err := simulateProfile(service, cat, target, *runs, *workers, *seed)
		if err != nil {
			log.Fatalf("simulation failed: %v", err)
		}
		printSummary(target, counts, *runs)
	}
}

// simulateProfile runs sessions for a respondent who answers as if
// sitting at the target state's canonical position, always picking the
// option whose impact lands closest to it.
func simulateProfile(service *app.AssessmentService, cat *catalog.Catalog, target *catalog.State, runs, workers int, seed int64) (map[core.StateID]int, error) {
	var mu sync.Mutex
	counts := make(map[core.StateID]int)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			resolved, err := runSession(ctx, service, target.Position, rng)
			if err != nil {
				return err
			}
			mu.Lock()
			counts[resolved]++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func runSession(ctx context.Context, service *app.AssessmentService, target affect.Position, rng *rand.Rand) (core.StateID, error) {
	sess, err := service.CreateSession(ctx, nil)
	if err != nil {
		return "", err
	}
	for {
		done, err := service.ShouldTerminate(ctx, sess.ID)
		if err != nil {
			return "", err
		}
		if done {
			break
		}
		q, err := service.NextQuestion(ctx, sess.ID)
		if err != nil {
			return "", err
		}
		if q == nil {
			break
		}
		if _, err := service.SubmitResponse(ctx, sess.ID, q.ID, pickOption(q, target, rng)); err != nil {
			return "", err
		}
	}
	profile, err := service.Resolve(ctx, sess.ID)
	if err != nil {
		return "", err
	}
	return profile.Primary.ID, nil
}

// pickOption chooses the option whose impact is nearest the target
// position, with a little noise so runs are not all identical.
func pickOption(q *bank.Question, target affect.Position, rng *rand.Rand) int {
	best := q.Options[0].Value
	bestDist := math.Inf(1)
	for _, opt := range q.Options {
		d := affect.Distance(opt.Impact, target) + rng.Float64()*0.15
		if d < bestDist {
			best, bestDist = opt.Value, d
		}
	}
	return best
}

func printSummary(target *catalog.State, counts map[core.StateID]int, runs int) {
	type row struct {
		id core.StateID
		n  int
	}
	rows := make([]row, 0, len(counts))
	for id, n := range counts {
		rows = append(rows, row{id, n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].n > rows[j].n })

	fmt.Printf("respondent %-12s ->", target.ID)
	for _, r := range rows {
		fmt.Printf(" %s %.0f%%", r.id, 100*float64(r.n)/float64(runs))
	}
	fmt.Println()
}
