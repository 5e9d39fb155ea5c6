package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tryangle/coach-controller/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print every frame result")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	os.Exit(runFixture(*fixturePath, *verbose))
}

// #endregion main

// #region run

func runFixture(path string, verbose bool) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, progress := replay.ReplayFixture(f)

	if verbose {
		for _, r := range results {
			if !r.Admitted {
				fmt.Printf("frame %4d  skipped (level=%d)\n", r.Seq, r.SkipLevel)
				continue
			}
			fmt.Printf("frame %4d  score=%.1f level=%d actions=%d\n", r.Seq, r.Score, r.SkipLevel, len(r.Actions))
			for _, a := range r.Actions {
				fmt.Printf("    [%s] %s %s mag=%.3f %s\n", a.Category, a.ReasonCode, a.Direction, a.Magnitude, a.Unit)
			}
		}
	}

	mismatches := checkExpectations(f, results)

	summary := replay.Summarize(results, progress)
	fmt.Printf("\n%s\n", f.Description)
	fmt.Printf("frames=%d admitted=%d skipped=%d final_score=%.1f\n",
		summary.TotalFrames, summary.Admitted, summary.Skipped, summary.FinalScore)
	if len(progress.Remaining) > 0 {
		fmt.Printf("remaining: %v\n", progress.Remaining)
	}
	if len(progress.Improved) > 0 {
		fmt.Printf("improved:  %v\n", progress.Improved)
	}

	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "\n%d expectation mismatch(es)\n", mismatches)
		return 1
	}
	fmt.Println("all expectations matched")
	return 0
}

// #endregion run

// #region expectations

func checkExpectations(f *replay.Fixture, results []replay.Result) int {
	bySeq := make(map[uint64]replay.Result, len(results))
	for _, r := range results {
		bySeq[r.Seq] = r
	}

	mismatches := 0
	for _, exp := range f.ExpectedResults {
		actual, ok := bySeq[exp.Seq]
		if !ok {
			fmt.Fprintf(os.Stderr, "frame %d: expected but not replayed\n", exp.Seq)
			mismatches++
			continue
		}
		if actual.Admitted != exp.Admitted {
			fmt.Fprintf(os.Stderr, "frame %d: expected admitted=%v, got %v\n", exp.Seq, exp.Admitted, actual.Admitted)
			mismatches++
			continue
		}
		if !exp.Admitted {
			continue
		}
		if len(actual.Actions) != len(exp.Actions) {
			fmt.Fprintf(os.Stderr, "frame %d: expected %d actions, got %d\n", exp.Seq, len(exp.Actions), len(actual.Actions))
			mismatches++
			continue
		}
		for i, ea := range exp.Actions {
			aa := actual.Actions[i]
			if string(aa.Category) != ea.Category || aa.ReasonCode != ea.ReasonCode || aa.Direction != ea.Direction {
				fmt.Fprintf(os.Stderr, "frame %d action %d: expected %s/%s/%s, got %s/%s/%s\n",
					exp.Seq, i, ea.Category, ea.ReasonCode, ea.Direction,
					aa.Category, aa.ReasonCode, aa.Direction)
				mismatches++
			}
		}
		if exp.Score != nil && !floatClose(actual.Score, *exp.Score) {
			fmt.Fprintf(os.Stderr, "frame %d: expected score=%.2f, got %.2f\n", exp.Seq, *exp.Score, actual.Score)
			mismatches++
		}
	}
	return mismatches
}

func floatClose(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}

// #endregion expectations
