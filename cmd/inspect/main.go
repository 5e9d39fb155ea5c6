package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tryangle/coach-controller/internal/history"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to coach.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	frames := flag.Int("frames", 200, "max frames to show in detail mode")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/coach.db [--last N] [--session id] [--frames N] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		if err := runDetailMode(store, *sessionID, *frames, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID  string  `json:"session_id"`
	StartedAt  string  `json:"started_at"`
	EndedAt    string  `json:"ended_at,omitempty"`
	Frames     int64   `json:"frames"`
	FinalScore float64 `json:"final_score"`
	Open       bool    `json:"open"`
}

func runListMode(store *history.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	rows := make([]listRow, len(sessions))
	for i, s := range sessions {
		lr := listRow{
			SessionID:  s.SessionID,
			StartedAt:  s.StartedAt.Format("2006-01-02T15:04:05Z"),
			Frames:     s.Frames,
			FinalScore: s.FinalScore,
			Open:       !s.Ended,
		}
		if s.Ended {
			lr.EndedAt = s.EndedAt.Format("2006-01-02T15:04:05Z")
		}
		rows[i] = lr
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-38s %-22s %7s %7s %s\n", "SESSION", "STARTED", "FRAMES", "SCORE", "STATE")
	for _, r := range rows {
		state := "ended"
		if r.Open {
			state = "open"
		}
		fmt.Printf("%-38s %-22s %7d %7.1f %s\n", r.SessionID, r.StartedAt, r.Frames, r.FinalScore, state)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOut struct {
	Session history.SessionRecord `json:"session"`
	Frames  []frameRow            `json:"frames"`
}

type frameRow struct {
	Seq       uint64   `json:"seq"`
	Score     float64  `json:"score"`
	ElapsedMS float64  `json:"elapsed_ms"`
	Actions   []string `json:"actions"`
}

func runDetailMode(store *history.Store, sessionID string, maxFrames int, jsonOut bool) error {
	sess, err := store.GetSession(sessionID)
	if err != nil {
		return err
	}
	frames, err := store.ListFrames(sessionID, maxFrames)
	if err != nil {
		return err
	}

	rows := make([]frameRow, len(frames))
	for i, fr := range frames {
		actions := make([]string, len(fr.Actions))
		for j, a := range fr.Actions {
			actions[j] = fmt.Sprintf("%s:%s:%s", a.Category, a.ReasonCode, a.Direction)
		}
		rows[i] = frameRow{
			Seq:       fr.Seq,
			Score:     fr.Score,
			ElapsedMS: float64(fr.Elapsed.Microseconds()) / 1000,
			Actions:   actions,
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detailOut{Session: sess, Frames: rows})
	}

	fmt.Printf("session %s\n", sess.SessionID)
	fmt.Printf("  started: %s\n", sess.StartedAt.Format("2006-01-02T15:04:05Z"))
	if sess.Ended {
		fmt.Printf("  ended:   %s (final score %.1f)\n", sess.EndedAt.Format("2006-01-02T15:04:05Z"), sess.FinalScore)
	} else {
		fmt.Println("  ended:   still open")
	}
	fmt.Printf("  frames:  %d\n\n", sess.Frames)

	fmt.Printf("%6s %7s %10s  %s\n", "SEQ", "SCORE", "ELAPSED", "ACTIONS")
	for _, r := range rows {
		fmt.Printf("%6d %7.1f %8.2fms  ", r.Seq, r.Score, r.ElapsedMS)
		if len(r.Actions) == 0 {
			fmt.Println("-")
			continue
		}
		for j, a := range r.Actions {
			if j > 0 {
				fmt.Print(", ")
			}
			fmt.Print(a)
		}
		fmt.Println()
	}
	return nil
}

// #endregion detail-mode
