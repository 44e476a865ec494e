// Package report renders battle results for humans.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"arena/internal/combat"
)

// DisplayName turns a roster name like "timber_a" into "Timber A".
func DisplayName(tag language.Tag, name string) string {
	return cases.Title(tag).String(strings.ReplaceAll(name, "_", " "))
}

// WriteBattle prints the outcome of a single battle.
func WriteBattle(w io.Writer, tag language.Tag, res combat.Result, fighters []combat.Snapshot) error {
	p := message.NewPrinter(tag)
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = p.Fprintf(w, format, args...)
		}
	}

	switch {
	case res.Stalemate:
		printf("Stalemate after %d turns\n", res.Turns)
	case res.TurnLimitHit:
		printf("Turn limit reached after %d turns\n", res.Turns)
	case res.Winner != nil:
		printf("%s wins after %d turns\n", DisplayName(tag, res.Winner.Name), res.Turns)
	case len(res.Survivors) == 0:
		printf("Nobody survived %d turns\n", res.Turns)
	default:
		printf("%d fighters left standing after %d turns\n", len(res.Survivors), res.Turns)
	}
	for _, s := range fighters {
		state := "alive"
		if !s.Alive {
			state = "dead"
		}
		printf("  %-14s hp=%3d  %s\n", DisplayName(tag, s.Name), s.Health, state)
	}
	return err
}

type Standing struct {
	Name  string  `json:"name"`
	Wins  int     `json:"wins"`
	Ratio float64 `json:"ratio"`
}

type Summary struct {
	Runs       int        `json:"runs"`
	Stalemates int        `json:"stalemates"`
	TurnLimits int        `json:"turn_limits"`
	NoWinner   int        `json:"no_winner"`
	AvgTurns   float64    `json:"avg_turns"`
	Standings  []Standing `json:"standings"`
}

// Tally accumulates results from many battles over the same roster. It is
// not safe for concurrent use.
type Tally struct {
	runs, stalemates, turnLimits, noWinner int
	turns                                  int
	wins                                   map[string]int
}

func NewTally(names []string) *Tally {
	t := &Tally{wins: make(map[string]int, len(names))}
	for _, n := range names {
		t.wins[n] = 0
	}
	return t
}

// Add records one battle. names maps fighter ids of that battle to roster
// names, since every run mints fresh ids.
func (t *Tally) Add(res combat.Result, names map[combat.FighterID]string) {
	t.runs++
	t.turns += res.Turns
	if res.Stalemate {
		t.stalemates++
	}
	if res.TurnLimitHit {
		t.turnLimits++
	}
	if res.Winner == nil {
		t.noWinner++
		return
	}
	name := names[res.Winner.ID]
	if name == "" {
		name = res.Winner.Name
	}
	t.wins[name]++
}

func (t *Tally) Summary() Summary {
	s := Summary{
		Runs:       t.runs,
		Stalemates: t.stalemates,
		TurnLimits: t.turnLimits,
		NoWinner:   t.noWinner,
	}
	if t.runs > 0 {
		s.AvgTurns = float64(t.turns) / float64(t.runs)
	}
	for name, wins := range t.wins {
		st := Standing{Name: name, Wins: wins}
		if t.runs > 0 {
			st.Ratio = float64(wins) / float64(t.runs)
		}
		s.Standings = append(s.Standings, st)
	}
	sort.Slice(s.Standings, func(i, j int) bool {
		if s.Standings[i].Wins != s.Standings[j].Wins {
			return s.Standings[i].Wins > s.Standings[j].Wins
		}
		return s.Standings[i].Name < s.Standings[j].Name
	})
	return s
}

// WriteSummary prints batch standings, best first.
func WriteSummary(w io.Writer, tag language.Tag, s Summary) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%d battles, %.1f turns on average, %d without a winner (%d stalemates)\n",
		s.Runs, s.AvgTurns, s.NoWinner, s.Stalemates); err != nil {
		return err
	}
	for i, st := range s.Standings {
		if _, err := p.Fprintf(w, "%2d. %-14s %6d wins  %5.1f%%\n", i+1, DisplayName(tag, st.Name), st.Wins, st.Ratio*100); err != nil {
			return fmt.Errorf("write standings: %w", err)
		}
	}
	return nil
}
