package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LeaderboardPath is where the ranked score list lives.
const LeaderboardPath = "leaderboard.json"

// maxEntries caps the leaderboard at the top scores.
const maxEntries = 10

// Entry is one immutable leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Coins int    `json:"coins"`
	Score int    `json:"score"`
}

// Leaderboard is an append-only ranked score list, capped at the top ten
// by score. The backing file is rewritten atomically on every insert.
type Leaderboard struct {
	path    string
	Entries []Entry
}

// LoadLeaderboard reads the leaderboard file. A missing or unparseable
// file yields an empty leaderboard; scores should never block the game.
func LoadLeaderboard(path string) *Leaderboard {
	lb := &Leaderboard{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return lb
	}
	if err := json.Unmarshal(data, &lb.Entries); err != nil {
		lb.Entries = nil
		return lb
	}
	lb.sortByScore()
	return lb
}

// Add appends a score, re-ranks, truncates to the cap, and rewrites the
// file. Ranking is descending by score; ties keep insertion order.
func (lb *Leaderboard) Add(name string, level, coins, score int) error {
	lb.Entries = append(lb.Entries, Entry{Name: name, Level: level, Coins: coins, Score: score})
	lb.sortByScore()
	if len(lb.Entries) > maxEntries {
		lb.Entries = lb.Entries[:maxEntries]
	}
	return lb.write()
}

func (lb *Leaderboard) sortByScore() {
	sort.SliceStable(lb.Entries, func(i, j int) bool {
		return lb.Entries[i].Score > lb.Entries[j].Score
	})
}

// write replaces the file atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (lb *Leaderboard) write() error {
	data, err := json.MarshalIndent(lb.Entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(lb.path)
	tmp, err := os.CreateTemp(dir, "leaderboard-*.json")
	if err != nil {
		return fmt.Errorf("creating temp leaderboard file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, lb.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing leaderboard: %w", err)
	}
	return nil
}
