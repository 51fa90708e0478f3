package game

import "fmt"

// RunLogEntry is one recorded event during a simulation run.
type RunLogEntry struct {
	Frame    int
	Category string  // fire, hit, kill, spawn, damage, zone, session
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] hit     enemy            bullet hit enemy #2 (hp 50 → 25)
func (e RunLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-8s %-16s %s", e.Frame, e.Category, e.Key, e.Value)
}

// RunLog collects structured events emitted by the world step. The
// presentation adapter never reads it; the headless runner and the tests
// do. Unbounded and machine-filterable.
type RunLog struct {
	entries []RunLogEntry
	verbose bool
}

// NewRunLog creates a RunLog. If verbose is true, per-frame position and
// health entries are also recorded.
func NewRunLog(verbose bool) *RunLog {
	return &RunLog{verbose: verbose}
}

// Add records a new entry.
func (rl *RunLog) Add(frame int, category, key, value string, numVal float64) {
	if rl == nil {
		return
	}
	rl.entries = append(rl.entries, RunLogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (rl *RunLog) AddVerbose(frame int, category, key, value string, numVal float64) {
	if rl == nil || !rl.verbose {
		return
	}
	rl.Add(frame, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (rl *RunLog) Entries() []RunLogEntry {
	if rl == nil {
		return nil
	}
	return rl.entries
}

// Filter returns entries matching the given category and/or key. Pass an
// empty string to match any value for that field.
func (rl *RunLog) Filter(category, key string) []RunLogEntry {
	var out []RunLogEntry
	for _, e := range rl.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (rl *RunLog) Count(category, key string) int {
	return len(rl.Filter(category, key))
}
