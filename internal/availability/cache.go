// Package availability tracks per-player participation status derived from
// roster fetches. The cache is an explicitly owned store injected into the
// scoring engine; entries go stale after a fixed TTL and degrade to
// "unverified" rather than erroring.
package availability

import (
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
)

// TTL is how long roster-derived records are trusted for exclusion decisions.
const TTL = 4 * time.Hour

// Record is the latest known participation status for one player.
type Record struct {
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
	OnRoster  bool      `json:"onRoster"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot is the set of known player names for one team.
type Snapshot struct {
	Names     map[string]struct{}
	Count     int
	UpdatedAt time.Time
}

// Lookup is the availability verdict for a single player.
type Lookup struct {
	Available bool
	Verified  bool
	OnRoster  bool
}

// Cache is a process-wide availability table keyed by
// (category, team code, player name). Mutated only by roster-fetch
// completions; reads are non-blocking best-effort.
type Cache struct {
	mu        sync.RWMutex
	records   map[string]Record
	snapshots map[string]Snapshot
	now       func() time.Time
}

// NewCache constructs an empty Cache.
func NewCache() *Cache {
	return &Cache{
		records:   make(map[string]Record),
		snapshots: make(map[string]Snapshot),
		now:       time.Now,
	}
}

// RecordRoster overwrites the roster snapshot and every availability record
// for the given team. Prior records are superseded, never deleted piecemeal.
func (c *Cache) RecordRoster(category, teamCode string, entries []rosters.Entry) {
	if category == "" || teamCode == "" {
		return
	}
	now := c.now()
	names := make(map[string]struct{}, len(entries))

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		names[normalizeName(e.Name)] = struct{}{}
		c.records[recordKey(category, teamCode, e.Name)] = Record{
			Status:    e.Status,
			Detail:    e.Detail,
			OnRoster:  true,
			UpdatedAt: now,
		}
	}
	c.snapshots[snapshotKey(category, teamCode)] = Snapshot{
		Names:     names,
		Count:     len(names),
		UpdatedAt: now,
	}
}

// IsAvailable resolves one player's availability.
//
// A fresh roster snapshot that does not list the player is a hard, verified
// exclusion. A fresh record with an unavailable status excludes; an explicitly
// available status verifies. Anything else is shown but hedged.
func (c *Cache) IsAvailable(category, teamCode, name string) Lookup {
	now := c.now()

	c.mu.RLock()
	snap, hasSnap := c.snapshots[snapshotKey(category, teamCode)]
	rec, hasRec := c.records[recordKey(category, teamCode, name)]
	c.mu.RUnlock()

	if hasSnap && fresh(snap.UpdatedAt, now) {
		if _, listed := snap.Names[normalizeName(name)]; !listed {
			return Lookup{Available: false, Verified: true, OnRoster: false}
		}
	}

	if hasRec && fresh(rec.UpdatedAt, now) {
		switch {
		case unavailableStatus(rec.Status):
			return Lookup{Available: false, Verified: true, OnRoster: rec.OnRoster}
		case availableStatus(rec.Status):
			return Lookup{Available: true, Verified: true, OnRoster: rec.OnRoster}
		default:
			return Lookup{Available: true, Verified: false, OnRoster: rec.OnRoster}
		}
	}

	return Lookup{Available: true, Verified: false, OnRoster: false}
}

// FilterAvailable keeps the names whose players are currently available and
// reports whether any kept name lacked verified status.
func (c *Cache) FilterAvailable(category, teamCode string, names []string) (available []string, hasUnverified bool) {
	for _, name := range names {
		l := c.IsAvailable(category, teamCode, name)
		if !l.Available {
			continue
		}
		available = append(available, name)
		if !l.Verified {
			hasUnverified = true
		}
	}
	return available, hasUnverified
}

var unavailableStatuses = map[string]struct{}{
	"out":             {},
	"injured reserve": {},
	"injured-reserve": {},
	"ir":              {},
	"doubtful":        {},
	"suspended":       {},
	"not with team":   {},
	"not-with-team":   {},
	"pup":             {},
	"nfi":             {},
	"day-to-day":      {},
	"day to day":      {},
}

var availableStatuses = map[string]struct{}{
	"active":    {},
	"available": {},
	"healthy":   {},
	"probable":  {},
	"starting":  {},
}

func unavailableStatus(status string) bool {
	_, ok := unavailableStatuses[normalizeName(status)]
	return ok
}

func availableStatus(status string) bool {
	_, ok := availableStatuses[normalizeName(status)]
	return ok
}

func fresh(updatedAt, now time.Time) bool {
	return !updatedAt.IsZero() && now.Sub(updatedAt) <= TTL
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func recordKey(category, teamCode, name string) string {
	return category + "|" + strings.ToUpper(teamCode) + "|" + normalizeName(name)
}

func snapshotKey(category, teamCode string) string {
	return category + "|" + strings.ToUpper(teamCode)
}
