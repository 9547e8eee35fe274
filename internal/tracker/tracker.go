package tracker

import (
	"sort"
	"strings"

	"github.com/abdalmoniem/pidcat/internal/logcat"
)

// Process is one entry of a process listing.
type Process struct {
	PID  string
	Name string
}

// Tracker maps live pids to package or process names.
type Tracker struct {
	filter Filter
	all    bool
	pids   map[string]string
}

// New creates a tracker. In all mode every line passes the ownership gate,
// but only filtered processes still produce start and end banners.
func New(filter Filter, all bool) *Tracker {
	return &Tracker{
		filter: filter,
		all:    all,
		pids:   make(map[string]string),
	}
}

// Seed adds processes from a startup snapshot. In all mode everything except
// /system binaries is kept, otherwise only processes the filter selects.
// It returns the number of entries added.
func (t *Tracker) Seed(procs []Process) int {
	added := 0
	for _, p := range procs {
		if t.all {
			if strings.HasPrefix(p.Name, "/system") {
				continue
			}
		} else if !t.filter.Match(p.Name) {
			continue
		}
		t.pids[p.PID] = p.Name
		added++
	}
	return added
}

// Start records a process start when the filter selects its package.
func (t *Tracker) Start(ev logcat.ProcessStart) bool {
	if !t.filter.Match(ev.Package) {
		return false
	}
	t.pids[ev.PID] = ev.Package
	return true
}

// End forgets a process when the filter selects it and its pid is tracked.
// Deaths of unknown pids are ignored.
func (t *Tracker) End(ev logcat.ProcessDeath) bool {
	if !t.filter.Match(ev.Package) {
		return false
	}
	if _, ok := t.pids[ev.PID]; !ok {
		return false
	}
	delete(t.pids, ev.PID)
	return true
}

// Package resolves pid to its tracked name.
func (t *Tracker) Package(pid string) (string, bool) {
	name, ok := t.pids[pid]
	return name, ok
}

// Tracked reports whether pid is in the map.
func (t *Tracker) Tracked(pid string) bool {
	_, ok := t.pids[pid]
	return ok
}

// Owns is the ownership gate for ordinary lines.
func (t *Tracker) Owns(pid string) bool {
	return t.all || t.Tracked(pid)
}

// Len returns the number of tracked pids.
func (t *Tracker) Len() int {
	return len(t.pids)
}

// PIDs returns the tracked pids in sorted order.
func (t *Tracker) PIDs() []string {
	out := make([]string, 0, len(t.pids))
	for pid := range t.pids {
		out = append(out, pid)
	}
	sort.Strings(out)
	return out
}
