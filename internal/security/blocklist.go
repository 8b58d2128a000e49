package security

import (
	"sort"
	"sync"
)

// Blocklist is a mutable set of client addresses denied access outright.
// Entries remember the reason they were added so the admin listing can show
// it back.
type Blocklist struct {
	mu      sync.RWMutex
	entries map[string]string
	events  *Events
}

// NewBlocklist returns an empty blocklist reporting changes through events.
func NewBlocklist(events *Events) *Blocklist {
	return &Blocklist{
		entries: make(map[string]string),
		events:  events,
	}
}

// IsBlocked reports whether ip is currently denied.
func (b *Blocklist) IsBlocked(ip string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.entries[ip]
	return ok
}

// Block adds ip to the set. Re-blocking an already blocked address updates
// the stored reason.
func (b *Blocklist) Block(ip, reason string) {
	b.mu.Lock()
	b.entries[ip] = reason
	b.mu.Unlock()

	b.events.Record(EventIPBlocked, SeverityWarning, ip, "", map[string]string{"reason": reason})
}

// Unblock removes ip from the set and reports whether it was present.
func (b *Blocklist) Unblock(ip string) bool {
	b.mu.Lock()
	_, ok := b.entries[ip]
	delete(b.entries, ip)
	b.mu.Unlock()

	if ok {
		b.events.Record(EventIPUnblocked, SeverityInfo, ip, "", nil)
	}
	return ok
}

// Entry is one blocked address together with the reason it was blocked.
type Entry struct {
	IP     string `json:"ip"`
	Reason string `json:"reason"`
}

// List returns the current entries sorted by address for stable output.
func (b *Blocklist) List() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries := make([]Entry, 0, len(b.entries))
	for ip, reason := range b.entries {
		entries = append(entries, Entry{IP: ip, Reason: reason})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].IP < entries[j].IP })

	return entries
}
