package i18n

import (
	"sync"
	"time"
)

// Missing is one diagnostic record of a translation lookup that fell back.
// Records are append-only between explicit clears and never influence
// translation output.
type Missing struct {
	Key       string
	Namespace string
	Locale    string
	Time      time.Time
}

// registry collects Missing records. Safe for concurrent use.
type registry struct {
	mu      sync.Mutex
	records []Missing
}

func newRegistry() *registry {
	return &registry{}
}

func (r *registry) add(key, namespace, locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Missing{
		Key:       key,
		Namespace: namespace,
		Locale:    locale,
		Time:      time.Now(),
	})
}

func (r *registry) snapshot() []Missing {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Missing, len(r.records))
	copy(out, r.records)
	return out
}

func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

// MissingTranslations returns a snapshot of all recorded lookup misses in
// append order. The returned slice is a copy and safe to retain.
func (i *I18n) MissingTranslations() []Missing {
	return i.missing.snapshot()
}

// ClearMissingTranslations empties the diagnostic registry.
// Already-returned snapshots are unaffected.
func (i *I18n) ClearMissingTranslations() {
	i.missing.clear()
}
