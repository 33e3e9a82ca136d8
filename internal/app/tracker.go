// Package app provides the tracker service that orchestrates the absence
// mirror, the quota engine, and profile synchronization.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"presenca/internal/domain/absence"
	"presenca/internal/domain/catalog"
	"presenca/internal/domain/quota"
	"presenca/internal/domain/types"
	"presenca/pkg/logger"
)

// publishTimeout bounds the fire-and-forget profile publish.
const publishTimeout = 10 * time.Second

// Remote abstracts the attendance service consumed by the tracker.
type Remote interface {
	ListAbsences(ctx context.Context, userID string) ([]absence.Log, error)
	CreateAbsence(ctx context.Context, l absence.Log) error
	DeleteAbsence(ctx context.Context, id string) error
	Ranking(ctx context.Context) ([]types.RankingEntry, error)
	PublishProfile(ctx context.Context, p types.Profile) error
}

// Tracker holds the session context (user id, display name), the local
// absence mirror, the latest ranking snapshot, and the shared online flag.
//
// The mirror is a write-through cache: it mutates only after the remote call
// confirms, so a failed toggle leaves local state matching what the server
// actually holds. Rapid repeated toggles on the same session before a prior
// request completes are not deduplicated; the last response wins.
type Tracker struct {
	mu sync.Mutex

	userID       string
	displayName  string
	needsProfile bool

	catalog *catalog.Catalog
	remote  Remote

	mirror  []absence.Log
	ranking []types.RankingEntry
	online  bool

	publishWG sync.WaitGroup
	log       logger.Logger
}

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithLogger sets a custom logger for the tracker.
func WithLogger(log logger.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// New constructs a Tracker for the given identity, catalog, and remote.
func New(userID string, cat *catalog.Catalog, remote Remote, opts ...Option) *Tracker {
	t := &Tracker{
		userID:  userID,
		catalog: cat,
		remote:  remote,
		online:  true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logger.Named("tracker")
	}
	return t
}

// UserID returns the session's opaque user identifier.
func (t *Tracker) UserID() string {
	return t.userID
}

// DisplayName returns the resolved display name; empty until the user is
// found in the ranking snapshot or saves a profile.
func (t *Tracker) DisplayName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.displayName
}

// NeedsProfile reports whether the current identity was missing from the
// last ranking snapshot, which triggers the name-capture prompt.
func (t *Tracker) NeedsProfile() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.needsProfile
}

// Online reports the outcome of the most recent network attempt.
func (t *Tracker) Online() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.online
}

// Absences returns a copy of the local absence mirror.
func (t *Tracker) Absences() []absence.Log {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]absence.Log, len(t.mirror))
	copy(out, t.mirror)
	return out
}

// Ranking returns a copy of the latest ranking snapshot, in server order.
func (t *Tracker) Ranking() []types.RankingEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]types.RankingEntry, len(t.ranking))
	copy(out, t.ranking)
	return out
}

// IsAbsent reports whether an absence is recorded for the given session
// occurrence.
func (t *Tracker) IsAbsent(date time.Time, sessionID string) bool {
	id := absence.NewKey(t.userID, date, sessionID).String()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.indexOfLocked(id) >= 0
}

// Stats recomputes per-subject statistics from the current mirror. Pure:
// no side effects, no network.
func (t *Tracker) Stats() []quota.Stat {
	t.mu.Lock()
	defer t.mu.Unlock()
	return quota.Compute(t.catalog, t.mirror)
}

// TotalPresents returns the aggregate present-hours score.
func (t *Tracker) TotalPresents() int {
	return quota.TotalPresents(t.Stats())
}

// Refresh fetches the absence log and the ranking snapshot. Transport
// failures flip the online flag and keep prior state; they never propagate.
// On success the display name is resolved from the snapshot by user-id match.
func (t *Tracker) Refresh(ctx context.Context) {
	logs, err := t.remote.ListAbsences(ctx, t.userID)
	if err != nil {
		t.setOnline(false)
		t.log.Warn(ctx, "absence fetch failed; keeping local mirror", logger.Error(err))
		return
	}

	t.mu.Lock()
	t.mirror = logs
	t.mu.Unlock()

	ranking, err := t.remote.Ranking(ctx)
	if err != nil {
		t.setOnline(false)
		t.log.Warn(ctx, "ranking fetch failed; keeping last snapshot", logger.Error(err))
		return
	}

	t.mu.Lock()
	t.ranking = ranking
	t.online = true
	t.resolveNameLocked()
	t.mu.Unlock()

	t.publishAsync()
}

// resolveNameLocked adopts the display name from the ranking snapshot, or
// flags the identity as unknown when absent. Callers hold t.mu.
func (t *Tracker) resolveNameLocked() {
	for _, e := range t.ranking {
		if e.UserID == t.userID {
			t.displayName = e.DisplayName
			t.needsProfile = false
			return
		}
	}
	if t.displayName == "" {
		t.needsProfile = true
	}
}

// Toggle marks or unmarks an absence for a session occurrence. The returned
// bool reports the resulting state: true when the absence is now recorded.
// Remote failure leaves the mirror unchanged and surfaces the error.
func (t *Tracker) Toggle(ctx context.Context, date time.Time, sessionID string) (bool, error) {
	key := absence.NewKey(t.userID, date, sessionID)
	id := key.String()

	t.mu.Lock()
	exists := t.indexOfLocked(id) >= 0
	t.mu.Unlock()

	if exists {
		if err := t.remote.DeleteAbsence(ctx, id); err != nil {
			t.setOnline(false)
			return true, fmt.Errorf("unmark absence: %w", err)
		}
		t.mu.Lock()
		if i := t.indexOfLocked(id); i >= 0 {
			t.mirror = append(t.mirror[:i], t.mirror[i+1:]...)
		}
		t.online = true
		t.mu.Unlock()
		t.publishAsync()
		return false, nil
	}

	l := absence.NewLog(key)
	if err := t.remote.CreateAbsence(ctx, l); err != nil {
		t.setOnline(false)
		return false, fmt.Errorf("mark absence: %w", err)
	}
	t.mu.Lock()
	if t.indexOfLocked(id) < 0 {
		t.mirror = append(t.mirror, l)
	}
	t.online = true
	t.mu.Unlock()
	t.publishAsync()
	return true, nil
}

// SaveProfile validates and publishes the display name along with the
// current total, adopts it locally, then refreshes remote state.
func (t *Tracker) SaveProfile(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}

	p := types.Profile{
		UserID:        t.userID,
		DisplayName:   name,
		TotalPresents: t.TotalPresents(),
	}
	if err := t.remote.PublishProfile(ctx, p); err != nil {
		t.setOnline(false)
		return fmt.Errorf("save profile: %w", err)
	}

	t.mu.Lock()
	t.displayName = name
	t.needsProfile = false
	t.online = true
	t.mu.Unlock()

	t.Refresh(ctx)
	return nil
}

// publishAsync fires the on-change profile publish when a display name is
// known and the client is online. Fire-and-forget: callers do not await it.
func (t *Tracker) publishAsync() {
	t.mu.Lock()
	name := t.displayName
	online := t.online
	total := quota.TotalPresents(quota.Compute(t.catalog, t.mirror))
	t.mu.Unlock()

	if name == "" || !online {
		return
	}

	p := types.Profile{UserID: t.userID, DisplayName: name, TotalPresents: total}
	t.publishWG.Add(1)
	go func() {
		defer t.publishWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := t.remote.PublishProfile(ctx, p); err != nil {
			t.setOnline(false)
			t.log.Warn(ctx, "profile publish failed", logger.Error(err))
		}
	}()
}

// Flush waits for in-flight profile publishes. Call before process exit.
func (t *Tracker) Flush() {
	t.publishWG.Wait()
}

func (t *Tracker) setOnline(v bool) {
	t.mu.Lock()
	t.online = v
	t.mu.Unlock()
}

// indexOfLocked finds a mirror entry by id. Callers hold t.mu.
func (t *Tracker) indexOfLocked(id string) int {
	for i, l := range t.mirror {
		if l.ID == id {
			return i
		}
	}
	return -1
}
