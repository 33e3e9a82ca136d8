// Package absence defines absence records and their derived identity.
//
// A record's identity is the composite (user, date, subject, time) key. Its
// canonical string form doubles as the storage id, so marking the same
// session occurrence twice collides on identity instead of needing a lookup.
package absence

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// Key identifies one session occurrence for one user.
//
// Canonical serialization: userID_YYYY-MM-DD_subjectID-HH:MM. The date and
// session are always the last two underscore-separated segments, which keeps
// user ids containing underscores (user_abc123) unambiguous.
type Key struct {
	UserID    string
	Date      string // YYYY-MM-DD
	SubjectID string
	Time      string // HH:MM
}

// NewKey derives a key from a user, a calendar date and a session id.
func NewKey(userID string, date time.Time, sessionID string) Key {
	return Key{
		UserID:    userID,
		Date:      date.Format(DateLayout),
		SubjectID: SubjectFromSession(sessionID),
		Time:      timeFromSession(sessionID),
	}
}

// String returns the canonical serialization of the key.
func (k Key) String() string {
	return k.UserID + "_" + k.Date + "_" + k.SubjectID + "-" + k.Time
}

// SessionID returns the session identifier part, subjectID-time.
func (k Key) SessionID() string {
	return k.SubjectID + "-" + k.Time
}

// ParseID recovers a Key from its canonical string form.
func ParseID(id string) (Key, error) {
	i := strings.LastIndex(id, "_")
	if i <= 0 {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	j := strings.LastIndex(id[:i], "_")
	if j <= 0 {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	userID, date, session := id[:j], id[j+1:i], id[i+1:]
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Key{}, fmt.Errorf("%w: bad date in %q", ErrMalformedID, id)
	}
	if !strings.Contains(session, "-") {
		return Key{}, fmt.Errorf("%w: bad session in %q", ErrMalformedID, id)
	}
	return Key{
		UserID:    userID,
		Date:      date,
		SubjectID: SubjectFromSession(session),
		Time:      timeFromSession(session),
	}, nil
}

// SubjectFromSession recovers the subject id from a subjectID-time session id.
func SubjectFromSession(sessionID string) string {
	if i := strings.Index(sessionID, "-"); i >= 0 {
		return sessionID[:i]
	}
	return sessionID
}

func timeFromSession(sessionID string) string {
	if i := strings.Index(sessionID, "-"); i >= 0 {
		return sessionID[i+1:]
	}
	return ""
}

// Log is one recorded absence from a specific session occurrence. This is the
// wire and storage shape shared with the remote service.
type Log struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	SubjectID string `json:"subject_id"`
	Date      string `json:"date"`
}

// NewLog builds a Log from a key; the id is the key's canonical form.
func NewLog(k Key) Log {
	return Log{
		ID:        k.String(),
		UserID:    k.UserID,
		SubjectID: k.SubjectID,
		Date:      k.Date,
	}
}
