// Package catalog holds the static schedule data: subjects and their weekly
// sessions. The catalog is pure data; it carries no behavior beyond lookups.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Subject is a course with a fixed total of instructional hours.
type Subject struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	TotalHours int    `yaml:"total_hours" json:"total_hours"`
}

// Session is one weekly scheduled meeting of a subject. Weekday uses the
// English day name (time.Weekday.String()); Time is "HH:MM".
type Session struct {
	SubjectID string `yaml:"subject_id" json:"subjectId"`
	Weekday   string `yaml:"weekday" json:"weekday"`
	Time      string `yaml:"time" json:"time"`
}

// ID returns the session identifier, composed as subjectID-time.
func (s Session) ID() string {
	return s.SubjectID + "-" + s.Time
}

// Catalog bundles subjects and sessions with index lookups.
type Catalog struct {
	subjects []Subject
	sessions []Session
	byID     map[string]Subject
}

// New builds a catalog from the given subjects and sessions.
func New(subjects []Subject, sessions []Session) (*Catalog, error) {
	c := &Catalog{
		subjects: subjects,
		sessions: sessions,
		byID:     make(map[string]Subject, len(subjects)),
	}
	for _, sub := range subjects {
		if sub.ID == "" {
			return nil, fmt.Errorf("%w: subject with empty id", ErrInvalidCatalog)
		}
		if sub.TotalHours <= 0 {
			return nil, fmt.Errorf("%w: subject %s must have positive total hours", ErrInvalidCatalog, sub.ID)
		}
		if _, dup := c.byID[sub.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate subject id %s", ErrInvalidCatalog, sub.ID)
		}
		c.byID[sub.ID] = sub
	}
	for _, ses := range sessions {
		if _, ok := c.byID[ses.SubjectID]; !ok {
			return nil, fmt.Errorf("%w: session references unknown subject %s", ErrInvalidCatalog, ses.SubjectID)
		}
		if !validWeekday(ses.Weekday) {
			return nil, fmt.Errorf("%w: session %s has unknown weekday %q", ErrInvalidCatalog, ses.ID(), ses.Weekday)
		}
		if _, err := time.Parse("15:04", ses.Time); err != nil {
			return nil, fmt.Errorf("%w: session for %s has invalid time %q", ErrInvalidCatalog, ses.SubjectID, ses.Time)
		}
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultSubjects, defaultSessions)
	if err != nil {
		// The built-in tables are fixed at build time.
		panic(err)
	}
	return c
}

// catalogFile is the YAML shape accepted by Load.
type catalogFile struct {
	Subjects []Subject `yaml:"subjects"`
	Sessions []Session `yaml:"sessions"`
}

// Load reads a catalog override from a YAML file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(cf.Subjects, cf.Sessions)
}

// Subjects returns all subjects in catalog order.
func (c *Catalog) Subjects() []Subject {
	out := make([]Subject, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// Sessions returns all weekly sessions.
func (c *Catalog) Sessions() []Session {
	out := make([]Session, len(c.sessions))
	copy(out, c.sessions)
	return out
}

// SessionsOn returns the sessions scheduled for the given weekday, in
// catalog order.
func (c *Catalog) SessionsOn(day time.Weekday) []Session {
	name := day.String()
	var out []Session
	for _, s := range c.sessions {
		if s.Weekday == name {
			out = append(out, s)
		}
	}
	return out
}

// Subject looks up a subject by id.
func (c *Catalog) Subject(id string) (Subject, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func validWeekday(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return true
		}
	}
	return false
}

// The built-in schedule tables.
var defaultSubjects = []Subject{
	{ID: "76B3", Name: "Análise de Algoritmos", TotalHours: 30},
	{ID: "76B4", Name: "Fund. Realidade Virtual", TotalHours: 30},
	{ID: "76B5", Name: "Sistemas Distribuídos", TotalHours: 60},
	{ID: "D541", Name: "Administração", TotalHours: 30},
	{ID: "J964", Name: "Engenharia de Software", TotalHours: 60},
	{ID: "D36B", Name: "CC Integrada", TotalHours: 30},
	{ID: "J732", Name: "Trabalho de Curso I", TotalHours: 30},
}

var defaultSessions = []Session{
	{SubjectID: "76B3", Weekday: "Wednesday", Time: "19:10"},
	{SubjectID: "76B4", Weekday: "Wednesday", Time: "20:45"},
	{SubjectID: "76B5", Weekday: "Friday", Time: "19:10"},
	{SubjectID: "76B5", Weekday: "Friday", Time: "20:45"},
	{SubjectID: "D541", Weekday: "Tuesday", Time: "18:20"},
	{SubjectID: "J964", Weekday: "Thursday", Time: "19:10"},
	{SubjectID: "J964", Weekday: "Thursday", Time: "20:45"},
	{SubjectID: "D36B", Weekday: "Thursday", Time: "18:20"},
	{SubjectID: "J732", Weekday: "Tuesday", Time: "19:10"},
	{SubjectID: "J732", Weekday: "Tuesday", Time: "20:45"},
}
