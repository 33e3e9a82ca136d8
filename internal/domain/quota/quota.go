// Package quota derives per-subject attendance statistics from the absence
// mirror and the schedule catalog. Computation is pure: publishing the
// resulting totals is the caller's concern.
package quota

import (
	"math"

	"presenca/internal/domain/absence"
	"presenca/internal/domain/catalog"
)

const (
	// allowedShare is the fixed attendance-limit policy: a quarter of the
	// subject's total hours may be missed.
	allowedShare = 0.25

	// dangerThresholdPercent flags subjects once this much of the quota is
	// used up.
	dangerThresholdPercent = 80.0

	percent = 100.0
)

// Stat is the derived attendance state of one subject. It is recomputed on
// every mutation of the absence mirror and never stored.
type Stat struct {
	catalog.Subject

	// Absences counts recorded absence hours for the subject. Each log entry
	// counts as one hour regardless of session duration.
	Absences int

	// Presents is TotalHours minus Absences.
	Presents int

	// AbsencePercent is Absences over TotalHours, in percent, one decimal.
	AbsencePercent float64

	// MaxHoursAllowed is the absence quota: TotalHours times the fixed share.
	MaxHoursAllowed float64

	// RemainingAllowance is the unused part of the quota, never negative.
	RemainingAllowance float64
}

// QuotaUsedPercent reports how much of the absence quota is used, in percent
// with one decimal. This drives the danger display.
func (s Stat) QuotaUsedPercent() float64 {
	if s.MaxHoursAllowed == 0 {
		return 0
	}
	return round1(float64(s.Absences) / s.MaxHoursAllowed * percent)
}

// Danger reports whether the subject crossed the warning threshold.
func (s Stat) Danger() bool {
	return s.QuotaUsedPercent() >= dangerThresholdPercent
}

// Compute derives a Stat for every subject, in catalog order, from the full
// current absence mirror.
func Compute(c *catalog.Catalog, logs []absence.Log) []Stat {
	counts := make(map[string]int)
	for _, l := range logs {
		counts[l.SubjectID]++
	}

	subjects := c.Subjects()
	stats := make([]Stat, len(subjects))
	for i, sub := range subjects {
		absences := counts[sub.ID]
		maxAllowed := float64(sub.TotalHours) * allowedShare
		stats[i] = Stat{
			Subject:            sub,
			Absences:           absences,
			Presents:           sub.TotalHours - absences,
			AbsencePercent:     round1(float64(absences) / float64(sub.TotalHours) * percent),
			MaxHoursAllowed:    maxAllowed,
			RemainingAllowance: math.Max(0, maxAllowed-float64(absences)),
		}
	}
	return stats
}

// TotalPresents sums present hours across all subjects. This is the score
// published to the shared leaderboard.
func TotalPresents(stats []Stat) int {
	total := 0
	for _, s := range stats {
		total += s.Presents
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
