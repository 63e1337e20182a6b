// Package viewmodel holds the pure derivations behind the portal dashboards:
// roster grouping, trend bucketing, histograms, streaks, correlation and
// health scores. Everything here is a stateless function over records already
// loaded into memory so the usecases stay thin and the math stays testable.
package viewmodel

import (
	"sort"
	"time"
)

// VisitRecord is the minimal appointment shape the roster derivation needs.
type VisitRecord struct {
	PatientID   string
	PatientName string
	StartTime   time.Time
	Status      string
}

// RosterEntry is one aggregate row per distinct patient.
type RosterEntry struct {
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	VisitCount  int       `json:"visit_count"`
	LastVisit   time.Time `json:"last_visit"`
	NextVisit   time.Time `json:"next_visit"`
}

// BuildRoster groups visit records by patient id: exactly one entry per
// distinct id, VisitCount equal to the number of source records sharing that
// id, LastVisit the maximum start time. NextVisit is the earliest future
// non-cancelled start, zero when none exists. Entries are sorted most recent
// visit first.
func BuildRoster(records []VisitRecord, now time.Time) []RosterEntry {
	byPatient := make(map[string]*RosterEntry)
	order := make([]string, 0)

	for _, rec := range records {
		entry, ok := byPatient[rec.PatientID]
		if !ok {
			entry = &RosterEntry{
				PatientID:   rec.PatientID,
				PatientName: rec.PatientName,
			}
			byPatient[rec.PatientID] = entry
			order = append(order, rec.PatientID)
		}

		entry.VisitCount++
		if rec.StartTime.After(entry.LastVisit) {
			entry.LastVisit = rec.StartTime
			if rec.PatientName != "" {
				entry.PatientName = rec.PatientName
			}
		}
		if rec.StartTime.After(now) && rec.Status != "cancelled" {
			if entry.NextVisit.IsZero() || rec.StartTime.Before(entry.NextVisit) {
				entry.NextVisit = rec.StartTime
			}
		}
	}

	roster := make([]RosterEntry, 0, len(order))
	for _, id := range order {
		roster = append(roster, *byPatient[id])
	}

	// Most recent visit wins the top of the list.
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].LastVisit.After(roster[j].LastVisit)
	})

	return roster
}
