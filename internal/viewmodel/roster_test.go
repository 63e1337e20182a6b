package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildRosterGroupsByPatient(t *testing.T) {
	now := day("2024-03-01")
	records := []VisitRecord{
		{PatientID: "1", PatientName: "Alice", StartTime: day("2024-01-01")},
		{PatientID: "1", PatientName: "Alice", StartTime: day("2024-02-01")},
	}

	roster := BuildRoster(records, now)

	require.Len(t, roster, 1)
	assert.Equal(t, "1", roster[0].PatientID)
	assert.Equal(t, 2, roster[0].VisitCount)
	assert.Equal(t, day("2024-02-01"), roster[0].LastVisit)
}

func TestBuildRosterOneEntryPerDistinctPatient(t *testing.T) {
	now := day("2024-06-01")
	records := []VisitRecord{
		{PatientID: "a", StartTime: day("2024-01-10")},
		{PatientID: "b", StartTime: day("2024-02-10")},
		{PatientID: "a", StartTime: day("2024-03-10")},
		{PatientID: "c", StartTime: day("2024-01-05")},
		{PatientID: "b", StartTime: day("2024-01-20")},
	}

	roster := BuildRoster(records, now)

	require.Len(t, roster, 3)

	total := 0
	counts := map[string]int{}
	for _, entry := range roster {
		total += entry.VisitCount
		counts[entry.PatientID] = entry.VisitCount
	}
	assert.Equal(t, len(records), total, "visit counts must conserve the source records")
	assert.Equal(t, 2, counts["a"])
	assert.Equal(t, 2, counts["b"])
	assert.Equal(t, 1, counts["c"])
}

func TestBuildRosterSortsMostRecentFirst(t *testing.T) {
	now := day("2024-06-01")
	records := []VisitRecord{
		{PatientID: "old", StartTime: day("2024-01-01")},
		{PatientID: "new", StartTime: day("2024-05-01")},
		{PatientID: "mid", StartTime: day("2024-03-01")},
	}

	roster := BuildRoster(records, now)

	require.Len(t, roster, 3)
	assert.Equal(t, "new", roster[0].PatientID)
	assert.Equal(t, "mid", roster[1].PatientID)
	assert.Equal(t, "old", roster[2].PatientID)
}

func TestBuildRosterLastVisitIsMaxStartTime(t *testing.T) {
	now := day("2024-12-01")
	records := []VisitRecord{
		{PatientID: "1", StartTime: day("2024-03-15")},
		{PatientID: "1", StartTime: day("2024-01-15")},
		{PatientID: "1", StartTime: day("2024-02-15")},
	}

	roster := BuildRoster(records, now)

	require.Len(t, roster, 1)
	assert.Equal(t, day("2024-03-15"), roster[0].LastVisit)
}

func TestBuildRosterNextVisit(t *testing.T) {
	now := day("2024-03-01")
	records := []VisitRecord{
		{PatientID: "1", StartTime: day("2024-02-01"), Status: "completed"},
		{PatientID: "1", StartTime: day("2024-04-01"), Status: "scheduled"},
		{PatientID: "1", StartTime: day("2024-03-15"), Status: "cancelled"},
		{PatientID: "1", StartTime: day("2024-05-01"), Status: "scheduled"},
	}

	roster := BuildRoster(records, now)

	require.Len(t, roster, 1)
	// Earliest future non-cancelled start wins.
	assert.Equal(t, day("2024-04-01"), roster[0].NextVisit)
}

func TestBuildRosterEmpty(t *testing.T) {
	roster := BuildRoster(nil, day("2024-01-01"))
	assert.Empty(t, roster)
}
