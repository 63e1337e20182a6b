package converter

import (
	"testing"
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/viewmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientProfileToResponse(t *testing.T) {
	userID := uuid.New()
	profile := &entity.PatientProfile{
		UserID:      userID,
		PhoneNumber: "+62-812-0000",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		User:        entity.User{FullName: "Pat Doe"},
	}

	response := PatientProfileToResponse(profile)

	require.NotNil(t, response)
	assert.Equal(t, userID.String(), response.UserID)
	assert.Equal(t, "Pat Doe", response.FullName)
	assert.Equal(t, "1990-06-15", response.DateOfBirth)
}

func TestPatientProfileToResponseZeroBirthDate(t *testing.T) {
	response := PatientProfileToResponse(&entity.PatientProfile{UserID: uuid.New()})

	require.NotNil(t, response)
	assert.Empty(t, response.DateOfBirth)
}

func TestRosterToResponses(t *testing.T) {
	last := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	next := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	roster := []viewmodel.RosterEntry{
		{PatientID: "p1", PatientName: "Pat Doe", VisitCount: 3, LastVisit: last, NextVisit: next},
		{PatientID: "p2", PatientName: "New Patient", VisitCount: 0},
	}

	responses := RosterToResponses(roster)

	require.Len(t, responses, 2)

	require.NotNil(t, responses[0].LastVisit)
	assert.Equal(t, last, *responses[0].LastVisit)
	require.NotNil(t, responses[0].NextVisit)
	assert.Equal(t, next, *responses[0].NextVisit)

	// no visits yet, both timestamps omitted
	assert.Nil(t, responses[1].LastVisit)
	assert.Nil(t, responses[1].NextVisit)
	assert.Equal(t, 0, responses[1].VisitCount)
}
