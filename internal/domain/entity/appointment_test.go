package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "pending", "confirmed", "completed", "cancelled"} {
		assert.True(t, ValidAppointmentStatus(s), s)
	}

	assert.False(t, ValidAppointmentStatus("booked"))
	assert.False(t, ValidAppointmentStatus(""))
	assert.False(t, ValidAppointmentStatus("Scheduled"))
}

func TestAppointmentIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	upcoming := Appointment{StartTime: now.Add(time.Hour), Status: AppointmentStatusScheduled}
	assert.True(t, upcoming.IsUpcoming(now))

	past := Appointment{StartTime: now.Add(-time.Hour), Status: AppointmentStatusScheduled}
	assert.False(t, past.IsUpcoming(now))

	cancelled := Appointment{StartTime: now.Add(time.Hour), Status: AppointmentStatusCancelled}
	assert.False(t, cancelled.IsUpcoming(now))
}

func TestAppointmentCancel(t *testing.T) {
	appointment := Appointment{Status: AppointmentStatusConfirmed}

	appointment.Cancel()

	assert.True(t, appointment.IsCancelled())
	assert.False(t, appointment.IsCompleted())
}

func TestAppointmentReschedule(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	appointment := Appointment{
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    AppointmentStatusCancelled,
	}

	newStart := start.AddDate(0, 0, 7)
	appointment.Reschedule(newStart, newStart.Add(30*time.Minute))

	assert.Equal(t, newStart, appointment.StartTime)
	assert.Equal(t, newStart.Add(30*time.Minute), appointment.EndTime)
	assert.Equal(t, AppointmentStatusScheduled, appointment.Status)
}

func TestAppointmentInvolves(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	appointment := Appointment{PatientID: patientID, DoctorID: doctorID}

	assert.True(t, appointment.Involves(patientID))
	assert.True(t, appointment.Involves(doctorID))
	assert.False(t, appointment.Involves(uuid.New()))
}
