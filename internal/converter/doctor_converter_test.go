package converter

import (
	"testing"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLanguages(t *testing.T) {
	assert.Equal(t, []string{"English", "Spanish"}, SplitLanguages("English, Spanish"))
	assert.Equal(t, []string{"English"}, SplitLanguages("English"))
	assert.Equal(t, []string{"English", "Hindi"}, SplitLanguages(" English ,, Hindi "))
	assert.Equal(t, []string{}, SplitLanguages(""))
}

func TestDoctorProfileToResponse(t *testing.T) {
	userID := uuid.New()
	profile := &entity.DoctorProfile{
		UserID:          userID,
		Specialty:       "Cardiology",
		Hospital:        "General Hospital",
		Languages:       "English, French",
		Rating:          4.7,
		ConsultationFee: 150,
		Availability:    "today",
		User:            entity.User{FullName: "Dr. Carol Mendes"},
	}

	response := DoctorProfileToResponse(profile)

	require.NotNil(t, response)
	assert.Equal(t, userID, response.UserID)
	assert.Equal(t, "Dr. Carol Mendes", response.FullName)
	assert.Equal(t, []string{"English", "French"}, response.Languages)
	assert.Equal(t, 4.7, response.Rating)
}

func TestDoctorProfileToResponseNil(t *testing.T) {
	assert.Nil(t, DoctorProfileToResponse(nil))
}
