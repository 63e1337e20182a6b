package repository

import (
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorSince(db *gorm.DB, doctorID uuid.UUID, since time.Time) ([]entity.Appointment, error)
	DistinctPatientIDsByDoctor(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error)
}
