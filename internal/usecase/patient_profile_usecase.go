package usecase

import (
	"context"
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/converter"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/domain/repository"
	"github.com/toayushh/CareConnect-sub001/internal/service"
	"github.com/toayushh/CareConnect-sub001/internal/viewmodel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientProfileUsecase interface {
	Me(ctx context.Context, userID uuid.UUID) (*dto.PatientProfileResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
	Roster(ctx context.Context, doctorID uuid.UUID) ([]dto.RosterEntryResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	appointmentRepo    repository.AppointmentRepository
	treatmentPlanRepo  repository.TreatmentPlanRepository
	auditService       service.AuditService
	snapshots          *service.SnapshotCache
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	treatmentPlanRepo repository.TreatmentPlanRepository,
	auditService service.AuditService,
	snapshots *service.SnapshotCache,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		appointmentRepo:    appointmentRepo,
		treatmentPlanRepo:  treatmentPlanRepo,
		auditService:       auditService,
		snapshots:          snapshots,
	}
}

func (u *patientProfileUsecase) Me(ctx context.Context, userID uuid.UUID) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) UpdateMe(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	old := *profile

	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		profile.DateOfBirth = dob
	}
	if req.EmergencyContact != nil {
		profile.EmergencyContact = *req.EmergencyContact
	}
	if req.InsuranceProvider != nil {
		profile.InsuranceProvider = *req.InsuranceProvider
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if req.FullName != nil {
		user, err := u.userRepo.FindByID(tx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		user.FullName = *req.FullName
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
		profile.User = *user
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, "patient_profile", userID.String(), old, profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}

// Roster groups the doctor's appointment history into one row per patient
// with visit counts and last/next visit times. Patients who only have a
// treatment plan with this doctor appear with zero visits.
func (u *patientProfileUsecase) Roster(ctx context.Context, doctorID uuid.UUID) ([]dto.RosterEntryResponse, error) {
	cacheKey := "roster:" + doctorID.String()

	var cached []dto.RosterEntryResponse
	if u.snapshots.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	db := u.db.WithContext(ctx)

	appointments, err := u.appointmentRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	records := make([]viewmodel.VisitRecord, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		records = append(records, viewmodel.VisitRecord{
			PatientID:   a.PatientID.String(),
			PatientName: a.Patient.User.FullName,
			StartTime:   a.StartTime,
			Status:      string(a.Status),
		})
	}

	roster := viewmodel.BuildRoster(records, time.Now())

	// Append plan-only patients so doctors see everyone under their care.
	planPatientIDs, err := u.treatmentPlanRepo.DistinctPatientIDsByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list plan patients: %+v", err)
		return nil, err
	}

	seen := make(map[string]bool, len(roster))
	for _, entry := range roster {
		seen[entry.PatientID] = true
	}

	var missing []uuid.UUID
	for _, id := range planPatientIDs {
		if !seen[id.String()] {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		profiles, err := u.patientProfileRepo.FindByUserIDs(db, missing)
		if err != nil {
			u.log.Warnf("Failed to load patient profiles: %+v", err)
			return nil, err
		}
		for i := range profiles {
			roster = append(roster, viewmodel.RosterEntry{
				PatientID:   profiles[i].UserID.String(),
				PatientName: profiles[i].User.FullName,
			})
		}
	}

	responses := converter.RosterToResponses(roster)
	u.snapshots.Set(ctx, cacheKey, responses)
	return responses, nil
}
