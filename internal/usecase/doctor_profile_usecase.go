package usecase

import (
	"context"

	"github.com/toayushh/CareConnect-sub001/internal/converter"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/domain/repository"
	"github.com/toayushh/CareConnect-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultDirectoryLimit      = 50
	defaultRecommendationLimit = 5
)

type DoctorProfileUsecase interface {
	Directory(ctx context.Context, query *dto.DoctorDirectoryQuery) ([]dto.DoctorProfileResponse, error)
	Recommendations(ctx context.Context, query *dto.DoctorDirectoryQuery) ([]dto.DoctorProfileResponse, error)
	GetByID(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorProfileResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorProfileResponse, error)
	Update(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	Delete(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) error
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

// Directory lists active doctors matching the filters.
func (u *doctorProfileUsecase) Directory(ctx context.Context, query *dto.DoctorDirectoryQuery) ([]dto.DoctorProfileResponse, error) {
	limit := query.Limit
	if limit <= 0 || limit > defaultDirectoryLimit {
		limit = defaultDirectoryLimit
	}

	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx), directoryFilter(query), limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorProfilesToResponses(profiles), nil
}

// Recommendations returns the highest rated doctors matching the filters.
func (u *doctorProfileUsecase) Recommendations(ctx context.Context, query *dto.DoctorDirectoryQuery) ([]dto.DoctorProfileResponse, error) {
	limit := query.Limit
	if limit <= 0 || limit > defaultDirectoryLimit {
		limit = defaultRecommendationLimit
	}

	profiles, err := u.doctorProfileRepo.FindTopRated(u.db.WithContext(ctx), directoryFilter(query), limit)
	if err != nil {
		u.log.Warnf("Failed to list recommended doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorProfilesToResponses(profiles), nil
}

func (u *doctorProfileUsecase) GetByID(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) Me(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	return u.GetByID(ctx, userID)
}

// UpdateMe updates the caller's own profile. The weekly schedule string is
// stored exactly as sent; the schedule editor owns its format.
func (u *doctorProfileUsecase) UpdateMe(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	return u.applyUpdate(ctx, userID, userID, entity.AuditActionProfileUpdate, req)
}

// Create provisions a doctor account, admin only.
func (u *doctorProfileUsecase) Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDDoctor,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:          user.ID,
		Specialty:       req.Specialty,
		Hospital:        req.Hospital,
		Languages:       req.Languages,
		Bio:             req.Bio,
		ConsultationFee: req.ConsultationFee,
		Availability:    req.Availability,
	}

	if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionDoctorCreate, "doctor_profile", user.ID.String(), profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.DoctorProfileToResponse(profile), nil
}

// Update edits any doctor's profile, admin only.
func (u *doctorProfileUsecase) Update(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	return u.applyUpdate(ctx, adminID, doctorID, entity.AuditActionDoctorUpdate, req)
}

// Delete removes the doctor profile and deactivates the login, admin only.
func (u *doctorProfileUsecase) Delete(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if err := u.doctorProfileRepo.Delete(tx, doctorID); err != nil {
		u.log.Warnf("Failed to delete doctor profile: %+v", err)
		return err
	}

	user, err := u.userRepo.FindByID(tx, doctorID)
	if err != nil {
		return err
	}
	if user != nil {
		user.IsActive = false
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to deactivate user: %+v", err)
			return err
		}
	}

	if err := u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionDoctorDelete, "doctor_profile", doctorID.String(), profile); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorProfileUsecase) applyUpdate(ctx context.Context, actorID, doctorID uuid.UUID, action string, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	old := *profile

	if req.Specialty != nil {
		profile.Specialty = *req.Specialty
	}
	if req.Hospital != nil {
		profile.Hospital = *req.Hospital
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = *req.ConsultationFee
	}
	if req.Availability != nil {
		profile.Availability = *req.Availability
	}
	if req.WeeklySchedule != nil {
		profile.WeeklySchedule = *req.WeeklySchedule
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if req.FullName != nil {
		user, err := u.userRepo.FindByID(tx, doctorID)
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

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "doctor_profile", doctorID.String(), old, profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func directoryFilter(query *dto.DoctorDirectoryQuery) *entity.DoctorFilter {
	if query == nil {
		return nil
	}
	return &entity.DoctorFilter{
		Specialty:    query.Specialty,
		Language:     query.Language,
		Availability: query.Availability,
	}
}
