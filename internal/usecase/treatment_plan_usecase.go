package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/toayushh/CareConnect-sub001/internal/converter"
	"github.com/toayushh/CareConnect-sub001/internal/delivery/dto"
	"github.com/toayushh/CareConnect-sub001/internal/domain/entity"
	"github.com/toayushh/CareConnect-sub001/internal/domain/repository"
	"github.com/toayushh/CareConnect-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TreatmentPlanUsecase interface {
	List(ctx context.Context, actorID uuid.UUID, roleID int) ([]dto.TreatmentPlanResponse, error)
	Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*dto.TreatmentPlanResponse, error)
	Update(ctx context.Context, doctorID uuid.UUID, id int, req *dto.UpdateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error)
	UpdateStatus(ctx context.Context, doctorID uuid.UUID, id int, req *dto.UpdateTreatmentPlanStatusRequest) (*dto.TreatmentPlanResponse, error)
	Delete(ctx context.Context, doctorID uuid.UUID, id int) error
}

type treatmentPlanUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	treatmentPlanRepo  repository.TreatmentPlanRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
	snapshots          *service.SnapshotCache
}

func NewTreatmentPlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	treatmentPlanRepo repository.TreatmentPlanRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
	snapshots *service.SnapshotCache,
) TreatmentPlanUsecase {
	return &treatmentPlanUsecase{
		db:                 db,
		log:                log,
		treatmentPlanRepo:  treatmentPlanRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
		snapshots:          snapshots,
	}
}

// List returns the caller's plans: patients see plans prescribed for them,
// doctors the plans they wrote.
func (u *treatmentPlanUsecase) List(ctx context.Context, actorID uuid.UUID, roleID int) ([]dto.TreatmentPlanResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		plans []entity.TreatmentPlan
		err   error
	)
	switch roleID {
	case entity.RoleIDPatient:
		plans, err = u.treatmentPlanRepo.FindByPatientID(db, actorID)
	case entity.RoleIDDoctor:
		plans, err = u.treatmentPlanRepo.FindByDoctorID(db, actorID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		u.log.Warnf("Failed to list treatment plans: %+v", err)
		return nil, err
	}

	return converter.TreatmentPlansToResponses(plans), nil
}

func (u *treatmentPlanUsecase) Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		endDate = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	plan := &entity.TreatmentPlan{
		PatientID:                patientID,
		DoctorID:                 doctorID,
		PlanName:                 req.PlanName,
		Description:              req.Description,
		Status:                   entity.TreatmentPlanStatusActive,
		StartDate:                startDate,
		EndDate:                  endDate,
		Medications:              entity.StringArray(req.Medications),
		Therapies:                entity.StringArray(req.Therapies),
		LifestyleRecommendations: entity.StringArray(req.LifestyleRecommendations),
		FollowUpSchedule:         entity.StringArray(req.FollowUpSchedule),
	}

	if err := u.treatmentPlanRepo.Create(tx, plan); err != nil {
		u.log.Warnf("Failed to create treatment plan: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionTreatmentPlanCreate, "treatment_plan", fmt.Sprint(plan.ID), plan); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshots.Invalidate(ctx, "roster:"+doctorID.String(), "dashboard:"+patientID.String())

	return u.GetByID(ctx, doctorID, entity.RoleIDDoctor, plan.ID)
}

func (u *treatmentPlanUsecase) GetByID(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*dto.TreatmentPlanResponse, error) {
	plan, err := u.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if roleID != entity.RoleIDAdmin && plan.PatientID != actorID && plan.DoctorID != actorID {
		return nil, ErrForbidden
	}
	return converter.TreatmentPlanToResponse(plan), nil
}

func (u *treatmentPlanUsecase) Update(ctx context.Context, doctorID uuid.UUID, id int, req *dto.UpdateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	plan, err := u.findOwnedPlan(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}

	old := *plan

	if req.PlanName != nil {
		plan.PlanName = *req.PlanName
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		plan.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		plan.EndDate = &endDate
	}
	if req.Medications != nil {
		plan.Medications = entity.StringArray(*req.Medications)
	}
	if req.Therapies != nil {
		plan.Therapies = entity.StringArray(*req.Therapies)
	}
	if req.LifestyleRecommendations != nil {
		plan.LifestyleRecommendations = entity.StringArray(*req.LifestyleRecommendations)
	}
	if req.FollowUpSchedule != nil {
		plan.FollowUpSchedule = entity.StringArray(*req.FollowUpSchedule)
	}
	if req.EffectivenessScore != nil {
		plan.EffectivenessScore = req.EffectivenessScore
	}
	if req.AdherencePercentage != nil {
		plan.AdherencePercentage = req.AdherencePercentage
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.treatmentPlanRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update treatment plan: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionTreatmentPlanUpdate, "treatment_plan", fmt.Sprint(id), old, plan); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshots.Invalidate(ctx, "dashboard:"+plan.PatientID.String())

	return u.GetByID(ctx, doctorID, entity.RoleIDDoctor, id)
}

func (u *treatmentPlanUsecase) UpdateStatus(ctx context.Context, doctorID uuid.UUID, id int, req *dto.UpdateTreatmentPlanStatusRequest) (*dto.TreatmentPlanResponse, error) {
	plan, err := u.findOwnedPlan(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}

	oldStatus := plan.Status
	plan.Status = entity.TreatmentPlanStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.treatmentPlanRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update treatment plan status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionTreatmentPlanUpdate, "treatment_plan", fmt.Sprint(id), string(oldStatus), req.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshots.Invalidate(ctx, "dashboard:"+plan.PatientID.String())

	return u.GetByID(ctx, doctorID, entity.RoleIDDoctor, id)
}

func (u *treatmentPlanUsecase) Delete(ctx context.Context, doctorID uuid.UUID, id int) error {
	plan, err := u.findOwnedPlan(ctx, doctorID, id)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.treatmentPlanRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete treatment plan: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrTreatmentPlanNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &doctorID, entity.AuditActionTreatmentPlanDelete, "treatment_plan", fmt.Sprint(id), plan); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.snapshots.Invalidate(ctx, "roster:"+doctorID.String(), "dashboard:"+plan.PatientID.String())

	return nil
}

func (u *treatmentPlanUsecase) findPlan(ctx context.Context, id int) (*entity.TreatmentPlan, error) {
	plan, err := u.treatmentPlanRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find treatment plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrTreatmentPlanNotFound
	}
	return plan, nil
}

// findOwnedPlan loads the plan and verifies the doctor wrote it.
func (u *treatmentPlanUsecase) findOwnedPlan(ctx context.Context, doctorID uuid.UUID, id int) (*entity.TreatmentPlan, error) {
	plan, err := u.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.DoctorID != doctorID {
		return nil, ErrForbidden
	}
	return plan, nil
}
