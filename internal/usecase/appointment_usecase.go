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

type AppointmentUsecase interface {
	List(ctx context.Context, actorID uuid.UUID, roleID int) ([]dto.AppointmentResponse, error)
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, roleID int, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, actorID uuid.UUID, roleID int, id int, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
	snapshots         *service.SnapshotCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	snapshots *service.SnapshotCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
		snapshots:         snapshots,
	}
}

// List returns the caller's appointments, most recent start time first.
// Patients see their own bookings, doctors their schedule.
func (u *appointmentUsecase) List(ctx context.Context, actorID uuid.UUID, roleID int) ([]dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	switch roleID {
	case entity.RoleIDPatient:
		appointments, err = u.appointmentRepo.FindByPatientID(db, actorID)
	case entity.RoleIDDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(db, actorID)
	default:
		return nil, ErrForbidden
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	startTime, endTime, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !startTime.After(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointmentType := req.AppointmentType
	if appointmentType == "" {
		appointmentType = entity.AppointmentTypeInPerson
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          entity.AppointmentStatusScheduled,
		AppointmentType: appointmentType,
		Reason:          req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentCreate, "appointment", fmt.Sprint(appointment.ID), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateSnapshots(ctx, appointment)

	return u.GetByID(ctx, patientID, entity.RoleIDPatient, appointment.ID)
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAuthorized(ctx, actorID, roleID, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, roleID int, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAuthorized(ctx, actorID, roleID, id)
	if err != nil {
		return nil, err
	}

	status := entity.AppointmentStatus(req.Status)
	oldStatus := appointment.Status

	// Patients may only cancel; the remaining transitions belong to staff.
	if roleID == entity.RoleIDPatient && status != entity.AppointmentStatusCancelled {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStatusUnchanged
	}

	if req.Notes != "" {
		appointment.Notes = req.Notes
		appointment.Status = status
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment notes: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentStatus, "appointment", fmt.Sprint(id), string(oldStatus), req.Status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateSnapshots(ctx, appointment)

	return u.GetByID(ctx, actorID, roleID, id)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAuthorized(ctx, actorID, roleID, id)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStatusUnchanged
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", fmt.Sprint(id), string(appointment.Status), string(entity.AppointmentStatusCancelled)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateSnapshots(ctx, appointment)

	return u.GetByID(ctx, actorID, roleID, id)
}

// Reschedule moves the appointment to a new slot and resets its status to
// scheduled so the doctor confirms it again.
func (u *appointmentUsecase) Reschedule(ctx context.Context, actorID uuid.UUID, roleID int, id int, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAuthorized(ctx, actorID, roleID, id)
	if err != nil {
		return nil, err
	}

	startTime, endTime, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if !startTime.After(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	oldStart := appointment.StartTime
	appointment.Reschedule(startTime, endTime)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to reschedule appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentReschedule, "appointment", fmt.Sprint(id), oldStart, startTime); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateSnapshots(ctx, appointment)

	return u.GetByID(ctx, actorID, roleID, id)
}

// findAuthorized loads the appointment and checks the actor may see it.
// Admins see everything, participants their own.
func (u *appointmentUsecase) findAuthorized(ctx context.Context, actorID uuid.UUID, roleID int, id int) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if roleID != entity.RoleIDAdmin && !appointment.Involves(actorID) {
		return nil, ErrForbidden
	}
	return appointment, nil
}

func (u *appointmentUsecase) invalidateSnapshots(ctx context.Context, appointment *entity.Appointment) {
	u.snapshots.Invalidate(ctx,
		"roster:"+appointment.DoctorID.String(),
		"dashboard:"+appointment.PatientID.String(),
	)
}

func parseTimeRange(start, end string) (time.Time, time.Time, error) {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeFormat
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeFormat
	}
	if !endTime.After(startTime) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return startTime, endTime, nil
}
