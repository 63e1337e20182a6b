package usecase

import "errors"

// Sentinel errors shared by the usecases. Handlers map these onto HTTP
// status codes.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use RFC3339")

	ErrForbidden = errors.New("not allowed to access this resource")

	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrTreatmentPlanNotFound = errors.New("treatment plan not found")

	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrAppointmentInPast = errors.New("appointment start time must be in the future")
	ErrStatusUnchanged   = errors.New("appointment already has this status")
	ErrInvalidTimeframe  = errors.New("invalid timeframe, use week, month or quarter")
)
