package entity

// DoctorFilter is a domain-level filter for querying the doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty    string // ILIKE match
	Language     string // ILIKE match against the comma-separated languages column
	Availability string // exact match: today/this-week/next-week
}
