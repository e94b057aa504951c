package domain

import "time"

// StaffRole enumerates back-office roles. HR is the superuser: only HR can
// revise passes manually or modify booked interview slots.
type StaffRole string

const (
	StaffRoleHR      StaffRole = "HR"
	StaffRoleManager StaffRole = "MANAGER"
)

// StaffMember is the domain model for HR and hiring-manager accounts.
// Candidates do not hold accounts; they access their pass with a per-pass token.
type StaffMember struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         StaffRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanEditBookings reports whether the role may modify booked slots.
func (s *StaffMember) CanEditBookings() bool {
	return s != nil && s.Role == StaffRoleHR
}
