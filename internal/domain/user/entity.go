package user

import "time"

// Role scopes the dashboard a user sees.
type Role string

const (
	RoleAdmin Role = "admin" // HR admin - manages records and approvals
	RoleUser  Role = "user"  // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	EmployeeID      *string
	EmployeeName    string
	Jobdesk         string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if the user holds the admin dashboard role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if the user can decide attendance records.
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
