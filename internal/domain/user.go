package domain

// Role is the marketplace role carried on a user account.
type Role string

// Marketplace roles
const (
	RoleRenter Role = "RENTER"
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
)

// CanManageItems reports whether the role may create, edit, and list its own
// items and see bookings against them.
func (r Role) CanManageItems() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanReview reports whether the role may author reviews.
func (r Role) CanReview() bool {
	return r == RoleRenter
}

// UserSummary is the cached profile of the authenticated user.
type UserSummary struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Role     Role    `json:"role"`
}

// DisplayName returns the full name when present, falling back to the email.
func (u UserSummary) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}
