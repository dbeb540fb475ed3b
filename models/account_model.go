package models

type Role string

const (
	RoleCandidate  Role = "CANDIDATE"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// Account is a fixed directory entry. Accounts are seeded at startup and are
// never created or modified through the API.
type Account struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
