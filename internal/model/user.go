package model

// UserStatus is the activation state of a user account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a platform account (admin, manager or candidate).
// Password is plain text in the seed catalog and a bcrypt hash once the user is registered.
type User struct {
	ID        int        `json:"id" yaml:"id"`
	FirstName string     `json:"first_name" yaml:"first_name"`
	LastName  string     `json:"last_name" yaml:"last_name"`
	Email     string     `json:"email" yaml:"email"`
	Password  string     `json:"-" yaml:"password"`
	Role      Role       `json:"role" yaml:"role"`
	Status    UserStatus `json:"status" yaml:"status"`
	ManagerID *int       `json:"manager_id,omitempty" yaml:"manager_id"`
	MobileNo  string     `json:"mobile_no" yaml:"mobile_no"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is returned after a successful sign-in.
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   int    `json:"user_id"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	Role      Role   `json:"role" binding:"required,oneof=Admin Manager Candidate"`
	ManagerID *int   `json:"manager_id" binding:"omitempty,min=1"`
	MobileNo  string `json:"mobile_no" binding:"omitempty,numeric,min=7,max=15"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=128"`
	Role      *Role   `json:"role" binding:"omitempty,oneof=Admin Manager Candidate"`
	ManagerID *int    `json:"manager_id" binding:"omitempty,min=1"`
	MobileNo  *string `json:"mobile_no" binding:"omitempty,numeric,min=7,max=15"`
}
