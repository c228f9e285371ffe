package domain

import "time"

// UserRole access level
type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

// LoyaltyLevel membership tier derived from loyalty points
type LoyaltyLevel string

const (
	LevelBronze LoyaltyLevel = "Bronze"
	LevelSilver LoyaltyLevel = "Silver"
	LevelGold   LoyaltyLevel = "Gold"
)

// Preferences dietary and allergy settings used for menu warnings
type Preferences struct {
	Allergies  []string `json:"allergies"`
	Dietary    []string `json:"dietary"`
	SpiceLevel string   `json:"spice_level,omitempty"`
}

// NotificationSettings which channels the member wants updates on
type NotificationSettings struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// User a registered member. The password hash never leaves the server.
type User struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	PasswordHash  string               `json:"-"`
	Avatar        string               `json:"avatar,omitempty"`
	Phone         string               `json:"phone,omitempty"`
	Address       string               `json:"address,omitempty"`
	Level         LoyaltyLevel         `json:"level"`
	Role          UserRole             `json:"role"`
	Preferences   Preferences          `json:"preferences"`
	LoyaltyPoints int                  `json:"loyalty_points"`
	Favorites     []string             `json:"favorites"`
	Notifications NotificationSettings `json:"notifications"`
	CreatedAt     time.Time            `json:"created_at"`
}

// IsAdmin reports whether the member has back-office access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest sign-up DTO
type RegisterRequest struct {
	Name        string      `json:"name" binding:"required,min=2,max=100"`
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=8,max=72"`
	Preferences Preferences `json:"preferences"`
}

// LoginRequest sign-in DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest partial profile update DTO. Nil fields are left
// unchanged; non-nil fields replace the stored value.
type UpdateProfileRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=2,max=100"`
	Avatar        *string               `json:"avatar" binding:"omitempty,url"`
	Phone         *string               `json:"phone" binding:"omitempty,phone"`
	Address       *string               `json:"address" binding:"omitempty,max=500"`
	Preferences   *Preferences          `json:"preferences"`
	Notifications *NotificationSettings `json:"notifications"`
}

// AuthResponse token plus the authenticated member
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
