package models

import "time"

// User - platform account. At least one of Email/Phone is present; both
// are unique when set.
type User struct {
	BaseModel
	Email         *string  `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone         *string  `gorm:"uniqueIndex" json:"phone,omitempty"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Name          string   `gorm:"not null" json:"name"`
	Role          UserRole `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`
	EmailVerified bool     `gorm:"default:false" json:"emailVerified"`
	PhoneVerified bool     `gorm:"default:false" json:"phoneVerified"`
	Image         string   `json:"image,omitempty"`
	Address       string   `json:"address,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	ZipCode       string   `json:"zipCode,omitempty"`

	// Relations
	Orders        []Order        `gorm:"foreignKey:UserID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:UserID" json:"-"`
	Reviews       []Review       `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
