package models

import "time"

// Prescription - uploaded by a customer as an image URL or base64 blob,
// reviewed by a pharmacist or admin.
type Prescription struct {
	BaseModel
	UserID     string             `gorm:"type:uuid;not null;index" json:"userId"`
	Image      string             `gorm:"not null" json:"image"`
	Status     PrescriptionStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Notes      string             `json:"notes,omitempty"`
	AdminNotes string             `json:"adminNotes,omitempty"`
	ApprovedBy *string            `gorm:"type:uuid" json:"approvedBy,omitempty"`
	ApprovedAt *time.Time         `json:"approvedAt,omitempty"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Order *Order `gorm:"foreignKey:PrescriptionID" json:"order,omitempty"`
}
