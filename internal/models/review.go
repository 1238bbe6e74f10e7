package models

// Review - one per user+medicine. Verified is set when the reviewer has a
// delivered order containing the medicine.
type Review struct {
	BaseModel
	UserID     string `gorm:"type:uuid;not null;index:idx_review_user_medicine,unique" json:"userId"`
	MedicineID string `gorm:"type:uuid;not null;index:idx_review_user_medicine,unique" json:"medicineId"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `json:"comment,omitempty"`
	Verified   bool   `gorm:"default:false" json:"verified"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Medicine *Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}
