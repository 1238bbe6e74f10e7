package models

import "gorm.io/datatypes"

// Category - one level of nesting via ParentID is what the storefront uses.
type Category struct {
	BaseModel
	Name        string  `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string  `gorm:"not null;uniqueIndex" json:"slug"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	ParentID    *string `gorm:"type:uuid;index" json:"parentId,omitempty"`

	Parent    *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children  []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Medicines []Medicine `gorm:"foreignKey:CategoryID" json:"-"`
}

type Brand struct {
	BaseModel
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`

	Medicines []Medicine `gorm:"foreignKey:BrandID" json:"-"`
}

// Medicine - catalog entry. Hard delete is blocked once order items exist;
// deactivation (Active=false) is the supported retirement path.
type Medicine struct {
	BaseModel
	Name                 string         `gorm:"not null" json:"name"`
	Slug                 string         `gorm:"not null;uniqueIndex" json:"slug"`
	GenericName          string         `gorm:"not null" json:"genericName"`
	Description          string         `json:"description"`
	Dosage               string         `json:"dosage"`
	Form                 string         `json:"form"`
	Strength             string         `json:"strength"`
	PackSize             string         `json:"packSize"`
	Manufacturer         string         `json:"manufacturer"`
	Price                float64        `gorm:"not null" json:"price"`
	DiscountPrice        *float64       `json:"discountPrice,omitempty"`
	Stock                int            `gorm:"default:0" json:"stock"`
	PrescriptionRequired bool           `gorm:"default:false" json:"prescriptionRequired"`
	Featured             bool           `gorm:"default:false" json:"featured"`
	Active               bool           `gorm:"default:true" json:"active"`
	CategoryID           string         `gorm:"type:uuid;not null;index" json:"categoryId"`
	BrandID              *string        `gorm:"type:uuid;index" json:"brandId,omitempty"`
	Images               datatypes.JSON `json:"images"`
	Uses                 string         `json:"uses"`
	SideEffects          string         `json:"sideEffects"`
	Warnings             string         `json:"warnings"`
	Interactions         string         `json:"interactions,omitempty"`
	Contraindications    string         `json:"contraindications,omitempty"`
	SKU                  string         `gorm:"uniqueIndex" json:"sku"`
	Barcode              string         `json:"barcode,omitempty"`

	Category   *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand      *Brand      `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Reviews    []Review    `gorm:"foreignKey:MedicineID" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:MedicineID" json:"-"`
}
