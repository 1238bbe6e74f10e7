package dto

import (
	"pharmacare_backend/internal/models"
)

// --- Categories ---

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,uuid"`
}

// CategoryWithCount decorates a category with its medicine count for the
// storefront navigation.
type CategoryWithCount struct {
	models.Category
	MedicineCount int64 `json:"medicineCount"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,uuid"`
}

// --- Brands ---

type CreateBrandRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

type BrandWithCount struct {
	models.Brand
	MedicineCount int64 `json:"medicineCount"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

// --- Medicines ---

type CreateMedicineRequest struct {
	Name                 string   `json:"name" validate:"required,min=2,max=200"`
	GenericName          string   `json:"genericName" validate:"required,min=2,max=200"`
	Description          string   `json:"description,omitempty"`
	Dosage               string   `json:"dosage,omitempty"`
	Form                 string   `json:"form,omitempty"`
	Strength             string   `json:"strength,omitempty"`
	PackSize             string   `json:"packSize,omitempty"`
	Manufacturer         string   `json:"manufacturer,omitempty"`
	Price                float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice        *float64 `json:"discountPrice,omitempty" validate:"omitempty,gt=0"`
	Stock                int      `json:"stock" validate:"gte=0"`
	PrescriptionRequired bool     `json:"prescriptionRequired"`
	Featured             bool     `json:"featured"`
	Active               *bool    `json:"active,omitempty"`
	CategoryID           string   `json:"categoryId" validate:"required,uuid"`
	BrandID              *string  `json:"brandId,omitempty" validate:"omitempty,uuid"`
	Images               []string `json:"images,omitempty"`
	Uses                 string   `json:"uses,omitempty"`
	SideEffects          string   `json:"sideEffects,omitempty"`
	Warnings             string   `json:"warnings,omitempty"`
	Interactions         string   `json:"interactions,omitempty"`
	Contraindications    string   `json:"contraindications,omitempty"`
	SKU                  string   `json:"sku,omitempty"`
	Barcode              string   `json:"barcode,omitempty"`
}

type UpdateMedicineRequest struct {
	Name                 *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	GenericName          *string  `json:"genericName,omitempty" validate:"omitempty,min=2,max=200"`
	Description          *string  `json:"description,omitempty"`
	Dosage               *string  `json:"dosage,omitempty"`
	Form                 *string  `json:"form,omitempty"`
	Strength             *string  `json:"strength,omitempty"`
	PackSize             *string  `json:"packSize,omitempty"`
	Manufacturer         *string  `json:"manufacturer,omitempty"`
	Price                *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	DiscountPrice        *float64 `json:"discountPrice,omitempty" validate:"omitempty,gt=0"`
	Stock                *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	PrescriptionRequired *bool    `json:"prescriptionRequired,omitempty"`
	Featured             *bool    `json:"featured,omitempty"`
	Active               *bool    `json:"active,omitempty"`
	CategoryID           *string  `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	BrandID              *string  `json:"brandId,omitempty" validate:"omitempty,uuid"`
	Images               []string `json:"images,omitempty"`
	Uses                 *string  `json:"uses,omitempty"`
	SideEffects          *string  `json:"sideEffects,omitempty"`
	Warnings             *string  `json:"warnings,omitempty"`
	Interactions         *string  `json:"interactions,omitempty"`
	Contraindications    *string  `json:"contraindications,omitempty"`
	Barcode              *string  `json:"barcode,omitempty"`
}

// MedicineListQuery - query-string parameters of the public catalog listing.
type MedicineListQuery struct {
	Search       string   `form:"query"`
	Category     string   `form:"category"`
	Brand        string   `form:"brand"`
	Prescription *bool    `form:"prescriptionRequired"`
	MinPrice     *float64 `form:"minPrice"`
	MaxPrice     *float64 `form:"maxPrice"`
	Featured     *bool    `form:"featured"`
	SortBy       string   `form:"sortBy" validate:"omitempty,oneof=price name createdAt"`
	SortOrder    string   `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page         int      `form:"page"`
	Limit        int      `form:"limit"`
}

// MedicineWithRating decorates a catalog row with its review aggregate.
type MedicineWithRating struct {
	models.Medicine
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

type MedicineListResponse struct {
	Medicines  []MedicineWithRating `json:"medicines"`
	Pagination Pagination           `json:"pagination"`
}

// MedicineDetailResponse - storefront detail view.
type MedicineDetailResponse struct {
	*models.Medicine
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

// AdminMedicineListQuery has no active-only constraint so the back
// office lists retired rows too.
type AdminMedicineListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Active   *bool  `form:"active"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}
