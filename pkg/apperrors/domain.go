package apperrors

import (
	"net/http"
)

// Factories and predefined variables for the pharmacy domain.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists - 409 for unique-constraint style conflicts.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict - generic 409.
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - 400 for operations the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - 400 for status values outside the workflow.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrAccountExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email or phone already exists",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters and contain upper, lower and digit",
	http.StatusBadRequest,
)

// --- Users ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrCannotDeleteSelf = New(
	CodeInvalidOperation,
	"user",
	"Cannot delete your own account",
	http.StatusBadRequest,
)

var ErrUserHasOrders = New(
	CodeConflict,
	"user",
	"Cannot delete user with existing orders",
	http.StatusBadRequest,
)

// --- Catalog ---

var ErrMedicineNotFound = New(
	CodeNotFound,
	"catalog",
	"Medicine not found",
	http.StatusNotFound,
)

var ErrSlugTaken = New(
	CodeAlreadyExists,
	"catalog",
	"Medicine with this slug already exists",
	http.StatusBadRequest,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"catalog",
	"Category not found",
	http.StatusNotFound,
)

var ErrCategoryExists = New(
	CodeAlreadyExists,
	"catalog",
	"Category with this name or slug already exists",
	http.StatusConflict,
)

var ErrCategoryHasMedicines = New(
	CodeConflict,
	"catalog",
	"Cannot delete category with medicines",
	http.StatusBadRequest,
)

var ErrCategoryHasChildren = New(
	CodeConflict,
	"catalog",
	"Cannot delete category with subcategories",
	http.StatusBadRequest,
)

var ErrBrandNotFound = New(
	CodeNotFound,
	"catalog",
	"Brand not found",
	http.StatusNotFound,
)

var ErrBrandExists = New(
	CodeAlreadyExists,
	"catalog",
	"Brand with this name or slug already exists",
	http.StatusConflict,
)

var ErrBrandHasMedicines = New(
	CodeConflict,
	"catalog",
	"Cannot delete brand with medicines",
	http.StatusBadRequest,
)

var ErrMedicineHasOrders = New(
	CodeConflict,
	"catalog",
	"Cannot delete medicine with existing orders. Consider deactivating instead.",
	http.StatusBadRequest,
)

// --- Orders ---

var ErrOrderNotFound = New(
	CodeNotFound,
	"order",
	"Order not found",
	http.StatusNotFound,
)

var ErrEmptyOrder = New(
	CodeValidationFailed,
	"order",
	"Order must contain at least one item",
	http.StatusBadRequest,
)

// --- Prescriptions ---

var ErrPrescriptionNotFound = New(
	CodeNotFound,
	"prescription",
	"Prescription not found",
	http.StatusNotFound,
)

var ErrPrescriptionDecided = New(
	CodeInvalidStatus,
	"prescription",
	"Only a pending prescription can be approved or rejected",
	http.StatusBadRequest,
)

// --- Reviews ---

var ErrReviewExists = New(
	CodeAlreadyExists,
	"review",
	"You have already reviewed this medicine",
	http.StatusBadRequest,
)
