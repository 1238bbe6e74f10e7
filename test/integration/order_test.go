package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacare_backend/internal/models"
	"pharmacare_backend/test/helpers"
)

func checkoutBody(medicineID string, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"items": []map[string]interface{}{
			{"medicineId": medicineID, "quantity": quantity, "price": 9.99},
		},
		"subtotal":        9.99 * float64(quantity),
		"tax":             1.00,
		"deliveryFee":     5.00,
		"total":           9.99*float64(quantity) + 6.00,
		"deliveryAddress": "1 Main St",
		"deliveryCity":    "Springfield",
		"deliveryState":   "IL",
		"deliveryZipCode": "62704",
		"deliveryPhone":   "+15551234567",
	}
}

func TestOrderLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := ts.CreateStaffUser(t, "admin@example.com", models.UserRoleAdmin)
	customerToken, _ := ts.RegisterAndLogin(t, "buyer@example.com", "Password1")

	categoryID := createCategory(t, ts, adminToken, "Pain Relief")
	medicineID, _ := createMedicine(t, ts, adminToken, categoryID, "Paracetamol", 9.99)

	// Checkout
	resp := ts.SendRequest(t, http.MethodPost, "/api/v1/orders", checkoutBody(medicineID, 2), customerToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Order struct {
			ID          string  `json:"id"`
			OrderNumber string  `json:"orderNumber"`
			Status      string  `json:"status"`
			Total       float64 `json:"total"`
		} `json:"order"`
	}
	helpers.DecodeBody(t, resp, &created)
	assert.Equal(t, "PENDING", created.Order.Status)
	assert.NotEmpty(t, created.Order.OrderNumber)

	// Stock decremented
	var medicine models.Medicine
	require.NoError(t, ts.DB.First(&medicine, "id = ?", medicineID).Error)
	assert.Equal(t, 48, medicine.Stock)

	// Customer sees it in history
	resp = ts.SendRequest(t, http.MethodGet, "/api/v1/orders", nil, customerToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history struct {
		Orders []map[string]interface{} `json:"orders"`
	}
	helpers.DecodeBody(t, resp, &history)
	assert.Len(t, history.Orders, 1)

	// Another customer cannot read it
	otherToken, _ := ts.RegisterAndLogin(t, "other@example.com", "Password1")
	resp = ts.SendRequest(t, http.MethodGet, "/api/v1/orders/"+created.Order.ID, nil, otherToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Admin moves it to DELIVERED; deliveredAt is stamped
	resp = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/orders/"+created.Order.ID, map[string]string{
		"status": "DELIVERED",
	}, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Order struct {
			Status      string  `json:"status"`
			DeliveredAt *string `json:"deliveredAt"`
		} `json:"order"`
	}
	helpers.DecodeBody(t, resp, &updated)
	assert.Equal(t, "DELIVERED", updated.Order.Status)
	assert.NotNil(t, updated.Order.DeliveredAt)

	// Delivered order can no longer be cancelled by the customer
	resp = ts.SendRequest(t, http.MethodPost, "/api/v1/orders/"+created.Order.ID+"/cancel", nil, customerToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderCancelRestoresStock(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := ts.CreateStaffUser(t, "admin@example.com", models.UserRoleAdmin)
	customerToken, _ := ts.RegisterAndLogin(t, "buyer@example.com", "Password1")

	categoryID := createCategory(t, ts, adminToken, "Pain Relief")
	medicineID, _ := createMedicine(t, ts, adminToken, categoryID, "Ibuprofen", 9.99)

	resp := ts.SendRequest(t, http.MethodPost, "/api/v1/orders", checkoutBody(medicineID, 5), customerToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	helpers.DecodeBody(t, resp, &created)

	resp = ts.SendRequest(t, http.MethodPost, "/api/v1/orders/"+created.Order.ID+"/cancel", nil, customerToken)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var medicine models.Medicine
	require.NoError(t, ts.DB.First(&medicine, "id = ?", medicineID).Error)
	assert.Equal(t, 50, medicine.Stock)
}

func TestPrescriptionReviewFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	pharmacistToken := ts.CreateStaffUser(t, "pharmacist@example.com", models.UserRolePharmacist)
	customerToken, _ := ts.RegisterAndLogin(t, "patient@example.com", "Password1")

	// Upload
	resp := ts.SendRequest(t, http.MethodPost, "/api/v1/prescriptions", map[string]string{
		"image": "https://cdn.example.com/rx/123.jpg",
		"notes": "Monthly refill",
	}, customerToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded struct {
		Prescription struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"prescription"`
	}
	helpers.DecodeBody(t, resp, &uploaded)
	assert.Equal(t, "PENDING", uploaded.Prescription.Status)

	// Customer cannot review their own upload through the admin route
	resp = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/prescriptions/"+uploaded.Prescription.ID, map[string]string{
		"status": "APPROVED",
	}, customerToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Pharmacist approves; reviewer and time are stamped
	resp = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/prescriptions/"+uploaded.Prescription.ID, map[string]string{
		"status":     "APPROVED",
		"adminNotes": "Valid prescription",
	}, pharmacistToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviewed struct {
		Prescription struct {
			Status     string  `json:"status"`
			ApprovedBy *string `json:"approvedBy"`
			ApprovedAt *string `json:"approvedAt"`
		} `json:"prescription"`
	}
	helpers.DecodeBody(t, resp, &reviewed)
	assert.Equal(t, "APPROVED", reviewed.Prescription.Status)
	assert.NotNil(t, reviewed.Prescription.ApprovedBy)
	assert.NotNil(t, reviewed.Prescription.ApprovedAt)

	// Second decision on the same prescription is rejected
	resp = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/prescriptions/"+uploaded.Prescription.ID, map[string]string{
		"status": "REJECTED",
	}, pharmacistToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
