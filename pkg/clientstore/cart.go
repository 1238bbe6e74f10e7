package clientstore

import (
	"sync"

	"pharmacare_backend/internal/models"
)

// CartItem - one line in the client-side cart. Price fields are snapshots
// of what the storefront displayed.
type CartItem struct {
	MedicineID    string   `json:"medicineId"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	Image         string   `json:"image,omitempty"`

	PrescriptionRequired bool `json:"prescriptionRequired"`
}

// CartStore holds the shopping cart on the client. Adding the same
// medicine twice merges into one line with the quantities summed.
type CartStore struct {
	mu    sync.Mutex
	Items []CartItem `json:"items"`
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem appends a line, or merges quantities when the medicine is
// already in the cart.
func (s *CartStore) AddItem(item CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Items {
		if s.Items[i].MedicineID == item.MedicineID {
			s.Items[i].Quantity += item.Quantity
			return
		}
	}
	s.Items = append(s.Items, item)
}

// UpdateQuantity sets the quantity of a line; zero or negative removes it.
// Unknown medicine ids are a no-op.
func (s *CartStore) UpdateQuantity(medicineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(medicineID)
		return
	}
	for i := range s.Items {
		if s.Items[i].MedicineID == medicineID {
			s.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops a line; absent ids are a no-op.
func (s *CartStore) RemoveItem(medicineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(medicineID)
}

func (s *CartStore) removeLocked(medicineID string) {
	for i := range s.Items {
		if s.Items[i].MedicineID == medicineID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Items = nil
}

// TotalItems sums the quantities across all lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums line totals, using the discount price where one is set.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.Items {
		price := item.Price
		if item.DiscountPrice != nil {
			price = *item.DiscountPrice
		}
		total += price * float64(item.Quantity)
	}
	return total
}

// ItemFromMedicine builds a cart line from a catalog row.
func ItemFromMedicine(m *models.Medicine, quantity int) CartItem {
	return CartItem{
		MedicineID:           m.ID,
		Name:                 m.Name,
		Slug:                 m.Slug,
		Price:                m.Price,
		DiscountPrice:        m.DiscountPrice,
		Quantity:             quantity,
		PrescriptionRequired: m.PrescriptionRequired,
	}
}
