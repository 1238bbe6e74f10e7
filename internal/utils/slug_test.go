package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paracetamol 500mg", "paracetamol-500mg"},
		{"Pain & Fever Relief", "pain-fever-relief"},
		{"  Vitamins!!  ", "vitamins"},
		{"A---B", "a-b"},
		{"UPPER case", "upper-case"},
		{"Crème 5mg", "cr-me-5mg"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestGenerateSKU(t *testing.T) {
	sku := GenerateSKU()
	assert.Regexp(t, regexp.MustCompile(`^MED-\d+-[A-Z0-9]{9}$`), sku)

	// Two calls should not collide.
	assert.NotEqual(t, sku, GenerateSKU())
}

func TestGenerateOrderNumber(t *testing.T) {
	num := GenerateOrderNumber()
	assert.True(t, strings.HasPrefix(num, "ORD-"))
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`), num)
}
