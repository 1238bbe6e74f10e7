package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Slugify derives a URL-safe identifier from a display name: lowercase,
// runs of anything outside ASCII [a-z0-9] collapse into a single hyphen,
// leading and trailing hyphens are trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false

	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

const randAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randAlphabet))))
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back
			// to a time-derived byte rather than returning an error for a
			// cosmetic identifier.
			b[i] = randAlphabet[time.Now().UnixNano()%int64(len(randAlphabet))]
			continue
		}
		b[i] = randAlphabet[idx.Int64()]
	}
	return string(b)
}

// GenerateSKU builds a stock-keeping unit when the admin did not supply one.
func GenerateSKU() string {
	return fmt.Sprintf("MED-%d-%s", time.Now().UnixMilli(), randomSuffix(9))
}

// GenerateOrderNumber builds a human-readable order reference.
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), randomSuffix(6))
}
