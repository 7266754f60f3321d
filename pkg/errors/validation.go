package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxKeyLen bounds storage keys so they stay usable as file names and
// redis/mongo keys.
const maxKeyLen = 200

// ValidateKey checks a persistence key before it reaches a backend.
// Keys name a canvas slot, so they must not contain path separators,
// control characters or traversal sequences.
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "storage key cannot be empty")
	}
	if len(key) > maxKeyLen {
		return New(ErrCodeInvalidKey, "storage key too long (max %d characters)", maxKeyLen)
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "storage key contains control characters")
		}
	}
	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidKey, "storage key contains invalid characters: %q", pattern)
		}
	}
	return nil
}

// ParseSize parses a "WxH" size such as "1280x720".
// Both sides must be finite positive numbers.
func ParseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, New(ErrCodeInvalidInput, "size %q must look like WIDTHxHEIGHT", s)
	}
	w, err = strconv.ParseFloat(ws, 64)
	if err != nil || !finitePositive(w) {
		return 0, 0, New(ErrCodeInvalidInput, "invalid width in %q", s)
	}
	h, err = strconv.ParseFloat(hs, 64)
	if err != nil || !finitePositive(h) {
		return 0, 0, New(ErrCodeInvalidInput, "invalid height in %q", s)
	}
	return w, h, nil
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
