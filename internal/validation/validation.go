// Package validation holds the stateless predicates used by the
// services. Predicates report invalid input as false, never as an error.
package validation

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	emailRegex = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)
	// Indian mobile numbers, with optional +91/0091/0 prefixes.
	phoneRegex = regexp.MustCompile(`^(?:(?:\+|0{0,2})91(\s*-\s*)?|0?)?[6789]\d{9}$`)
)

// IsValid reports whether value is non-blank after trimming.
func IsValid(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidString reports whether an optional field is acceptable: either
// absent (nil) or present and non-blank. Present-but-blank is rejected.
func ValidString(value *string) bool {
	return value == nil || strings.TrimSpace(*value) != ""
}

// IsValidObjectID reports whether id is a syntactically valid entity
// reference (24-character hex ObjectID).
func IsValidObjectID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// NormalizeTags splits a comma-separated tag string, trims each entry
// and drops duplicates, keeping first-seen order.
func NormalizeTags(tag string) []string {
	parts := strings.Split(tag, ",")
	seen := make(map[string]bool, len(parts))
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}
