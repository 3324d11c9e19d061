package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("hello"))
	assert.True(t, IsValid("  hello  "))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("   "))
	assert.False(t, IsValid("\t\n"))
}

func TestValidString(t *testing.T) {
	assert.True(t, ValidString(nil), "absent field is allowed")

	blank := "   "
	assert.False(t, ValidString(&blank), "explicitly blank field is rejected")

	ok := "value"
	assert.True(t, ValidString(&ok))
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID("64f1c2e5a7b9d83f5c1a2b3c"))
	assert.False(t, IsValidObjectID("64f1c2e5"))
	assert.False(t, IsValidObjectID("zzzzzzzzzzzzzzzzzzzzzzzz"))
	assert.False(t, IsValidObjectID(""))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"joy@example.com", "a.b@mail.co", "user-name@sub.domain.org"}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "plain", "@example.com", "a@b", "a b@example.com"}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "09876543210", "919876543210", "6123456789"}
	for _, p := range valid {
		assert.True(t, IsValidPhone(p), p)
	}

	invalid := []string{"", "12345", "5876543210", "98765432101234", "abcdefghij"}
	for _, p := range invalid {
		assert.False(t, IsValidPhone(p), p)
	}
}

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags("a, b, a, c")
	assert.Len(t, tags, 3)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, tags)

	assert.Equal(t, []string{"science", "physics"}, NormalizeTags("science,physics"))
	assert.Equal(t, []string{"solo"}, NormalizeTags("  solo  "))
}
