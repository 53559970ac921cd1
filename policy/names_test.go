package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueResourceSuffix_Deterministic(t *testing.T) {
	a := UniqueResourceSuffix("stack1", "111111111111", "MyRole", 32)
	b := UniqueResourceSuffix("stack1", "111111111111", "MyRole", 32)
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, len(a), 32)
	assert.Equal(t, strings.ToLower(a), a)
	for _, r := range a {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestUniqueResourceSuffix_InputSensitivity(t *testing.T) {
	base := UniqueResourceSuffix("stack1", "111111111111", "MyRole", 32)
	assert.NotEqual(t, base, UniqueResourceSuffix("stack2", "111111111111", "MyRole", 32))
	assert.NotEqual(t, base, UniqueResourceSuffix("stack1", "222222222222", "MyRole", 32))
	assert.NotEqual(t, base, UniqueResourceSuffix("stack1", "111111111111", "OtherRole", 32))
}

func TestUniqueResourceSuffix_Truncation(t *testing.T) {
	short := UniqueResourceSuffix("ns", "acct", "id", 8)
	assert.Len(t, short, 8)

	full := UniqueResourceSuffix("ns", "acct", "id", 64)
	// SHA-1 yields 40 hex characters; a larger budget never pads.
	assert.Len(t, full, 40)
	assert.Equal(t, short, full[:8])
}

func TestUniqueResourceSuffix_DefaultLength(t *testing.T) {
	assert.Len(t, UniqueResourceSuffix("ns", "acct", "id", 0), 32)
	assert.Len(t, UniqueResourceSuffix("ns", "acct", "id", -1), 32)
}
