package utils_test

import (
	"testing"

	"github.com/nmthang/shopvn-api/utils"
	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := utils.GenerateOrderCode()
		assert.Len(t, code, 10)
		assert.Regexp(t, "^[0-9A-F]+$", code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
