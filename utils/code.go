package utils

import (
	"strings"

	"github.com/google/uuid"
)

const orderCodeLength = 10

// GenerateOrderCode returns a short upper-case code that correlates an order
// with the payment gateway. Ten hex characters out of a fresh UUID keep the
// collision chance negligible for the active order population.
func GenerateOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:orderCodeLength])
}
