//go:build unit

package request

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Production runs gin with unknown JSON fields disallowed, so every key a
// client sends must exist on the DTO even when the server ignores it.
func TestCreateBookingRequest_AcceptsClientProductFields(t *testing.T) {
	body := []byte(`{
		"product_id": "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		"product_name": "Basic Manicure",
		"name": "Sari Dewi",
		"email": "sari@example.com",
		"phone": "081234567890",
		"address": "Jl. Melati No. 5",
		"note": "",
		"date": "2026-09-15",
		"time": "10:00",
		"price": 100000
	}`)

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var req CreateBookingRequest
	require.NoError(t, dec.Decode(&req))

	assert.Equal(t, uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427"), req.ProductID)
	assert.Equal(t, "Basic Manicure", req.ProductName)
	assert.Equal(t, int64(100000), req.Price)
}
