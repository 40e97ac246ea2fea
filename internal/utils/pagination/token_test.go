package pagination_test

import (
	"testing"
	"time"

	"github.com/SscSPs/procurement_backoffice_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	orderDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 15, 9, 30, 12, 345678000, time.UTC)

	token := pagination.EncodeToken(orderDate, createdAt)
	require.NotEmpty(t, token)

	gotDate, gotCreated, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, orderDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	// Valid base64, but the payload has no separator.
	_, _, err := pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	// base64("garbage|alsogarbage")
	_, _, err := pagination.DecodeToken("Z2FyYmFnZXxhbHNvZ2FyYmFnZQ==")
	assert.Error(t, err)
}
