package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")

	qrBytes, err := service.GenerateProductQR(42)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com/")

	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{"valid link", "https://shop.example.com/products/42", 42, false},
		{"local product id", "https://shop.example.com/products/1718000000000", 1718000000000, false},
		{"surrounding whitespace", "  https://shop.example.com/products/7\n", 7, false},
		{"wrong path", "https://shop.example.com/cart/42", 0, true},
		{"missing id", "https://shop.example.com/products/", 0, true},
		{"non numeric id", "https://shop.example.com/products/abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseProductQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFromConfig_Defaults(t *testing.T) {
	service := NewFromConfig(&config.Config{})

	id, err := service.ParseProductQR("http://localhost:3000/products/5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}
