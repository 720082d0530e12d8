package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTextContent(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"yaml", []byte("version: 1\nroles: []\n"), false},
		{"json", []byte(`{"roles":[]}`), false},
		{"empty", nil, false},
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}, true},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mimeType, err := ValidateTextContent(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, IsText(mimeType))
				return
			}
			assert.NoError(t, err)
			assert.True(t, IsText(mimeType))
		})
	}
}
