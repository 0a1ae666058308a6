package joincode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	code, err := Generate()
	assert.NoError(t, err)
	assert.Len(t, code, codeLength+1)
	assert.True(t, IsValid(code))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "Valid Luhn code", code: "2377225624", valid: true},
		{name: "Invalid check digit", code: "2377225625", valid: false},
		{name: "Non-numeric", code: "not-a-code", valid: false},
		{name: "Empty", code: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.code))
		})
	}
}

func TestQRPNG(t *testing.T) {
	png, err := QRPNG("2377225624", 256)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
