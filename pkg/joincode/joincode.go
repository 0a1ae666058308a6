package joincode

import (
	"fmt"

	"github.com/ShiraazMoollatjie/goluhn"
	qrcode "github.com/skip2/go-qrcode"
)

const codeLength = 10

// Generate returns a random numeric join code with a Luhn check digit, so a
// mistyped code is rejected before a database lookup.
func Generate() (string, error) {
	code := goluhn.Generate(codeLength)
	return code, nil
}

func IsValid(code string) bool {
	return goluhn.Validate(code) == nil
}

// QRPNG renders the join code as a PNG of the given size in pixels.
func QRPNG(code string, size int) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("can't encode join code qr: %w", err)
	}
	return png, nil
}
