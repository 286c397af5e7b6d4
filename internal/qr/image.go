package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize is the side length in pixels of generated QR images. Tokens run
// a few hundred bytes, so the code is dense and needs room to stay scannable
// on a printed pass.
const imageSize = 512

// ImagePNG renders a payload token as a PNG QR code with the highest error
// correction level.
func ImagePNG(payload string) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("empty qr payload")
	}
	png, err := qrcode.Encode(payload, qrcode.Highest, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}
	return png, nil
}
