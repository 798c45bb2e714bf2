package utils

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts uploaded CSV bytes to UTF-8, trying a small ordered
// list of encodings: UTF-8 with BOM, plain UTF-8, then Big5. The first
// encoding that decodes cleanly wins.
func DecodeText(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):], nil
	}
	if utf8.Valid(data) {
		return data, nil
	}

	// The decoder substitutes U+FFFD for invalid sequences instead of
	// failing, so treat any replacement rune as a failed decode.
	decoded, _, err := transform.Bytes(traditionalchinese.Big5.NewDecoder(), data)
	if err == nil && utf8.Valid(decoded) && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return decoded, nil
	}

	return nil, fmt.Errorf("unsupported text encoding: not UTF-8 or Big5")
}
