package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

func TestDecodeText_PlainUTF8(t *testing.T) {
	in := []byte("sku,name\nA-B-1,host\n")
	out, err := DecodeText(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeText_StripsBOM(t *testing.T) {
	out, err := DecodeText([]byte("\xEF\xBB\xBFsku,name"))
	require.NoError(t, err)
	assert.Equal(t, []byte("sku,name"), out)
}

func TestDecodeText_Big5(t *testing.T) {
	utf8Text := "品名,位置\n測試主機,台北機房\n"
	big5Text, _, err := transform.Bytes(traditionalchinese.Big5.NewEncoder(), []byte(utf8Text))
	require.NoError(t, err)

	out, err := DecodeText(big5Text)
	require.NoError(t, err)
	assert.Equal(t, utf8Text, string(out))
}

func TestDecodeText_UnknownEncoding(t *testing.T) {
	// UTF-16LE with BOM is neither valid UTF-8 nor decodable Big5
	_, err := DecodeText([]byte{0xFF, 0xFE, 0x00, 0xD8, 0x00, 0x00})
	assert.Error(t, err)
}
