package sourcemap

import (
	"fmt"
	"strings"
)

const b64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ renders value as base64 VLQ: the sign moves into the low bit
// (odd = negative), then 5-bit groups low-to-high with a continuation bit.
func encodeVLQ(value int) string {
	if value < 0 {
		value = (-value << 1) + 1
	} else {
		value <<= 1
	}

	var sb strings.Builder
	for {
		digit := value & 31
		value >>= 5
		if value > 0 {
			digit |= 32
		}
		sb.WriteByte(b64Digit(digit))
		if value == 0 {
			break
		}
	}
	return sb.String()
}

func b64Digit(value int) byte {
	if value < 0 || value >= 64 {
		panic(fmt.Sprintf("can only encode value in the range [0, 63], got %d", value))
	}
	return b64Digits[value]
}
