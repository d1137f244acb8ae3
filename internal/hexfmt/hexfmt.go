// Package hexfmt turns byte rows into fixed width hex text.
package hexfmt

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// RowWidth returns the number of characters needed to format n bytes:
// two digits per byte plus one separating space between bytes.
func RowWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return 2*n + (n - 1)
}

// MaxBytes returns how many bytes fit into cols display columns.
func MaxBytes(cols int) int {
	if cols <= 0 {
		return 0
	}
	return (cols + 1) / 3
}

// FormatRow renders data as space separated uppercase hex pairs, right padded
// with spaces to exactly width characters. Asking for more bytes than fit is a
// caller bug and panics.
func FormatRow(data []byte, width int) string {
	need := RowWidth(len(data))
	if need > width {
		panic(fmt.Sprintf("hexfmt: %d bytes need %d columns, row has %d", len(data), need, width))
	}

	var b strings.Builder
	b.Grow(width)
	for i, c := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}
	for i := need; i < width; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}
