// Package hexdump renders byte slices as address, hex and ASCII columns for
// CLI output.
package hexdump

import (
	"fmt"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options customizes the dump layout
type Options struct {
	// BytesPerLine is the number of bytes per output line (default 16)
	BytesPerLine int

	// ShowASCII adds the printable-character gutter
	ShowASCII bool

	// Color colors the address column and dims zero bytes
	Color bool

	// Base is the address printed for the first byte
	Base uint64
}

// DefaultOptions matches the layout of xxd.
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		ShowASCII:    true,
	}
}

// Dump formats data with the given options.
func Dump(data []byte, opts Options) string {
	perLine := opts.BytesPerLine
	if perLine <= 0 {
		perLine = 16
	}

	var sb strings.Builder
	for offset := 0; offset < len(data); offset += perLine {
		line := data[offset:]
		if len(line) > perLine {
			line = line[:perLine]
		}

		addr := fmt.Sprintf("%016x", opts.Base+uint64(offset))
		if opts.Color {
			addr = coloransi.Color(coloransi.ColorPurple, coloransi.Black, addr)
		}
		sb.WriteString(addr)
		sb.WriteString("  ")

		for i := 0; i < perLine; i++ {
			if i >= len(line) {
				sb.WriteString("   ")
				continue
			}
			b := line[i]
			if opts.Color && b == 0 {
				sb.WriteString(coloransi.Color(coloransi.BrightBlack, coloransi.Black, fmt.Sprintf("%02x", b)))
				sb.WriteByte(' ')
			} else {
				fmt.Fprintf(&sb, "%02x ", b)
			}
		}

		if opts.ShowASCII {
			sb.WriteString(" |")
			for _, b := range line {
				if b >= 0x20 && b < 0x7f {
					sb.WriteByte(b)
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteString("|")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
