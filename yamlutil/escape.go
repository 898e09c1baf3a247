package yamlutil

import (
	"strconv"
	"strings"
)

// DecodeEscapes expands backslash escape sequences in a command line value so
// that "a: 1\nb: 2" typed as a single argument becomes a two line document.
// Unknown sequences are copied through untouched.
func DecodeEscapes(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))

	remaining := text
	for len(remaining) > 0 {
		if remaining[0] != '\\' || len(remaining) == 1 {
			builder.WriteByte(remaining[0])
			remaining = remaining[1:]
			continue
		}

		switch next := remaining[1]; {
		case next == '\'' || next == '"':
			builder.WriteByte(next)
			remaining = remaining[2:]
			continue
		case next == '\n':
			remaining = remaining[2:]
			continue
		case next >= '0' && next <= '7':
			value, consumed := decodeOctal(remaining[1:])
			builder.WriteRune(value)
			remaining = remaining[1+consumed:]
			continue
		}

		value, _, tail, err := strconv.UnquoteChar(remaining, 0)
		if err != nil {
			builder.WriteByte('\\')
			remaining = remaining[1:]
			continue
		}
		builder.WriteRune(value)
		remaining = tail
	}

	return builder.String()
}

func decodeOctal(digits string) (rune, int) {
	var value rune
	consumed := 0
	for consumed < len(digits) && consumed < 3 {
		digit := digits[consumed]
		if digit < '0' || digit > '7' {
			break
		}
		value = value*8 + rune(digit-'0')
		consumed++
	}
	return value, consumed
}
