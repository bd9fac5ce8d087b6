package engine

import (
	"strconv"
	"strings"

	"github.com/PaprikaX33/Uniedit/internal/command"
)

// Print lists the raw buffer values, valid or not, as "[a, b, c]".
// Hex values are upper case and at least two digits wide.
func (e *Engine) Print(base command.Base) string {
	values := e.buf.Values()

	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		if base == command.Hex {
			digits := strings.ToUpper(strconv.FormatUint(uint64(v), 16))
			if len(digits) < 2 {
				sb.WriteByte('0')
			}
			sb.WriteString(digits)
		} else {
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
