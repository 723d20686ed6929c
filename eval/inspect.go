package eval

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Inspect renders a value for display: numbers as decimal literals,
// booleans as #t/#f, builtins by name and functions as a dump of their
// parameters and body. Nothing renders as the empty string.
func Inspect(v Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return inspectFloat(float64(v))
	case Boolean:
		if v {
			return "#t"
		}
		return "#f"
	case *Builtin:
		return v.name
	case *Function:
		return v.inspect()
	}
	panic(fmt.Sprintf("cannot inspect: %#+v", v))
}

func inspectFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v *Function) inspect() string {
	var buf bytes.Buffer
	buf.WriteString("#<function (")
	buf.WriteString(strings.Join(v.Params, " "))
	buf.WriteString(") ")
	buf.WriteString(v.Body.String())
	buf.WriteString(">")
	return buf.String()
}
