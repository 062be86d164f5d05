package format

import "strconv"

// AppendFloat appends the shortest decimal representation of f which parses
// back to the same 64-bit value.
func AppendFloat(dst []byte, f float64) []byte {
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

// Float returns AppendFloat as a string.
func Float(f float64) string {
	return string(AppendFloat(nil, f))
}

// AppendInt appends the decimal representation of i.
func AppendInt(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, i, 10)
}
