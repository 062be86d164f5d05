package token

// isInt reports whether d is -?[0-9]+.
func isInt(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	return len(d) > 0 && asciiDigits(d) == len(d)
}

// isFloat reports whether d looks like a decimal float, or one of the
// special values inf, infinity and nan.
func isFloat(d []byte) bool {
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		d = d[1:]
	}
	if len(d) == 0 {
		return false
	}
	if !asciiDigit(d[0]) && d[0] != '.' {
		return special(d)
	}
	n := asciiDigits(d)
	f := fract(d[n:])
	if n+f == 0 {
		return false
	}
	e := exp(d[n+f:])
	return n+f+e == len(d)
}

func special(d []byte) bool {
	switch lower(d) {
	case "inf", "infinity", "nan":
		return true
	default:
		return false
	}
}

func lower(d []byte) string {
	if len(d) > len("infinity") {
		return ""
	}
	var buf [8]byte
	for i, c := range d {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	return string(buf[:len(d)])
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// fract returns the length of a fraction part: '.' followed by zero or
// more digits. A lone '.' counts only when digits preceded it, which the
// caller checks.
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 1
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
