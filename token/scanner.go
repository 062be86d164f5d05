package token

import (
	"strconv"
)

// Scanner reads the fields of one record line.
type Scanner struct {
	d []byte
	i int
}

// NewScanner returns a scanner positioned at the start of line. A trailing
// line terminator is ignored.
func NewScanner(line []byte) *Scanner {
	s := &Scanner{}
	s.Reset(line)
	return s
}

// Reset repositions s at the start of line.
func (s *Scanner) Reset(line []byte) {
	s.d = TrimEOL(line)
	s.i = 0
}

// TrimEOL strips a trailing "\n" or "\r\n".
func TrimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}

// Skip advances past n bytes, typically the record prefix.
func (s *Scanner) Skip(n int) {
	s.i = min(s.i+n, len(s.d))
}

// Col returns the current offset within the line.
func (s *Scanner) Col() int {
	return s.i
}

// Rest returns the unread part of the line.
func (s *Scanner) Rest() []byte {
	return s.d[s.i:]
}

// AtEnd reports whether only blanks remain.
func (s *Scanner) AtEnd() bool {
	for j := s.i; j < len(s.d); j++ {
		if !isBlank(s.d[j]) {
			return false
		}
	}
	return true
}

// MaxFields bounds the number of fields left on the line. It is used to
// cap capacity hints taken from count prefixes.
func (s *Scanner) MaxFields() int {
	return (len(s.d) - s.i + 1) / 2
}

func (s *Scanner) blanks(what string) error {
	j := s.i
	for j < len(s.d) && isBlank(s.d[j]) {
		j++
	}
	if j == len(s.d) {
		return ExpectedErr(what, j)
	}
	if j == s.i {
		return ExpectedErr("blank before "+what, j)
	}
	s.i = j
	return nil
}

// field consumes blanks and the following run of non-space bytes.
func (s *Scanner) field(what string) (int, []byte, error) {
	if err := s.blanks(what); err != nil {
		return 0, nil, err
	}
	start := s.i
	for s.i < len(s.d) && !isSpace(s.d[s.i]) {
		s.i++
	}
	return start, s.d[start:s.i], nil
}

// Word returns the next bare token.
func (s *Scanner) Word() ([]byte, error) {
	_, w, err := s.field("token")
	return w, err
}

// Int64 returns the next integer field.
func (s *Scanner) Int64() (int64, error) {
	return s.integer(64)
}

// Int32 returns the next integer field, which must fit in 32 bits.
func (s *Scanner) Int32() (int32, error) {
	v, err := s.integer(32)
	return int32(v), err
}

func (s *Scanner) integer(bits int) (int64, error) {
	col, tok, err := s.field("integer")
	if err != nil {
		return 0, err
	}
	if !isInt(tok) {
		s.i = col
		return 0, ExpectedErr("integer, got "+strconv.Quote(string(tok)), col)
	}
	v, err := strconv.ParseInt(string(tok), 10, bits)
	if err != nil {
		s.i = col
		return 0, &ScanErr{Err: ErrInt, Col: col, Detail: err.Error()}
	}
	return v, nil
}

// OptInt32 returns the next integer field if the line has one left.
func (s *Scanner) OptInt32() (int32, bool, error) {
	if s.AtEnd() {
		return 0, false, nil
	}
	v, err := s.Int32()
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// Count returns the count prefix of a repeated field list.
func (s *Scanner) Count() (int, error) {
	col := s.i
	v, err := s.integer(32)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, &ScanErr{Err: ErrInt, Col: col, Detail: "negative count " + strconv.FormatInt(v, 10)}
	}
	return int(v), nil
}

// Float returns the next floating point field.
func (s *Scanner) Float() (float64, error) {
	col, tok, err := s.field("float")
	if err != nil {
		return 0, err
	}
	if !isFloat(tok) {
		s.i = col
		return 0, ExpectedErr("float, got "+strconv.Quote(string(tok)), col)
	}
	v, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		s.i = col
		return 0, &ScanErr{Err: ErrFloat, Col: col, Detail: err.Error()}
	}
	return v, nil
}

// Quoted returns the contents of the next '"'-delimited string.
func (s *Scanner) Quoted() (string, error) {
	if err := s.blanks("quoted string"); err != nil {
		return "", err
	}
	col := s.i
	if s.d[s.i] != '"' {
		return "", ExpectedErr("'\"'", col)
	}
	for j := s.i + 1; j < len(s.d); j++ {
		if s.d[j] == '"' {
			res := string(s.d[s.i+1 : j])
			s.i = j + 1
			return res, nil
		}
	}
	return "", &ScanErr{Err: ErrSyntax, Col: col, Detail: "unterminated quoted string"}
}

// Floats reads n float fields appending them to dst.
func (s *Scanner) Floats(dst []float64, n int) ([]float64, error) {
	for range n {
		f, err := s.Float()
		if err != nil {
			return dst, err
		}
		dst = append(dst, f)
	}
	return dst, nil
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
