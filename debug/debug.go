// Package debug holds environment switches for tracing the codec.
//
// HEPMC2_DEBUG_READ traces every record line the stream reader consumes and
// HEPMC2_DEBUG_WRITE every event the writer emits. Values are parsed with
// strconv.ParseBool.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Read  bool
	Write bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = load()
}

func load() *debug {
	return &debug{
		Read:  boolEnv("HEPMC2_DEBUG_READ"),
		Write: boolEnv("HEPMC2_DEBUG_WRITE"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Read() bool {
	return d.Read
}

func Write() bool {
	return d.Write
}

// Logf writes a trace message to stderr. Byte slices are printed as
// strings and maps or slices of any as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []byte:
			args[i] = string(x)
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
