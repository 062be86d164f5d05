package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Record Record
	Attr   ColorAttr
}

type ColorAttr int

const (
	PrefixColor ColorAttr = iota
	NameColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default colours. They apply whether or not
// stdout is a terminal: callers decide when to colour.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Attr: PrefixColor}

	able.Record = EventRecord
	colors.Map[able] = sprintf(color.New(color.Bold, color.FgHiYellow))
	able.Record = VertexRecord
	colors.Map[able] = sprintf(color.RGB(196, 96, 16))
	able.Record = ParticleRecord
	colors.Map[able] = sprintf(color.RGB(128, 216, 236))
	for _, r := range []Record{UnitsRecord, CrossSectionRecord, PdfInfoRecord, HeavyIonRecord, WeightNamesRecord} {
		able.Record = r
		colors.Map[able] = sprintf(color.RGB(74, 92, 138))
	}
	colors.Map[Colorable{Record: WeightNamesRecord, Attr: NameColor}] = sprintf(color.RGB(8, 196, 16))
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func sprintf(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(r Record, a ColorAttr, s string) string {
	return c.Get(r, a)(s)
}

func (c *Colors) Get(r Record, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Record: r, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
