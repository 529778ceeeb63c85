package nbt

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SuffixColor
	SepColor
	NoteColor
)

type Colorable struct {
	Type Type
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmt.Sprintf,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range Types() {
		colors.Map[Colorable{Type: t, Attr: FieldColor}] = color.RGB(74, 92, 138).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(96, 96, 96).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: SuffixColor}] = color.RGB(128, 168, 196).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: NoteColor}] = color.RGB(8, 196, 16).SprintfFunc()
	}
	colors.Map[Colorable{Type: StringType, Attr: ValueColor}] = color.RGB(196, 96, 16).SprintfFunc()
	for _, t := range []Type{ByteType, ShortType, IntType, LongType, FloatType, DoubleType} {
		colors.Map[Colorable{Type: t, Attr: ValueColor}] = color.CyanString
	}
	for _, t := range []Type{ByteArrayType, IntArrayType, LongArrayType} {
		colors.Map[Colorable{Type: t, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	}
	return colors
}

func (c *Colors) Color(t Type, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
