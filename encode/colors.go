package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	TypeColor
	IDColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			FieldColor: color.RGB(196, 96, 16).SprintfFunc(),
			TypeColor:  color.RGB(74, 92, 138).SprintfFunc(),
			IDColor:    color.HiBlackString,
			ValueColor: color.RGB(128, 216, 236).SprintfFunc(),
			SepColor:   color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}
