package codec

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Color is a palette entry, transmitted as its integer code.
type Color uint8

const (
	BerryRed   Color = 30
	Red        Color = 31
	Orange     Color = 32
	Yellow     Color = 33
	OliveGreen Color = 34
	LimeGreen  Color = 35
	Green      Color = 36
	MintGreen  Color = 37
	Teal       Color = 38
	SkyBlue    Color = 39
	LightBlue  Color = 40
	Blue       Color = 41
	Grape      Color = 42
	Violet     Color = 43
	Lavender   Color = 44
	Magenta    Color = 45
	Salmon     Color = 46
	Charcoal   Color = 47
	Grey       Color = 48
	Tauple     Color = 49
)

type paletteEntry struct {
	name string
	hex  string
}

var palette = map[Color]paletteEntry{
	BerryRed:   {"Berry Red", "#B8256F"},
	Red:        {"Red", "#DB4035"},
	Orange:     {"Orange", "#FF9933"},
	Yellow:     {"Yellow", "#FAD000"},
	OliveGreen: {"Olive Green", "#AFB83B"},
	LimeGreen:  {"Lime Green", "#7ECC49"},
	Green:      {"Green", "#299438"},
	MintGreen:  {"Mint Green", "#6ACCBC"},
	Teal:       {"Teal", "#158FAD"},
	SkyBlue:    {"Sky Blue", "#14AAF5"},
	LightBlue:  {"Light Blue", "#96C3EB"},
	Blue:       {"Blue", "#4073FF"},
	Grape:      {"Grape", "#884DFF"},
	Violet:     {"Violet", "#AF38EB"},
	Lavender:   {"Lavender", "#EB96EB"},
	Magenta:    {"Magenta", "#E05194"},
	Salmon:     {"Salmon", "#FF8D85"},
	Charcoal:   {"Charcoal", "#808080"},
	Grey:       {"Grey", "#B8B8B8"},
	Tauple:     {"Tauple", "#CCAC93"},
}

// byText indexes lower-cased names and hex values.
var byText = func() map[string]Color {
	m := make(map[string]Color, 2*len(palette))
	for c, e := range palette {
		m[strings.ToLower(e.name)] = c
		m[strings.ToLower(e.hex)] = c
	}
	return m
}()

// Colors returns the palette in code order.
func Colors() []Color {
	out := make([]Color, 0, len(palette))
	for c := BerryRed; c <= Tauple; c++ {
		out = append(out, c)
	}
	return out
}

// DecodeColor accepts only codes of the fixed palette.
func DecodeColor(raw int64) (Color, error) {
	if raw < int64(BerryRed) || raw > int64(Tauple) {
		return 0, &UnknownColorCodeError{Raw: raw}
	}
	return Color(raw), nil
}

// EncodeColor returns the wire code of c.
func EncodeColor(c Color) int64 {
	return int64(c)
}

// ColorFromText resolves a palette name or hex value, case-insensitively.
func ColorFromText(s string) (Color, error) {
	if c, ok := byText[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return 0, &UnknownColorNameError{Text: s}
}

// Name returns the human readable name, or "" for a value outside the palette.
func (c Color) Name() string {
	return palette[c].name
}

// Hex returns the upper-case "#RRGGBB" value, or "" for a value outside the palette.
func (c Color) Hex() string {
	return palette[c].hex
}

func (c Color) String() string {
	if e, ok := palette[c]; ok {
		return e.name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ColorPtr returns a pointer to c.
func ColorPtr(c Color) *Color {
	return &c
}

func (c Color) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, EncodeColor(c), 10), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownColorCode, data)
	}

	v, err := DecodeColor(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalText lets a Color be set from a name or hex value, e.g. by flag.TextVar.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ColorFromText(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	if _, ok := palette[c]; !ok {
		return nil, &UnknownColorCodeError{Raw: int64(c)}
	}
	return []byte(c.Name()), nil
}
