package motion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBA is a CSS colour with 8-bit channels and a fractional alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// ParseColor accepts rgb(), rgba() and #rgb / #rrggbb notation.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseChannels(s, s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseChannels(s, s[len("rgb("):len(s)-1], 3)
	}
	return RGBA{}, fmt.Errorf("unsupported colour %q", s)
}

// MustColor is ParseColor for literals.
func MustColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (RGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
}

func parseChannels(orig, body string, want int) (RGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return RGBA{}, fmt.Errorf("colour %q: want %d channels, got %d", orig, want, len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return RGBA{}, fmt.Errorf("colour %q: bad channel %q", orig, parts[i])
		}
		ch[i] = uint8(v)
	}
	c := RGBA{R: ch[0], G: ch[1], B: ch[2], A: 1}
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return RGBA{}, fmt.Errorf("colour %q: bad alpha %q", orig, parts[3])
		}
		c.A = a
	}
	return c, nil
}

// Lerp interpolates each channel by t.
func (c RGBA) Lerp(to RGBA, t float64) RGBA {
	switch t {
	case 0:
		return c
	case 1:
		return to
	}
	mix := func(a, b uint8) uint8 {
		v := math.Round(float64(a) + (float64(b)-float64(a))*t)
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return RGBA{
		R: mix(c.R, to.R),
		G: mix(c.G, to.G),
		B: mix(c.B, to.B),
		A: math.Max(0, math.Min(1, c.A+(to.A-c.A)*t)),
	}
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}
