package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an element's box in document coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Position is a parsed trigger start or end. The absolute form anchors a point
// on the trigger element to a point on the viewport ("top 80%": the element's
// top meets 80% down the viewport). The relative form ("+=350", "+=150%")
// measures from the resolved start; percentages are of the viewport height.
type Position struct {
	Relative bool
	Amount   float64
	Percent  bool

	Edge       float64
	EdgeOffset float64
	View       float64
	ViewOffset float64
}

// ParsePosition parses a trigger position string.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		body := s[2:]
		p := Position{Relative: true}
		if strings.HasSuffix(body, "%") {
			p.Percent = true
			body = strings.TrimSuffix(body, "%")
		}
		body = strings.TrimSuffix(body, "px")
		v, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return Position{}, fmt.Errorf("position %q: %w", s, err)
		}
		if s[0] == '-' {
			v = -v
		}
		p.Amount = v
		return p, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("position %q: want \"<element> <viewport>\"", s)
	}
	var p Position
	var err error
	if p.Edge, p.EdgeOffset, err = parseAnchor(fields[0]); err != nil {
		return Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	if p.View, p.ViewOffset, err = parseAnchor(fields[1]); err != nil {
		return Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	return p, nil
}

// parseAnchor reads "top", "center", "bottom", "NN%" or a pixel amount, with
// an optional "+=N" / "-=N" pixel offset.
func parseAnchor(tok string) (frac, offset float64, err error) {
	base := tok
	if i := strings.Index(tok, "+="); i > 0 {
		base = tok[:i]
		offset, err = strconv.ParseFloat(strings.TrimSuffix(tok[i+2:], "px"), 64)
	} else if i := strings.Index(tok, "-="); i > 0 {
		base = tok[:i]
		offset, err = strconv.ParseFloat(strings.TrimSuffix(tok[i+2:], "px"), 64)
		offset = -offset
	}
	if err != nil {
		return 0, 0, fmt.Errorf("anchor %q: %w", tok, err)
	}

	switch base {
	case "top":
		return 0, offset, nil
	case "center":
		return 0.5, offset, nil
	case "bottom":
		return 1, offset, nil
	}
	if strings.HasSuffix(base, "%") {
		v, perr := strconv.ParseFloat(strings.TrimSuffix(base, "%"), 64)
		if perr != nil {
			return 0, 0, fmt.Errorf("anchor %q: %w", tok, perr)
		}
		return v / 100, offset, nil
	}
	v, perr := strconv.ParseFloat(strings.TrimSuffix(base, "px"), 64)
	if perr != nil {
		return 0, 0, fmt.Errorf("anchor %q: %w", tok, perr)
	}
	return 0, v + offset, nil
}

// Resolve converts the position to a scroll offset. start is only used by the
// relative form.
func (p Position) Resolve(r Rect, viewportHeight, start float64) float64 {
	if p.Relative {
		amount := p.Amount
		if p.Percent {
			amount = amount / 100 * viewportHeight
		}
		return start + amount
	}
	elem := r.Top + p.Edge*r.Height + p.EdgeOffset
	view := p.View*viewportHeight + p.ViewOffset
	return elem - view
}
