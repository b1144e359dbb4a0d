package motion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ease maps linear progress in [0,1] to eased progress. Eases must return 0
// for 0 and 1 for 1; values in between may overshoot.
type Ease func(p float64) float64

// Linear is the identity ease, named "none" in ease strings.
func Linear(p float64) float64 { return p }

// PowerIn returns the power-n ease-in curve. power1 is quadratic, power2 cubic
// and so on, matching the usual animation library naming.
func PowerIn(n int) Ease {
	exp := float64(n + 1)
	return func(p float64) float64 { return math.Pow(p, exp) }
}

// PowerOut returns the power-n ease-out curve.
func PowerOut(n int) Ease {
	in := PowerIn(n)
	return func(p float64) float64 { return 1 - in(1-p) }
}

// PowerInOut returns the power-n ease-in-out curve.
func PowerInOut(n int) Ease {
	in := PowerIn(n)
	return func(p float64) float64 {
		if p < 0.5 {
			return in(p*2) / 2
		}
		return 1 - in((1-p)*2)/2
	}
}

// EaseOutCubic is 1-(1-p)^3, the count-up curve.
func EaseOutCubic(p float64) float64 { return 1 - math.Pow(1-p, 3) }

// BackOut overshoots the target by an amount controlled by s before settling.
func BackOut(s float64) Ease {
	return func(p float64) float64 {
		q := 1 - p
		return 1 - q*q*((s+1)*q-s)
	}
}

// ExpoOut is the exponential ease-out.
func ExpoOut(p float64) float64 {
	if p >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}

// ElasticOut oscillates around the target with the given amplitude and period.
func ElasticOut(amplitude, period float64) Ease {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	freq := 2 * math.Pi / period
	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return amplitude*math.Pow(2, -10*p)*math.Sin((p-shift)*freq) + 1
	}
}

// ParseEase resolves an ease name such as "power2.out", "back.out(1.7)",
// "elastic.out(1, 0.3)", "expo.out" or "none". The empty string resolves to
// power1.out.
func ParseEase(name string) (Ease, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PowerOut(1), nil
	}

	base, args, err := splitEaseArgs(name)
	if err != nil {
		return nil, err
	}

	family, kind, _ := strings.Cut(base, ".")
	if kind == "" {
		kind = "out"
	}

	switch family {
	case "none", "linear":
		return Linear, nil
	case "power0":
		return Linear, nil
	case "power1", "power2", "power3", "power4":
		n := int(family[len(family)-1] - '0')
		switch kind {
		case "in":
			return PowerIn(n), nil
		case "out":
			return PowerOut(n), nil
		case "inOut":
			return PowerInOut(n), nil
		}
	case "back":
		s := 1.70158
		if len(args) > 0 {
			s = args[0]
		}
		if kind == "out" {
			return BackOut(s), nil
		}
	case "expo":
		if kind == "out" {
			return ExpoOut, nil
		}
	case "elastic":
		amp, period := 1.0, 0.3
		if len(args) > 0 {
			amp = args[0]
		}
		if len(args) > 1 {
			period = args[1]
		}
		if kind == "out" {
			return ElasticOut(amp, period), nil
		}
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// MustEase is ParseEase for compile-time constant names.
func MustEase(name string) Ease {
	e, err := ParseEase(name)
	if err != nil {
		panic(err)
	}
	return e
}

func splitEaseArgs(name string) (string, []float64, error) {
	open := strings.IndexByte(name, '(')
	if open < 0 {
		return name, nil, nil
	}
	if !strings.HasSuffix(name, ")") {
		return "", nil, fmt.Errorf("unterminated ease arguments in %q", name)
	}
	var args []float64
	for _, raw := range strings.Split(name[open+1:len(name)-1], ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", nil, fmt.Errorf("ease %q: %w", name, err)
		}
		args = append(args, v)
	}
	return name[:open], args, nil
}
