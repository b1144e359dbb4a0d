package motion

import (
	"fmt"
	"sort"
	"time"
)

// Target is anything whose style properties a tween can drive. Numeric
// properties receive float64 values, colour properties receive RGBA.
type Target interface {
	Set(prop string, value any)
	// Clear drops the inline value so the stylesheet applies again.
	Clear(prop string)
}

// Props maps a style property to a value. Numbers may be any Go numeric type;
// strings are parsed as colours.
type Props map[string]any

// TweenVars configures a tween. Durations are wall-clock; zero Duration makes
// the tween instantaneous.
type TweenVars struct {
	From, To Props
	Duration time.Duration
	Delay    time.Duration
	// Stagger offsets the start of each successive target.
	Stagger time.Duration
	Ease    Ease
	// Paused keeps a standalone tween from auto-playing.
	Paused     bool
	OnComplete func()
	// ScrollTrigger links the tween to a scroll observer when created through
	// a Scope. Without Scrub the tween is paused until the trigger's toggle
	// actions play it.
	ScrollTrigger *TriggerVars
}

// Tween interpolates a set of properties on one or more targets.
type Tween struct {
	playhead
	targets []Target
	from    map[string]any
	to      map[string]any
	keys    []string
	vars    TweenVars
}

// NewTween validates vars and renders the from state immediately. The tween
// starts playing unless vars.Paused is set.
func NewTween(ticker *Ticker, targets []Target, vars TweenVars) (*Tween, error) {
	tw, err := newTween(ticker, targets, vars)
	if err != nil {
		return nil, err
	}
	if !vars.Paused {
		tw.Play()
	}
	return tw, nil
}

func newTween(ticker *Ticker, targets []Target, vars TweenVars) (*Tween, error) {
	from, err := normalizeProps(vars.From)
	if err != nil {
		return nil, fmt.Errorf("tween from: %w", err)
	}
	to, err := normalizeProps(vars.To)
	if err != nil {
		return nil, fmt.Errorf("tween to: %w", err)
	}
	keys := make([]string, 0, len(to))
	for k, tv := range to {
		fv, ok := from[k]
		if !ok {
			return nil, fmt.Errorf("tween: property %q has no from value", k)
		}
		if fmt.Sprintf("%T", fv) != fmt.Sprintf("%T", tv) {
			return nil, fmt.Errorf("tween: property %q mixes %T and %T", k, fv, tv)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if vars.Ease == nil {
		vars.Ease = PowerOut(1)
	}

	tw := &Tween{
		targets: targets,
		from:    from,
		to:      to,
		keys:    keys,
		vars:    vars,
	}
	tw.playhead = playhead{
		ticker:     ticker,
		render:     tw.renderAt,
		total:      tw.total,
		onComplete: vars.OnComplete,
	}
	tw.renderAt(0)
	return tw, nil
}

// Targets returns the tweened targets in stagger order.
func (tw *Tween) Targets() []Target { return tw.targets }

func (tw *Tween) total() time.Duration {
	n := len(tw.targets)
	if n == 0 {
		return tw.vars.Delay + tw.vars.Duration
	}
	return tw.vars.Delay + tw.vars.Duration + time.Duration(n-1)*tw.vars.Stagger
}

// TargetProgress is the eased progress of target i at tween time t.
func (tw *Tween) TargetProgress(i int, t time.Duration) float64 {
	local := t - tw.vars.Delay - time.Duration(i)*tw.vars.Stagger
	var p float64
	switch {
	case local <= 0 && tw.vars.Duration > 0:
		p = 0
	case tw.vars.Duration <= 0:
		if local >= 0 {
			p = 1
		}
	default:
		p = clamp01(float64(local) / float64(tw.vars.Duration))
	}
	return tw.vars.Ease(p)
}

func (tw *Tween) renderAt(t time.Duration) {
	for i, target := range tw.targets {
		e := tw.TargetProgress(i, t)
		for _, k := range tw.keys {
			target.Set(k, interpolate(tw.from[k], tw.to[k], e))
		}
	}
}

// Revert stops the tween and clears every property it touched.
func (tw *Tween) Revert() {
	tw.Pause()
	for _, target := range tw.targets {
		for _, k := range tw.keys {
			target.Clear(k)
		}
	}
}

func interpolate(from, to any, e float64) any {
	switch f := from.(type) {
	case float64:
		return f + (to.(float64)-f)*e
	case RGBA:
		return f.Lerp(to.(RGBA), e)
	}
	return to
}

func normalizeProps(p Props) (map[string]any, error) {
	out := make(map[string]any, len(p))
	for k, v := range p {
		switch x := v.(type) {
		case float64:
			out[k] = x
		case float32:
			out[k] = float64(x)
		case int:
			out[k] = float64(x)
		case int64:
			out[k] = float64(x)
		case RGBA:
			out[k] = x
		case string:
			c, err := ParseColor(x)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", k, err)
			}
			out[k] = c
		default:
			return nil, fmt.Errorf("property %q: unsupported value %T", k, v)
		}
	}
	return out, nil
}

// SetProps applies props to every target at once.
func SetProps(targets []Target, props Props) error {
	vals, err := normalizeProps(props)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, t := range targets {
		for _, k := range keys {
			t.Set(k, vals[k])
		}
	}
	return nil
}
