package motion

import "time"

// Duration presets.
const (
	Fast     = 300 * time.Millisecond
	Normal   = 600 * time.Millisecond
	Slow     = 900 * time.Millisecond
	VerySlow = 1200 * time.Millisecond
)

// Named eases used across the site.
var (
	Smooth      = PowerOut(2)
	SmoothIn    = PowerIn(2)
	SmoothInOut = PowerInOut(2)
	Bounce      = BackOut(1.7)
	Elastic     = ElasticOut(1, 0.3)
	Expo        = Ease(ExpoOut)
)

// Preset is a reusable from/to pair with default timing.
type Preset struct {
	From     Props
	To       Props
	Duration time.Duration
	Ease     Ease
}

// Vars expands the preset into TweenVars. Non-zero fields of extra override
// the preset's duration and ease and supply delay, stagger, trigger and
// completion callback.
func (p Preset) Vars(extra TweenVars) TweenVars {
	v := TweenVars{
		From:     cloneProps(p.From),
		To:       cloneProps(p.To),
		Duration: p.Duration,
		Ease:     p.Ease,
	}
	if extra.Duration > 0 {
		v.Duration = extra.Duration
	}
	if extra.Ease != nil {
		v.Ease = extra.Ease
	}
	v.Delay = extra.Delay
	v.Stagger = extra.Stagger
	v.Paused = extra.Paused
	v.OnComplete = extra.OnComplete
	v.ScrollTrigger = extra.ScrollTrigger
	return v
}

// Rise fades in while travelling up by distance pixels.
func Rise(distance float64) Preset {
	return Preset{
		From:     Props{"opacity": 0, "y": distance},
		To:       Props{"opacity": 1, "y": 0},
		Duration: Normal,
		Ease:     Smooth,
	}
}

// Standard presets.
var (
	FadeIn = Preset{
		From: Props{"opacity": 0}, To: Props{"opacity": 1},
		Duration: Normal, Ease: Smooth,
	}
	FadeInUp   = Rise(30)
	FadeInDown = Rise(-30)
	FadeInLeft = Preset{
		From: Props{"opacity": 0, "x": -30}, To: Props{"opacity": 1, "x": 0},
		Duration: Normal, Ease: Smooth,
	}
	FadeInRight = Preset{
		From: Props{"opacity": 0, "x": 30}, To: Props{"opacity": 1, "x": 0},
		Duration: Normal, Ease: Smooth,
	}
	ScaleIn = Preset{
		From: Props{"opacity": 0, "scale": 0.9}, To: Props{"opacity": 1, "scale": 1},
		Duration: Normal, Ease: Bounce,
	}
	SlideUp = Preset{
		From: Props{"yPercent": 100}, To: Props{"yPercent": 0},
		Duration: Slow, Ease: Expo,
	}
)

func cloneProps(p Props) Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
