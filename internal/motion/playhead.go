package motion

import "time"

// Animation is the playback surface shared by tweens and timelines.
type Animation interface {
	Duration() time.Duration
	Progress() float64
	SetProgress(p float64)
	Play()
	Reverse()
	Pause()
	Restart()
	IsActive() bool
	Revert()
}

// playhead owns the current time of an animation and its frame loop
// registration. render is supplied by the owner.
type playhead struct {
	ticker     *Ticker
	render     func(t time.Duration)
	total      func() time.Duration
	onComplete func()

	time    time.Duration
	dir     int
	started bool
}

func (p *playhead) Duration() time.Duration { return p.total() }

// Time is the current playhead position.
func (p *playhead) Time() time.Duration { return p.time }

func (p *playhead) Progress() float64 {
	d := p.total()
	if d <= 0 {
		if p.time > 0 || p.started {
			return 1
		}
		return 0
	}
	return float64(p.time) / float64(d)
}

// SetProgress jumps to a fraction of the duration without changing the play
// state.
func (p *playhead) SetProgress(f float64) {
	p.seek(time.Duration(clamp01(f) * float64(p.total())))
}

func (p *playhead) seek(t time.Duration) {
	if t < 0 {
		t = 0
	}
	if d := p.total(); t > d {
		t = d
	}
	p.time = t
	p.started = true
	p.render(t)
}

func (p *playhead) Play() {
	if p.total() <= 0 {
		p.seek(0)
		p.finish()
		return
	}
	if p.time >= p.total() {
		return
	}
	p.dir = 1
	p.ticker.add(p)
}

func (p *playhead) Reverse() {
	if p.time <= 0 {
		p.dir = 0
		return
	}
	p.dir = -1
	p.ticker.add(p)
}

func (p *playhead) Pause() {
	p.dir = 0
	p.ticker.remove(p)
}

func (p *playhead) Restart() {
	p.ticker.remove(p)
	p.seek(0)
	p.Play()
}

func (p *playhead) IsActive() bool { return p.dir != 0 }

func (p *playhead) advance(dt time.Duration) bool {
	if p.dir == 0 {
		return false
	}
	next := p.time + time.Duration(p.dir)*dt
	p.seek(next)
	switch {
	case p.dir > 0 && p.time >= p.total():
		p.dir = 0
		p.finish()
		return false
	case p.dir < 0 && p.time <= 0:
		p.dir = 0
		return false
	}
	return true
}

func (p *playhead) finish() {
	if p.onComplete != nil {
		p.onComplete()
	}
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// applyAction performs a toggle action word on a.
func applyAction(a Animation, action string) {
	switch action {
	case "play", "resume":
		a.Play()
	case "reverse":
		a.Reverse()
	case "pause":
		a.Pause()
	case "restart":
		a.Restart()
	case "reset":
		a.Pause()
		a.SetProgress(0)
	case "complete":
		a.Pause()
		a.SetProgress(1)
	}
}
