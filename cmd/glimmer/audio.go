package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/glimmerfx/glimmer/events"
)

const audioSampleRate = beep.SampleRate(44100)

// audioCues plays short tones for telemetry events: a soft blip when a
// section registers, a low chime when the coordinator degrades, a
// two-tone alert when an animation fails
type audioCues struct {
	ready bool
}

func newAudioCues() *audioCues {
	a := &audioCues{}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err == nil {
		// Non-fatal when it fails, the demo runs silent
		a.ready = true
	}
	return a
}

func (a *audioCues) EventTypes() []events.Type {
	return []events.Type{
		events.TypeSectionRegistered,
		events.TypeDegradedMode,
		events.TypeAnimationError,
	}
}

func (a *audioCues) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.TypeSectionRegistered:
		a.tone(880, 40*time.Millisecond)
	case events.TypeDegradedMode:
		a.tone(220, 250*time.Millisecond)
	case events.TypeAnimationError:
		a.tone(440, 80*time.Millisecond)
		a.tone(330, 120*time.Millisecond)
	}
}

func (a *audioCues) tone(freq float64, d time.Duration) {
	if !a.ready {
		return
	}
	sine, err := generators.SineTone(audioSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(audioSampleRate.N(d), sine))
}
