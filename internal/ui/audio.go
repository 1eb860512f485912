package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Effect identifies one of the procedurally generated sound effects.
type Effect int

const (
	EffectMove Effect = iota
	EffectCapture
	EffectCastle
	EffectPromote
	EffectInvalid
	EffectVictory
)

const sampleRate = 44100

// Sounds synthesizes and plays the game's sound effects.
type Sounds struct {
	context *audio.Context
	effects map[Effect][]byte
	enabled bool
	volume  float64
}

// NewSounds creates the audio context and synthesizes every effect.
func NewSounds() *Sounds {
	s := &Sounds{
		context: audio.NewContext(sampleRate),
		effects: make(map[Effect][]byte),
		enabled: true,
		volume:  0.5,
	}

	s.effects[EffectMove] = pcm(click(440, 0.08, 0.3))
	s.effects[EffectCapture] = pcm(click(330, 0.12, 0.5))
	s.effects[EffectCastle] = pcm(doubleClick(400, 0.06, 0.3))
	s.effects[EffectPromote] = pcm(tone(660, 0.18, 0.4))
	s.effects[EffectInvalid] = pcm(buzz(150, 0.1, 0.3))
	s.effects[EffectVictory] = pcm(chord(0.4, 0.5))

	return s
}

// Play plays an effect. Each call gets its own player so effects overlap.
func (s *Sounds) Play(e Effect) {
	if !s.enabled {
		return
	}
	data, ok := s.effects[e]
	if !ok {
		return
	}
	player := s.context.NewPlayerFromBytes(data)
	player.SetVolume(s.volume)
	player.Play()
}

// SetEnabled turns playback on or off.
func (s *Sounds) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether playback is on.
func (s *Sounds) Enabled() bool {
	return s.enabled
}

// pcm converts normalized samples to interleaved stereo 16-bit PCM.
func pcm(samples []float64) []byte {
	data := make([]byte, len(samples)*4)
	for i, sample := range samples {
		if sample > 1 {
			sample = 1
		} else if sample < -1 {
			sample = -1
		}
		val := int16(sample * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a short percussive hit with a touch of noise, piece on wood.
func click(freq, duration, amplitude float64) []float64 {
	n := int(sampleRate * duration)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		samples[i] = (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude
	}
	return samples
}

// tone is a plain sine with a quick attack and linear decay.
func tone(freq, duration, amplitude float64) []float64 {
	n := int(sampleRate * duration)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / sampleRate
		progress := t / duration
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		samples[i] = math.Sin(2*math.Pi*freq*t) * envelope * amplitude
	}
	return samples
}

// doubleClick is two clicks with a 50ms gap, the second slightly higher.
func doubleClick(freq, duration, amplitude float64) []float64 {
	first := click(freq, duration, amplitude)
	gap := make([]float64, int(sampleRate*0.05))
	second := click(freq*1.1, duration, amplitude*0.8)

	samples := make([]float64, 0, len(first)+len(gap)+len(second))
	samples = append(samples, first...)
	samples = append(samples, gap...)
	samples = append(samples, second...)
	return samples
}

// buzz is a low square-ish error sound.
func buzz(freq, duration, amplitude float64) []float64 {
	n := int(sampleRate * duration)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / sampleRate
		envelope := 1.0 - t/duration
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		samples[i] = wave * envelope * amplitude * 0.5
	}
	return samples
}

// chord is a C major triad with fade in and out, used for victory.
func chord(duration, amplitude float64) []float64 {
	freqs := []float64{261.63, 329.63, 392.00}
	n := int(sampleRate * duration)
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / sampleRate
		progress := t / duration
		envelope := 1.0
		if progress < 0.1 {
			envelope = progress / 0.1
		} else if progress > 0.7 {
			envelope = (1.0 - progress) / 0.3
		}

		var sample float64
		for _, freq := range freqs {
			sample += math.Sin(2 * math.Pi * freq * t)
		}
		samples[i] = sample / float64(len(freqs)) * envelope * amplitude
	}
	return samples
}
