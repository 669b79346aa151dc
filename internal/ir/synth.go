package ir

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// SampleRate is the fixed rate of every generated impulse response and
	// of the playback side of the installed sink.
	SampleRate = 48000

	// durationMS keeps early reflections without a reverb tail.
	durationMS = 80

	// NumChannels is the asset channel layout: 0=L→L, 1=R→R, 2=L→R, 3=R→L.
	NumChannels = 4

	// ieeeFloatFormat is the WAV format tag for IEEE 754 float samples.
	ieeeFloatFormat = 3
)

// NumSamples is the per-channel length of a generated impulse response.
const NumSamples = SampleRate * durationMS / 1000

// Synthesize builds the four impulse response channels for a preset.
// Channel order matches the convolver channel indices.
func Synthesize(preset Preset) ([][]float32, error) {
	p, ok := presetParams[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	direct := renderChannel(p.directGain, p.reflections, 0, 0)
	cross := renderChannel(p.crossGain, p.crossReflections, p.crossDelayMS, p.crossLPFHz)

	// Direct R→R and cross R→L mirror their counterparts for symmetric
	// speaker placement.
	return [][]float32{direct, cloneChannel(direct), cross, cloneChannel(cross)}, nil
}

// Generate synthesizes the preset and writes it as a 4-channel float WAV.
func Generate(preset Preset, path string) error {
	channels, err := Synthesize(preset)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteWAV(f, channels, SampleRate); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteWAV encodes channels as an interleaved 32-bit IEEE float WAV.
func WriteWAV(ws io.WriteSeeker, channels [][]float32, sampleRate int) error {
	if len(channels) == 0 {
		return fmt.Errorf("no channels to encode")
	}
	numSamples := len(channels[0])
	for _, ch := range channels {
		if len(ch) != numSamples {
			return fmt.Errorf("channel length mismatch: %d vs %d", len(ch), numSamples)
		}
	}

	enc := wav.NewEncoder(ws, sampleRate, 32, len(channels), ieeeFloatFormat)

	// The encoder writes each sample as a little-endian int32; the values
	// below carry IEEE 754 bit patterns, which together with the float
	// format tag produces a float32 WAV.
	data := make([]int, 0, numSamples*len(channels))
	for i := 0; i < numSamples; i++ {
		for _, ch := range channels {
			data = append(data, int(int32(math.Float32bits(ch[i]))))
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 32,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

func renderChannel(gain float64, reflections []tap, delayMS, lpfHz float64) []float32 {
	buf := make([]float64, NumSamples)

	delay := msToSamples(delayMS)
	if delay < NumSamples {
		buf[delay] = gain
	}

	// Early reflections alternate polarity for a more natural sound.
	for i, ref := range reflections {
		at := msToSamples(ref.delayMS + delayMS)
		if at >= NumSamples {
			continue
		}
		polarity := 1.0
		if i%2 == 1 {
			polarity = -1.0
		}
		buf[at] += ref.gain * polarity
	}

	// Head shadow: a single-pole low-pass on the crossfeed path.
	if lpfHz > 0 {
		rc := 1.0 / (2.0 * math.Pi * lpfHz)
		dt := 1.0 / float64(SampleRate)
		alpha := dt / (rc + dt)
		prev := 0.0
		for i := range buf {
			prev += alpha * (buf[i] - prev)
			buf[i] = prev
		}
	}

	out := make([]float32, NumSamples)
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out
}

func cloneChannel(ch []float32) []float32 {
	dup := make([]float32, len(ch))
	copy(dup, ch)
	return dup
}

func msToSamples(ms float64) int {
	return int(ms * SampleRate / 1000)
}
