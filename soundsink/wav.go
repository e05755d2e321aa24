package soundsink

import (
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Cue frequencies, chosen only to be distinguishable by ear and by a
// test doing a zero-crossing count; they carry no meaning beyond that.
const (
	freqMotor     = 120.0
	freqHeadLoad  = 880.0
	freqHeadUnload = 440.0
	freqStep      = 1500.0
	freqSeekBase  = 600.0
)

const (
	sampleRate    = 22050
	bitDepth      = 16
	numChannels   = 1
	motorHumMs    = 120
	clickMs       = 15
	chirpMs       = 25
	maxAmplitude  = 12000
)

// WavSink renders each drive cue as a short tone burst into a mono
// 16-bit PCM WAV file. Grounded on JetSetIlly-Gopher2600's use of
// go-audio/wav for recording emulator audio output; this module uses
// the same encoder for the same reason (a developer-facing recording,
// not a realtime output path).
type WavSink struct {
	w       io.WriteCloser
	enc     *wav.Encoder
	samples []int
}

// NewWavSink creates the backing file at path and returns a WavSink
// ready to receive cues. Call Close to flush the WAV file.
func NewWavSink(path string) (*WavSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChannels, 1)
	return &WavSink{w: f, enc: enc}, nil
}

func (s *WavSink) appendTone(freq float64, durationMs int, amplitude float64) {
	n := sampleRate * durationMs / 1000
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := int(amplitude * math.Sin(2*math.Pi*freq*t))
		s.samples = append(s.samples, v)
	}
}

func (s *WavSink) MotorOn() {
	s.appendTone(freqMotor, motorHumMs, maxAmplitude*0.3)
}

func (s *WavSink) MotorOff() {
	s.appendTone(freqMotor*0.5, motorHumMs/2, maxAmplitude*0.2)
}

func (s *WavSink) HeadLoad() {
	s.appendTone(freqHeadLoad, clickMs, maxAmplitude*0.5)
}

func (s *WavSink) HeadUnload() {
	s.appendTone(freqHeadUnload, clickMs, maxAmplitude*0.5)
}

func (s *WavSink) Step(drive int) {
	s.appendTone(freqStep, chirpMs, maxAmplitude*0.6)
}

func (s *WavSink) Seek(drive int, tracks int) {
	distance := tracks
	if distance < 0 {
		distance = -distance
	}
	freq := freqSeekBase + float64(distance)*10
	s.appendTone(freq, chirpMs*2, maxAmplitude*0.6)
}

// SampleCount returns the number of samples recorded so far; tests use
// this to assert that cues actually produced audio.
func (s *WavSink) SampleCount() int {
	return len(s.samples)
}

// Close flushes the accumulated samples to the WAV file and closes it.
func (s *WavSink) Close() error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data:           s.samples,
		SourceBitDepth: bitDepth,
	}
	if err := s.enc.Write(buf); err != nil {
		s.w.Close()
		return err
	}
	if err := s.enc.Close(); err != nil {
		s.w.Close()
		return err
	}
	return s.w.Close()
}
