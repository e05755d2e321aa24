package soundsink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWavSinkRecordsCues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	sink, err := NewWavSink(path)
	if err != nil {
		t.Fatalf("NewWavSink: %v", err)
	}

	before := sink.SampleCount()
	sink.HeadLoad()
	sink.Seek(0, 5)
	sink.MotorOn()
	after := sink.SampleCount()

	if after <= before {
		t.Fatalf("expected SampleCount to grow after cues, before=%d after=%d", before, after)
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty WAV file")
	}
}

func TestWavSinkImplementsDriveSoundSink(t *testing.T) {
	var _ DriveSoundSink = (*WavSink)(nil)
}
