// Package soundsink defines the external "drive sound sink" interface
// the FDC's motor model (SPEC_FULL.md §4.9) calls into for audible
// feedback, plus a WAV-recording implementation useful for tests and
// for a developer to audition a drive's cue sequence by ear.
//
// Real-time audio output is explicitly out of scope for this module;
// DriveSoundSink is a recording double, not a playback device.
package soundsink

// DriveSoundSink receives cue events from the drive motor/head model.
// A nil sink is legal everywhere it's consulted; callers must check
// before dispatching.
type DriveSoundSink interface {
	// MotorOn is called when the spindle motor starts spinning.
	MotorOn()
	// MotorOff is called when the spindle motor stops.
	MotorOff()
	// HeadLoad is called when the read/write head is pressed onto the
	// disc surface, ahead of the first command after idle.
	HeadLoad()
	// HeadUnload is called when the head lifts off the surface, at the
	// end of the ≈2s idle timeout.
	HeadUnload()
	// Step is called for a one-track head movement on the given drive.
	Step(drive int)
	// Seek is called for a multi-track head movement on the given
	// drive; tracks is the signed distance moved.
	Seek(drive int, tracks int)
}
