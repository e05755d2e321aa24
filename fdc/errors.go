package fdc

import "errors"

// ErrNoDisc is the sentinel for a drive with no disc loaded. The
// controller's own entry points do not return it: a command against an
// empty drive reports ResultDriveNotReady through the result register.
var ErrNoDisc = errors.New("fdc: no disc loaded in drive")

// ResultCode is a host-visible error code: it flows through the
// emulated result register, not through Go's error return path. See
// SPEC_FULL.md §7.
type ResultCode byte

const (
	ResultSuccess             ResultCode = 0x00
	ResultClockError          ResultCode = 0x08
	ResultLateDMA             ResultCode = 0x0A
	ResultIDCRCError          ResultCode = 0x0C
	ResultDataCRCError        ResultCode = 0x0E
	ResultDriveNotReady       ResultCode = 0x10
	ResultWriteProtect        ResultCode = 0x12
	ResultTrack0NotFound      ResultCode = 0x14
	ResultWriteFault          ResultCode = 0x16
	ResultSectorNotFound      ResultCode = 0x18
	ResultDriveNotPresent     ResultCode = 0x1E
	ResultDeletedDataFound    ResultCode = 0x20
	ResultDeletedDataCRCError ResultCode = 0x2E
)

func (r ResultCode) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultClockError:
		return "clock error"
	case ResultLateDMA:
		return "late DMA"
	case ResultIDCRCError:
		return "ID CRC error"
	case ResultDataCRCError:
		return "data CRC error"
	case ResultDriveNotReady:
		return "drive not ready"
	case ResultWriteProtect:
		return "write protect"
	case ResultTrack0NotFound:
		return "track 0 not found"
	case ResultWriteFault:
		return "write fault"
	case ResultSectorNotFound:
		return "sector not found"
	case ResultDriveNotPresent:
		return "drive not present"
	case ResultDeletedDataFound:
		return "deleted data found"
	case ResultDeletedDataCRCError:
		return "deleted data CRC error"
	default:
		return "unknown"
	}
}

// isContinueSentinel reports whether code belongs to the source's
// sentinel set {success, data-CRC, deleted-found}, which §9's design
// note says are not "errors" for scheduling purposes: when
// next_interrupt_is_err holds one of these, the command's own tick
// handler runs instead of short-circuiting to a posted error.
func isContinueSentinel(code ResultCode) bool {
	return code == ResultSuccess || code == ResultDataCRCError || code == ResultDeletedDataFound
}
