package screencap

import "math"

// Plane indices for PixelBuffer accessors. Plane 0 is the whole buffer for
// packed formats and the luma plane for biplanar formats.
const (
	PlaneLuminance   = 0
	PlaneChrominance = 1
)

// FrameStatusKey is the attachment key carrying the capture frame status.
// It matches ScreenCaptureKit's SCStreamFrameInfoStatus.
const FrameStatusKey = "SCStreamFrameInfoStatus"

// FrameStatusComplete is the status value marking a fully captured frame
// (SCFrameStatusComplete). Samples with any other status, or with missing or
// unreadable status metadata, are not converted on the biplanar path.
const FrameStatusComplete int64 = 0

// Attachment is one metadata dictionary attached to a sample.
type Attachment interface {
	// Int64 reads an integer attachment value by key. ok is false when the
	// key is absent or its value cannot be read as a 64-bit integer.
	Int64(key string) (value int64, ok bool)
}

// Sample is one delivered unit of capture data: a pixel buffer plus metadata.
// Samples are borrowed from the capture subsystem for the duration of a
// single conversion call and must not be retained.
type Sample interface {
	// PresentationSeconds returns the presentation timestamp in seconds
	// since an arbitrary monotonic origin, typically started on boot.
	PresentationSeconds() float64

	// PixelBuffer returns the sample's pixel buffer, or nil if the sample
	// carries none.
	PixelBuffer() PixelBuffer

	// Attachments returns the sample's capture metadata dictionaries, or
	// nil when the sample has none.
	Attachments() []Attachment
}

// PixelBuffer is a platform pixel buffer holding either one packed plane or a
// luma plane plus an interleaved half-height chroma plane. Plane memory is
// addressable only between Lock and Unlock.
type PixelBuffer interface {
	// Lock makes plane memory addressable for CPU reads.
	Lock() error

	// Unlock releases the lock. It must be called exactly once per
	// successful Lock, on every exit path.
	Unlock()

	// Bounds reports the logical pixel dimensions from the buffer
	// descriptor, independent of row stride.
	Bounds() (width, height int)

	// PlaneStride returns the bytes per row of the plane, which may exceed
	// the width-derived row size due to padding.
	PlaneStride(plane int) int

	// PlaneBytes returns a view of the first n bytes of the plane's
	// memory, or a shorter (possibly nil) slice when the plane cannot back
	// n bytes. The view aliases platform memory and is valid only while
	// the buffer is locked.
	PlaneBytes(plane, n int) []byte
}

// PTSNanoseconds converts a sample's presentation timestamp to nanoseconds,
// truncating toward zero rather than rounding. Degenerate timestamps (NaN or
// negative) map to 0; there is no failure path.
func PTSNanoseconds(s Sample) uint64 {
	ns := math.Trunc(s.PresentationSeconds() * 1e9)
	switch {
	case math.IsNaN(ns) || ns <= 0:
		return 0
	case ns >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(ns)
}
