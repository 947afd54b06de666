package screencap

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ConvertSample converts one sample into a frame of the requested format.
// A nil result means the sample produced no frame for this tick.
func ConvertSample(s Sample, format PixelFormat) Frame {
	switch format {
	case PixelFormatRGB:
		if f := CreateRGBFrame(s); f != nil {
			return f
		}
	case PixelFormatBGR:
		if f := CreateBGRFrame(s); f != nil {
			return f
		}
	case PixelFormatBGRA:
		if f := CreateBGRAFrame(s); f != nil {
			return f
		}
	case PixelFormatYUV420:
		if f := CreateYUVFrame(s); f != nil {
			return f
		}
	}
	return nil
}

// FrameCallback receives converted frames in delivery order.
type FrameCallback func(Frame)

// OutputStats counts what happened to the samples pushed through an Output.
type OutputStats struct {
	Converted uint64 // Samples that produced a frame
	Skipped   uint64 // Samples that produced no frame
	Dropped   uint64 // Frames dropped because the channel was full
}

// Output converts samples pushed by the capture subsystem into frames of a
// fixed format and hands them to an optional callback and a buffered channel.
// Conversion runs synchronously on the delivering goroutine; when the channel
// is full the frame is dropped rather than blocking the capture callback.
type Output struct {
	format PixelFormat

	mu       sync.RWMutex
	callback FrameCallback
	frameCh  chan Frame

	converted atomic.Uint64
	skipped   atomic.Uint64
	dropped   atomic.Uint64
}

// NewOutput creates an output producing frames of the given format, with a
// frame channel buffering up to buffer frames.
func NewOutput(format PixelFormat, buffer int) (*Output, error) {
	if format.PlaneCount() == 0 {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Output{
		format:  format,
		frameCh: make(chan Frame, buffer),
	}, nil
}

// Format returns the output's pixel format.
func (o *Output) Format() PixelFormat {
	return o.format
}

// SetCallback sets a push-mode callback invoked for every converted frame,
// before the frame is offered to the channel.
func (o *Output) SetCallback(cb FrameCallback) {
	o.mu.Lock()
	o.callback = cb
	o.mu.Unlock()
}

// Frames returns the channel carrying converted frames.
func (o *Output) Frames() <-chan Frame {
	return o.frameCh
}

// HandleSample converts one delivered sample and dispatches the result.
// Samples that produce no frame are counted and skipped silently.
func (o *Output) HandleSample(s Sample) {
	frame := ConvertSample(s, o.format)
	if frame == nil {
		o.skipped.Add(1)
		return
	}
	o.converted.Add(1)

	o.mu.RLock()
	cb := o.callback
	o.mu.RUnlock()

	if cb != nil {
		cb(frame)
	}

	select {
	case o.frameCh <- frame:
	default:
		o.dropped.Add(1)
	}
}

// Stats returns a snapshot of the output's counters.
func (o *Output) Stats() OutputStats {
	return OutputStats{
		Converted: o.converted.Load(),
		Skipped:   o.skipped.Load(),
		Dropped:   o.dropped.Load(),
	}
}
