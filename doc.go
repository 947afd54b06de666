// Package screencap converts decoded screen-capture frames delivered by the
// platform capture subsystem into owned, self-describing pixel frames.
//
// The capture subsystem hands over opaque samples whose pixel memory is only
// addressable between a lock and a matching unlock, whose rows may carry
// padding beyond the logical width, and whose planes may use different
// sampling rates. This package copies that foreign memory out into frames the
// caller fully owns, in four layouts: packed RGB, packed BGR, packed BGRA,
// and biplanar 4:2:0 luma/chroma.
//
// # Architecture
//
//	Sample -> completeness gate (biplanar only) -> lock -> bounds ->
//	plane copy -> crop/channel transform -> unlock -> Frame
//
// CreateRGBFrame, CreateBGRFrame, CreateBGRAFrame and CreateYUVFrame run this
// sequence for one sample each; a nil result means the sample produced no
// frame and the capture tick should simply be skipped. Output bundles the
// per-format conversion with callback/channel delivery for push-style capture
// callbacks.
//
// # Platform Bindings
//
// On darwin the Sample and PixelBuffer interfaces are backed by CMSampleBuffer
// and CVPixelBuffer references through purego (CGO_ENABLED=0); call
// InitPlatform once before wrapping references with NewCMSample. Other
// platforms can implement the interfaces directly. PatternSource provides an
// in-memory implementation for tests and examples.
//
// Conversion is synchronous and stateless across calls: no internal
// goroutines, queues, retries or timeouts. Each call runs to completion on
// the thread that delivered the sample.
package screencap
