//go:build darwin

// CoreMedia/CoreVideo bindings backing the Sample and PixelBuffer interfaces
// with real ScreenCaptureKit sample buffers, loaded via purego (CGO_ENABLED=0).
package screencap

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const (
	coreVideoPath        = "/System/Library/Frameworks/CoreVideo.framework/CoreVideo"
	coreMediaPath        = "/System/Library/Frameworks/CoreMedia.framework/CoreMedia"
	coreFoundationPath   = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"
	screenCaptureKitPath = "/System/Library/Frameworks/ScreenCaptureKit.framework/ScreenCaptureKit"
)

const kCFNumberSInt64Type = 4

// cmTime mirrors CoreMedia's CMTime layout.
type cmTime struct {
	Value     int64
	Timescale int32
	Flags     uint32
	Epoch     int64
}

var (
	platformOnce sync.Once
	platformErr  error

	cvPixelBufferLockBaseAddress       func(buf uintptr, flags uint64) int32
	cvPixelBufferUnlockBaseAddress     func(buf uintptr, flags uint64) int32
	cvPixelBufferGetWidth              func(buf uintptr) uint64
	cvPixelBufferGetHeight             func(buf uintptr) uint64
	cvPixelBufferIsPlanar              func(buf uintptr) bool
	cvPixelBufferGetBaseAddress        func(buf uintptr) uintptr
	cvPixelBufferGetBytesPerRow        func(buf uintptr) uint64
	cvPixelBufferGetBaseAddressOfPlane func(buf uintptr, plane uint64) uintptr
	cvPixelBufferGetBytesPerRowOfPlane func(buf uintptr, plane uint64) uint64

	cmSampleBufferGetImageBuffer            func(sbuf uintptr) uintptr
	cmSampleBufferGetPresentationTimeStamp  func(sbuf uintptr) cmTime
	cmSampleBufferGetSampleAttachmentsArray func(sbuf uintptr, createIfNecessary int32) uintptr
	cmTimeGetSeconds                        func(t cmTime) float64

	cfArrayGetCount        func(arr uintptr) int64
	cfArrayGetValueAtIndex func(arr uintptr, idx int64) uintptr
	cfDictionaryGetValue   func(dict, key uintptr) uintptr
	cfNumberGetValue       func(num uintptr, numberType int64, valuePtr uintptr) bool

	// CFStringRef value of the SCStreamFrameInfoStatus attachment key.
	scStreamFrameInfoStatus uintptr
)

func initPlatform() {
	platformOnce.Do(func() {
		load := func(path string) uintptr {
			if platformErr != nil {
				return 0
			}
			handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err != nil {
				platformErr = fmt.Errorf("failed to load %s: %w", path, err)
				return 0
			}
			return handle
		}

		cv := load(coreVideoPath)
		cm := load(coreMediaPath)
		cf := load(coreFoundationPath)
		sck := load(screenCaptureKitPath)
		if platformErr != nil {
			return
		}

		purego.RegisterLibFunc(&cvPixelBufferLockBaseAddress, cv, "CVPixelBufferLockBaseAddress")
		purego.RegisterLibFunc(&cvPixelBufferUnlockBaseAddress, cv, "CVPixelBufferUnlockBaseAddress")
		purego.RegisterLibFunc(&cvPixelBufferGetWidth, cv, "CVPixelBufferGetWidth")
		purego.RegisterLibFunc(&cvPixelBufferGetHeight, cv, "CVPixelBufferGetHeight")
		purego.RegisterLibFunc(&cvPixelBufferIsPlanar, cv, "CVPixelBufferIsPlanar")
		purego.RegisterLibFunc(&cvPixelBufferGetBaseAddress, cv, "CVPixelBufferGetBaseAddress")
		purego.RegisterLibFunc(&cvPixelBufferGetBytesPerRow, cv, "CVPixelBufferGetBytesPerRow")
		purego.RegisterLibFunc(&cvPixelBufferGetBaseAddressOfPlane, cv, "CVPixelBufferGetBaseAddressOfPlane")
		purego.RegisterLibFunc(&cvPixelBufferGetBytesPerRowOfPlane, cv, "CVPixelBufferGetBytesPerRowOfPlane")

		purego.RegisterLibFunc(&cmSampleBufferGetImageBuffer, cm, "CMSampleBufferGetImageBuffer")
		purego.RegisterLibFunc(&cmSampleBufferGetPresentationTimeStamp, cm, "CMSampleBufferGetPresentationTimeStamp")
		purego.RegisterLibFunc(&cmSampleBufferGetSampleAttachmentsArray, cm, "CMSampleBufferGetSampleAttachmentsArray")
		purego.RegisterLibFunc(&cmTimeGetSeconds, cm, "CMTimeGetSeconds")

		purego.RegisterLibFunc(&cfArrayGetCount, cf, "CFArrayGetCount")
		purego.RegisterLibFunc(&cfArrayGetValueAtIndex, cf, "CFArrayGetValueAtIndex")
		purego.RegisterLibFunc(&cfDictionaryGetValue, cf, "CFDictionaryGetValue")
		purego.RegisterLibFunc(&cfNumberGetValue, cf, "CFNumberGetValue")

		sym, err := purego.Dlsym(sck, "SCStreamFrameInfoStatus")
		if err != nil {
			platformErr = fmt.Errorf("failed to resolve SCStreamFrameInfoStatus: %w", err)
			return
		}
		scStreamFrameInfoStatus = *(*uintptr)(unsafe.Pointer(sym))
	})
}

// InitPlatform loads the CoreVideo, CoreMedia, CoreFoundation and
// ScreenCaptureKit bindings. It is safe to call multiple times; the load
// happens once and the result is cached.
func InitPlatform() error {
	initPlatform()
	return platformErr
}

// CMSample wraps a CMSampleBufferRef delivered by an SCStream output
// callback. The reference is borrowed: it stays valid only for the duration
// of the delivery callback, so conversion must finish before returning to
// the platform.
type CMSample struct {
	ref uintptr
}

// NewCMSample wraps a raw CMSampleBufferRef. InitPlatform must have
// succeeded first.
func NewCMSample(ref uintptr) *CMSample {
	return &CMSample{ref: ref}
}

func (s *CMSample) PresentationSeconds() float64 {
	return cmTimeGetSeconds(cmSampleBufferGetPresentationTimeStamp(s.ref))
}

func (s *CMSample) PixelBuffer() PixelBuffer {
	ref := cmSampleBufferGetImageBuffer(s.ref)
	if ref == 0 {
		return nil
	}
	return &CVPixelBuffer{ref: ref}
}

func (s *CMSample) Attachments() []Attachment {
	arr := cmSampleBufferGetSampleAttachmentsArray(s.ref, 0)
	if arr == 0 {
		return nil
	}
	count := cfArrayGetCount(arr)
	atts := make([]Attachment, 0, count)
	for i := int64(0); i < count; i++ {
		atts = append(atts, cfAttachment{dict: cfArrayGetValueAtIndex(arr, i)})
	}
	return atts
}

// cfAttachment reads one CFDictionary of sample attachments.
type cfAttachment struct {
	dict uintptr
}

func (a cfAttachment) Int64(key string) (int64, bool) {
	if a.dict == 0 {
		return 0, false
	}
	var cfKey uintptr
	switch key {
	case FrameStatusKey:
		cfKey = scStreamFrameInfoStatus
	}
	if cfKey == 0 {
		return 0, false
	}
	num := cfDictionaryGetValue(a.dict, cfKey)
	if num == 0 {
		return 0, false
	}
	var value int64
	if !cfNumberGetValue(num, kCFNumberSInt64Type, uintptr(unsafe.Pointer(&value))) {
		return 0, false
	}
	return value, true
}

// CVPixelBuffer wraps a CVPixelBufferRef. Plane 0 maps to the whole-buffer
// accessors for packed buffers and to plane 0 for planar ones.
type CVPixelBuffer struct {
	ref uintptr
}

func (b *CVPixelBuffer) Lock() error {
	if status := cvPixelBufferLockBaseAddress(b.ref, 0); status != 0 {
		return fmt.Errorf("CVPixelBufferLockBaseAddress failed: %d", status)
	}
	return nil
}

func (b *CVPixelBuffer) Unlock() {
	cvPixelBufferUnlockBaseAddress(b.ref, 0)
}

func (b *CVPixelBuffer) Bounds() (int, int) {
	return int(cvPixelBufferGetWidth(b.ref)), int(cvPixelBufferGetHeight(b.ref))
}

func (b *CVPixelBuffer) PlaneStride(plane int) int {
	if plane == 0 && !cvPixelBufferIsPlanar(b.ref) {
		return int(cvPixelBufferGetBytesPerRow(b.ref))
	}
	return int(cvPixelBufferGetBytesPerRowOfPlane(b.ref, uint64(plane)))
}

func (b *CVPixelBuffer) PlaneBytes(plane, n int) []byte {
	var base uintptr
	if plane == 0 && !cvPixelBufferIsPlanar(b.ref) {
		base = cvPixelBufferGetBaseAddress(b.ref)
	} else {
		base = cvPixelBufferGetBaseAddressOfPlane(b.ref, uint64(plane))
	}
	if base == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), n)
}
