// Core frame types produced by the conversion path.
package screencap

// PixelFormat identifies the layout of a converted frame.
type PixelFormat int

const (
	PixelFormatBGRA   PixelFormat = iota // Packed BGRA, 4 bytes per pixel (capture-native)
	PixelFormatBGR                       // Packed BGR, 3 bytes per pixel
	PixelFormatRGB                       // Packed RGB, 3 bytes per pixel
	PixelFormatYUV420                    // Biplanar 4:2:0 (luma + interleaved chroma)
)

func (p PixelFormat) String() string {
	switch p {
	case PixelFormatRGB:
		return "RGB"
	case PixelFormatBGR:
		return "BGR"
	case PixelFormatBGRA:
		return "BGRA"
	case PixelFormatYUV420:
		return "YUV420"
	default:
		return "Unknown"
	}
}

// PlaneCount returns the number of planes for this pixel format.
func (p PixelFormat) PlaneCount() int {
	switch p {
	case PixelFormatRGB, PixelFormatBGR, PixelFormatBGRA:
		return 1
	case PixelFormatYUV420:
		return 2 // luma, interleaved chroma
	default:
		return 0
	}
}

// BytesPerPixel returns the packed bytes per pixel, or 0 for planar formats.
func (p PixelFormat) BytesPerPixel() int {
	switch p {
	case PixelFormatRGB, PixelFormatBGR:
		return 3
	case PixelFormatBGRA:
		return 4
	default:
		return 0
	}
}

// Frame is one owned, converted frame. Implementations never alias the source
// pixel buffer; the platform may unlock or reuse it immediately after
// conversion.
type Frame interface {
	// PTS returns the presentation timestamp in nanoseconds since an
	// arbitrary monotonic origin.
	PTS() uint64

	// Format identifies the pixel layout.
	Format() PixelFormat

	// Bounds returns the logical pixel dimensions. Both are always > 0.
	Bounds() (width, height int32)
}

// RGBFrame is a packed frame with 3 bytes per pixel in R, G, B order.
// Rows are tightly packed at Width*3 bytes with no padding.
type RGBFrame struct {
	DisplayTime uint64 // Presentation timestamp in nanoseconds
	Width       int32
	Height      int32
	Data        []byte
}

func (f *RGBFrame) PTS() uint64            { return f.DisplayTime }
func (f *RGBFrame) Format() PixelFormat    { return PixelFormatRGB }
func (f *RGBFrame) Bounds() (int32, int32) { return f.Width, f.Height }

// BGRFrame is a packed frame with 3 bytes per pixel in B, G, R order.
// Rows are tightly packed at Width*3 bytes with no padding.
type BGRFrame struct {
	DisplayTime uint64
	Width       int32
	Height      int32
	Data        []byte
}

func (f *BGRFrame) PTS() uint64            { return f.DisplayTime }
func (f *BGRFrame) Format() PixelFormat    { return PixelFormatBGR }
func (f *BGRFrame) Bounds() (int32, int32) { return f.Width, f.Height }

// BGRAFrame is a packed frame with 4 bytes per pixel in B, G, R, A order.
// Rows are tightly packed at Width*4 bytes; source row padding has already
// been trimmed during the copy.
type BGRAFrame struct {
	DisplayTime uint64
	Width       int32
	Height      int32
	Data        []byte
}

func (f *BGRAFrame) PTS() uint64            { return f.DisplayTime }
func (f *BGRAFrame) Format() PixelFormat    { return PixelFormatBGRA }
func (f *BGRAFrame) Bounds() (int32, int32) { return f.Width, f.Height }

// Clone creates a deep copy of the frame.
func (f *BGRAFrame) Clone() *BGRAFrame {
	clone := *f
	if f.Data != nil {
		clone.Data = make([]byte, len(f.Data))
		copy(clone.Data, f.Data)
	}
	return &clone
}

// YUVFrame is a biplanar 4:2:0 frame: a full-resolution luma plane and a
// half-resolution interleaved chroma plane. Unlike the packed frames, the
// planes keep their source row padding; consumers must walk rows by the
// exposed strides. The chroma plane holds Height*ChrominanceStride/2 bytes
// (half-height subsampling).
type YUVFrame struct {
	DisplayTime       uint64
	Width             int32
	Height            int32
	Luminance         []byte
	LuminanceStride   int32
	Chrominance       []byte
	ChrominanceStride int32
}

func (f *YUVFrame) PTS() uint64            { return f.DisplayTime }
func (f *YUVFrame) Format() PixelFormat    { return PixelFormatYUV420 }
func (f *YUVFrame) Bounds() (int32, int32) { return f.Width, f.Height }

// LuminanceRow returns row y of the luma plane, trimmed to Width bytes.
func (f *YUVFrame) LuminanceRow(y int) []byte {
	off := y * int(f.LuminanceStride)
	return f.Luminance[off : off+int(f.Width)]
}

// ChrominanceRow returns row y of the interleaved chroma plane, trimmed to
// Width bytes (Width/2 chroma pairs).
func (f *YUVFrame) ChrominanceRow(y int) []byte {
	off := y * int(f.ChrominanceStride)
	return f.Chrominance[off : off+int(f.Width)]
}

// Clone creates a deep copy of the frame.
func (f *YUVFrame) Clone() *YUVFrame {
	clone := *f
	if f.Luminance != nil {
		clone.Luminance = make([]byte, len(f.Luminance))
		copy(clone.Luminance, f.Luminance)
	}
	if f.Chrominance != nil {
		clone.Chrominance = make([]byte, len(f.Chrominance))
		copy(clone.Chrominance, f.Chrominance)
	}
	return &clone
}
