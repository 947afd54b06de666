// Synthetic sample source for exercising the conversion path without a live
// capture session.
package screencap

import (
	"errors"
	"fmt"
)

// PatternConfig configures a synthetic sample source.
type PatternConfig struct {
	Width      int         // Frame width (default: 1280)
	Height     int         // Frame height (default: 720)
	FPS        int         // Presentation timestamp rate (default: 30)
	RowPadding int         // Extra bytes appended to every plane row
	Format     PixelFormat // PixelFormatBGRA or PixelFormatYUV420 (default: BGRA)
}

// DefaultPatternConfig returns a default pattern configuration.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		Width:  1280,
		Height: 720,
		FPS:    30,
		Format: PixelFormatBGRA,
	}
}

// PatternSource generates in-memory samples carrying an animated gradient.
// The samples implement the same borrowed-buffer contract as platform
// samples: plane memory is readable only between Lock and Unlock, rows carry
// the configured padding, and each sample's attachments mark the frame
// complete.
type PatternSource struct {
	config     PatternConfig
	frameCount uint64
}

// NewPatternSource creates a pattern source. Zero dimensions and rates fall
// back to the defaults; biplanar patterns require even dimensions.
func NewPatternSource(config PatternConfig) (*PatternSource, error) {
	def := DefaultPatternConfig()
	if config.Width <= 0 {
		config.Width = def.Width
	}
	if config.Height <= 0 {
		config.Height = def.Height
	}
	if config.FPS <= 0 {
		config.FPS = def.FPS
	}
	if config.RowPadding < 0 {
		config.RowPadding = 0
	}
	switch config.Format {
	case PixelFormatBGRA:
	case PixelFormatYUV420:
		if config.Width%2 != 0 || config.Height%2 != 0 {
			return nil, fmt.Errorf("biplanar pattern requires even dimensions, got %dx%d", config.Width, config.Height)
		}
	default:
		return nil, fmt.Errorf("unsupported pattern format: %s", config.Format)
	}
	return &PatternSource{config: config}, nil
}

// Config returns the source configuration.
func (p *PatternSource) Config() PatternConfig {
	return p.config
}

// NextSample generates the next sample. Timestamps advance by 1/FPS seconds
// per call from a zero origin.
func (p *PatternSource) NextSample() Sample {
	seconds := float64(p.frameCount) / float64(p.config.FPS)
	phase := byte(p.frameCount * 3)
	p.frameCount++

	var buf *memoryBuffer
	if p.config.Format == PixelFormatYUV420 {
		buf = p.biplanarBuffer(phase)
	} else {
		buf = p.packedBuffer(phase)
	}

	return &memorySample{
		seconds: seconds,
		buffer:  buf,
		atts:    []Attachment{mapAttachment{FrameStatusKey: FrameStatusComplete}},
	}
}

func (p *PatternSource) packedBuffer(phase byte) *memoryBuffer {
	w, h := p.config.Width, p.config.Height
	stride := w*4 + p.config.RowPadding
	data := make([]byte, h*stride)
	for y := 0; y < h; y++ {
		row := data[y*stride:]
		for x := 0; x < w; x++ {
			row[x*4] = byte(x*255/w) + phase // B
			row[x*4+1] = byte(y * 255 / h)   // G
			row[x*4+2] = phase               // R
			row[x*4+3] = 255                 // A
		}
	}
	return &memoryBuffer{
		width:   w,
		height:  h,
		planes:  [][]byte{data},
		strides: []int{stride},
	}
}

func (p *PatternSource) biplanarBuffer(phase byte) *memoryBuffer {
	w, h := p.config.Width, p.config.Height
	lumaStride := w + p.config.RowPadding
	luma := make([]byte, h*lumaStride)
	for y := 0; y < h; y++ {
		row := luma[y*lumaStride:]
		for x := 0; x < w; x++ {
			row[x] = byte(x*255/w) + phase
		}
	}

	// Interleaved CbCr pairs at half resolution on both axes: w bytes per
	// row, h/2 rows. Neutral chroma keeps the pattern grayscale.
	chromaStride := w + p.config.RowPadding
	chroma := make([]byte, h/2*chromaStride)
	for y := 0; y < h/2; y++ {
		row := chroma[y*chromaStride:]
		for x := 0; x < w; x++ {
			row[x] = 128
		}
	}

	return &memoryBuffer{
		width:   w,
		height:  h,
		planes:  [][]byte{luma, chroma},
		strides: []int{lumaStride, chromaStride},
	}
}

// memorySample is an in-memory Sample.
type memorySample struct {
	seconds float64
	buffer  *memoryBuffer
	atts    []Attachment
}

func (s *memorySample) PresentationSeconds() float64 { return s.seconds }

func (s *memorySample) PixelBuffer() PixelBuffer {
	if s.buffer == nil {
		return nil
	}
	return s.buffer
}

func (s *memorySample) Attachments() []Attachment { return s.atts }

// mapAttachment is an Attachment over a plain map.
type mapAttachment map[string]int64

func (a mapAttachment) Int64(key string) (int64, bool) {
	value, ok := a[key]
	return value, ok
}

// memoryBuffer is an in-memory PixelBuffer enforcing the lock contract.
type memoryBuffer struct {
	width   int
	height  int
	planes  [][]byte
	strides []int
	locked  bool
}

func (b *memoryBuffer) Lock() error {
	if b.locked {
		return errors.New("pixel buffer already locked")
	}
	b.locked = true
	return nil
}

func (b *memoryBuffer) Unlock() { b.locked = false }

func (b *memoryBuffer) Bounds() (int, int) { return b.width, b.height }

func (b *memoryBuffer) PlaneStride(plane int) int {
	if plane < 0 || plane >= len(b.strides) {
		return 0
	}
	return b.strides[plane]
}

func (b *memoryBuffer) PlaneBytes(plane, n int) []byte {
	if !b.locked || plane < 0 || plane >= len(b.planes) || n <= 0 {
		return nil
	}
	p := b.planes[plane]
	if n > len(p) {
		return p
	}
	return p[:n]
}
