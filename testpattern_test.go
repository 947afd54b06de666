package screencap

import "testing"

func TestNewPatternSource_Defaults(t *testing.T) {
	src, err := NewPatternSource(PatternConfig{})
	if err != nil {
		t.Fatalf("NewPatternSource() error = %v", err)
	}
	config := src.Config()
	if config.Width != 1280 || config.Height != 720 || config.FPS != 30 {
		t.Errorf("Config() = %+v, want 1280x720@30", config)
	}
	if config.Format != PixelFormatBGRA {
		t.Errorf("Format = %v, want BGRA", config.Format)
	}
}

func TestNewPatternSource_Invalid(t *testing.T) {
	if _, err := NewPatternSource(PatternConfig{Format: PixelFormatRGB}); err == nil {
		t.Error("want error for a non-capture pattern format")
	}
	if _, err := NewPatternSource(PatternConfig{Width: 15, Height: 8, Format: PixelFormatYUV420}); err == nil {
		t.Error("want error for odd biplanar dimensions")
	}
}

func TestPatternSource_PackedSamples(t *testing.T) {
	src, err := NewPatternSource(PatternConfig{Width: 8, Height: 4, FPS: 30, RowPadding: 12})
	if err != nil {
		t.Fatalf("NewPatternSource() error = %v", err)
	}

	sample := src.NextSample()
	frame := CreateBGRAFrame(sample)
	if frame == nil {
		t.Fatal("CreateBGRAFrame() = nil, want frame")
	}

	if frame.Width != 8 || frame.Height != 4 {
		t.Errorf("dimensions = %dx%d, want 8x4", frame.Width, frame.Height)
	}
	// Row padding is trimmed during assembly.
	if len(frame.Data) != 8*4*4 {
		t.Errorf("Data len = %d, want %d", len(frame.Data), 8*4*4)
	}
	for i := 3; i < len(frame.Data); i += 4 {
		if frame.Data[i] != 255 {
			t.Fatalf("alpha at %d = %d, want 255", i, frame.Data[i])
		}
	}

	// The sample's buffer must be unlocked again after conversion.
	if ms := sample.(*memorySample); ms.buffer.locked {
		t.Error("buffer still locked after conversion")
	}
}

func TestPatternSource_Timestamps(t *testing.T) {
	src, err := NewPatternSource(PatternConfig{Width: 4, Height: 4, FPS: 30})
	if err != nil {
		t.Fatalf("NewPatternSource() error = %v", err)
	}

	first := CreateBGRAFrame(src.NextSample())
	second := CreateBGRAFrame(src.NextSample())
	if first == nil || second == nil {
		t.Fatal("want frames from pattern samples")
	}
	if first.DisplayTime != 0 {
		t.Errorf("first DisplayTime = %d, want 0", first.DisplayTime)
	}
	if second.DisplayTime != 33333333 {
		t.Errorf("second DisplayTime = %d, want 33333333", second.DisplayTime)
	}
}

func TestPatternSource_BiplanarSamples(t *testing.T) {
	src, err := NewPatternSource(PatternConfig{Width: 8, Height: 4, FPS: 30, RowPadding: 4, Format: PixelFormatYUV420})
	if err != nil {
		t.Fatalf("NewPatternSource() error = %v", err)
	}

	frame := CreateYUVFrame(src.NextSample())
	if frame == nil {
		t.Fatal("CreateYUVFrame() = nil, want frame")
	}

	if frame.LuminanceStride != 12 || frame.ChrominanceStride != 12 {
		t.Errorf("strides = %d/%d, want 12/12", frame.LuminanceStride, frame.ChrominanceStride)
	}
	if len(frame.Luminance) != 4*12 {
		t.Errorf("Luminance len = %d, want %d", len(frame.Luminance), 4*12)
	}
	if len(frame.Chrominance) != 4*12/2 {
		t.Errorf("Chrominance len = %d, want %d", len(frame.Chrominance), 4*12/2)
	}
	for y := 0; y < 2; y++ {
		for _, v := range frame.ChrominanceRow(y) {
			if v != 128 {
				t.Fatalf("chroma row %d = %d, want neutral 128", y, v)
			}
		}
	}
}
