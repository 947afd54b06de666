package screencap

import "testing"

func TestConvertSample(t *testing.T) {
	tests := []struct {
		format PixelFormat
		source PixelFormat
	}{
		{PixelFormatRGB, PixelFormatBGRA},
		{PixelFormatBGR, PixelFormatBGRA},
		{PixelFormatBGRA, PixelFormatBGRA},
		{PixelFormatYUV420, PixelFormatYUV420},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			src, err := NewPatternSource(PatternConfig{Width: 16, Height: 8, FPS: 30, Format: tt.source})
			if err != nil {
				t.Fatalf("NewPatternSource() error = %v", err)
			}

			frame := ConvertSample(src.NextSample(), tt.format)
			if frame == nil {
				t.Fatal("ConvertSample() = nil, want frame")
			}
			if frame.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", frame.Format(), tt.format)
			}
			if w, h := frame.Bounds(); w != 16 || h != 8 {
				t.Errorf("Bounds() = %dx%d, want 16x8", w, h)
			}
		})
	}
}

func TestConvertSample_NoFrame(t *testing.T) {
	if ConvertSample(&fakeSample{}, PixelFormatBGRA) != nil {
		t.Error("want nil for a sample without a pixel buffer")
	}
	if ConvertSample(&fakeSample{}, PixelFormat(99)) != nil {
		t.Error("want nil for an unsupported format")
	}
}

func TestNewOutput_UnsupportedFormat(t *testing.T) {
	if _, err := NewOutput(PixelFormat(99), 1); err == nil {
		t.Error("NewOutput() error = nil, want error")
	}
}

func TestOutput_HandleSample(t *testing.T) {
	out, err := NewOutput(PixelFormatRGB, 4)
	if err != nil {
		t.Fatalf("NewOutput() error = %v", err)
	}

	var fromCallback Frame
	out.SetCallback(func(f Frame) { fromCallback = f })

	src, err := NewPatternSource(PatternConfig{Width: 8, Height: 4, FPS: 30})
	if err != nil {
		t.Fatalf("NewPatternSource() error = %v", err)
	}

	out.HandleSample(src.NextSample())

	if fromCallback == nil {
		t.Fatal("callback did not receive a frame")
	}
	select {
	case frame := <-out.Frames():
		if frame != fromCallback {
			t.Error("channel frame differs from callback frame")
		}
	default:
		t.Fatal("channel did not receive a frame")
	}

	stats := out.Stats()
	if stats.Converted != 1 || stats.Skipped != 0 || stats.Dropped != 0 {
		t.Errorf("Stats() = %+v, want 1 converted", stats)
	}
}

func TestOutput_SkipsEmptySamples(t *testing.T) {
	out, err := NewOutput(PixelFormatBGRA, 1)
	if err != nil {
		t.Fatalf("NewOutput() error = %v", err)
	}

	out.HandleSample(&fakeSample{})

	stats := out.Stats()
	if stats.Skipped != 1 || stats.Converted != 0 {
		t.Errorf("Stats() = %+v, want 1 skipped", stats)
	}
	select {
	case <-out.Frames():
		t.Error("channel received a frame for an empty sample")
	default:
	}
}

func TestOutput_DropsWhenChannelFull(t *testing.T) {
	out, err := NewOutput(PixelFormatBGRA, 1)
	if err != nil {
		t.Fatalf("NewOutput() error = %v", err)
	}

	src, err := NewPatternSource(PatternConfig{Width: 4, Height: 4, FPS: 30})
	if err != nil {
		t.Fatalf("NewPatternSource() error = %v", err)
	}

	out.HandleSample(src.NextSample())
	out.HandleSample(src.NextSample())

	stats := out.Stats()
	if stats.Converted != 2 {
		t.Errorf("Converted = %d, want 2", stats.Converted)
	}
	if stats.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", stats.Dropped)
	}
}
