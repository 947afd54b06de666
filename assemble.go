// Frame assembly: the lock -> bounds -> copy -> convert -> unlock sequence
// that turns one borrowed sample into one owned frame.
package screencap

// frameComplete reports whether the sample's capture status marks the frame
// complete. Missing attachments, a missing status entry, or an unreadable
// status value all count as incomplete.
func frameComplete(s Sample) bool {
	atts := s.Attachments()
	if len(atts) == 0 {
		return false
	}
	status, ok := atts[0].Int64(FrameStatusKey)
	return ok && status == FrameStatusComplete
}

// copyPlane copies n bytes of plane memory into an owned buffer. The buffer
// must be locked. A view shorter than n means the plane cannot back the
// geometry just read; nil is returned and the caller produces no frame.
func copyPlane(buf PixelBuffer, plane, n int) []byte {
	src := buf.PlaneBytes(plane, n)
	if len(src) != n {
		return nil
	}
	out := make([]byte, n)
	copy(out, src)
	return out
}

// packedPlane copies the packed plane of s's pixel buffer with row padding
// trimmed, so data holds height rows of width*4 bytes. ok is false when the
// sample has no buffer, the lock fails, the buffer reports a zero dimension,
// or the plane cannot back its declared geometry.
func packedPlane(s Sample) (data []byte, width, height int, ok bool) {
	buf := s.PixelBuffer()
	if buf == nil {
		return nil, 0, 0, false
	}
	if err := buf.Lock(); err != nil {
		return nil, 0, 0, false
	}
	defer buf.Unlock()

	width, height = buf.Bounds()
	if width == 0 || height == 0 {
		return nil, 0, 0, false
	}

	stride := buf.PlaneStride(PlaneLuminance)
	raw := copyPlane(buf, PlaneLuminance, height*stride)
	if raw == nil {
		return nil, 0, 0, false
	}
	return CropStride(raw, stride, width, height), width, height, true
}

// CreateBGRAFrame converts s into a packed BGRA frame. A nil result means the
// sample produced no frame; the caller should skip this capture tick.
func CreateBGRAFrame(s Sample) *BGRAFrame {
	displayTime := PTSNanoseconds(s)
	data, width, height, ok := packedPlane(s)
	if !ok {
		return nil
	}
	return &BGRAFrame{
		DisplayTime: displayTime,
		Width:       int32(width),
		Height:      int32(height),
		Data:        data,
	}
}

// CreateBGRFrame converts s into a packed BGR frame by trimming row padding
// and dropping the alpha channel. A nil result means no frame.
func CreateBGRFrame(s Sample) *BGRFrame {
	displayTime := PTSNanoseconds(s)
	data, width, height, ok := packedPlane(s)
	if !ok {
		return nil
	}
	return &BGRFrame{
		DisplayTime: displayTime,
		Width:       int32(width),
		Height:      int32(height),
		Data:        RemoveAlphaChannel(data),
	}
}

// CreateRGBFrame converts s into a packed RGB frame by trimming row padding,
// dropping the alpha channel and swapping the blue and red channels. A nil
// result means no frame.
func CreateRGBFrame(s Sample) *RGBFrame {
	displayTime := PTSNanoseconds(s)
	data, width, height, ok := packedPlane(s)
	if !ok {
		return nil
	}
	return &RGBFrame{
		DisplayTime: displayTime,
		Width:       int32(width),
		Height:      int32(height),
		Data:        BGRAToRGB(data),
	}
}

// CreateYUVFrame converts s into a biplanar 4:2:0 frame. The sample's capture
// status must mark the frame complete; the gate runs before any buffer access.
// Both planes are copied with their row padding intact and the strides are
// exposed on the frame, the chroma plane at half height. A nil result means
// no frame.
func CreateYUVFrame(s Sample) *YUVFrame {
	if !frameComplete(s) {
		return nil
	}

	displayTime := PTSNanoseconds(s)
	buf := s.PixelBuffer()
	if buf == nil {
		return nil
	}
	if err := buf.Lock(); err != nil {
		return nil
	}
	defer buf.Unlock()

	width, height := buf.Bounds()
	if width == 0 || height == 0 {
		return nil
	}

	lumaStride := buf.PlaneStride(PlaneLuminance)
	luma := copyPlane(buf, PlaneLuminance, height*lumaStride)
	if luma == nil {
		return nil
	}

	chromaStride := buf.PlaneStride(PlaneChrominance)
	chroma := copyPlane(buf, PlaneChrominance, height*chromaStride/2)
	if chroma == nil {
		return nil
	}

	return &YUVFrame{
		DisplayTime:       displayTime,
		Width:             int32(width),
		Height:            int32(height),
		Luminance:         luma,
		LuminanceStride:   int32(lumaStride),
		Chrominance:       chroma,
		ChrominanceStride: int32(chromaStride),
	}
}
