package screencap

// CropStride trims per-row padding from a packed 4-byte-per-pixel buffer.
// data holds height rows of bytesPerRow bytes each; the result holds height
// rows of exactly width*4 bytes, keeping the first width*4 bytes of every
// source row. When the buffer carries no padding the input is returned as is.
func CropStride(data []byte, bytesPerRow, width, height int) []byte {
	rowBytes := width * 4
	if bytesPerRow == rowBytes {
		return data
	}
	out := make([]byte, 0, rowBytes*height)
	for y := 0; y < height; y++ {
		row := data[y*bytesPerRow:]
		out = append(out, row[:rowBytes]...)
	}
	return out
}

// RemoveAlphaChannel converts packed BGRA pixels to BGR by dropping every
// fourth byte. The pixel count is preserved exactly.
func RemoveAlphaChannel(data []byte) []byte {
	out := make([]byte, 0, len(data)/4*3)
	for i := 0; i+4 <= len(data); i += 4 {
		out = append(out, data[i], data[i+1], data[i+2])
	}
	return out
}

// BGRAToRGB converts packed BGRA pixels to RGB: the alpha byte is dropped and
// the blue and red channels swap positions. The pixel count is preserved
// exactly.
func BGRAToRGB(data []byte) []byte {
	out := make([]byte, 0, len(data)/4*3)
	for i := 0; i+4 <= len(data); i += 4 {
		out = append(out, data[i+2], data[i+1], data[i])
	}
	return out
}
