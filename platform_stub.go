//go:build !darwin

package screencap

import "errors"

// InitPlatform reports that no platform sample bindings exist for this OS.
// The conversion path itself is portable; only the CMSampleBuffer/
// CVPixelBuffer backing is darwin-specific.
func InitPlatform() error {
	return errors.New("platform capture bindings are only available on darwin")
}
