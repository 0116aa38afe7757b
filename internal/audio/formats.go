// Package audio moves curves in and out of stereo audio, where the left
// channel carries X and the right channel carries Y.
package audio

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for files that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNotStereo is returned for audio with fewer than two channels.
	ErrNotStereo = errors.New("audio is not stereo")
	// ErrNoPath is returned when there is nothing to write.
	ErrNoPath = errors.New("no path to export")
)

var curveExts = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".ogg":  true,
	".flac": true,
}

// IsSupportedExt reports whether curves can be imported from files with
// this extension.
func IsSupportedExt(ext string) bool {
	return curveExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of importable formats.
func SupportedExtsList() string {
	return ".wav, .mp3, .ogg, .flac"
}
