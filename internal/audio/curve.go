package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/olivier-w/milkyway/internal/fourier"
)

const readChunk = 4096

// Curve is a stereo recording read back as a planar path. Samples are in
// [-1, 1] with Im pointing up.
type Curve struct {
	Title   string
	Samples []fourier.Complex
}

// Scaled returns the samples stretched to the given radius.
func (c Curve) Scaled(radius float64) []fourier.Complex {
	out := make([]fourier.Complex, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Scale(radius)
	}
	return out
}

// LoadCurve decodes a stereo audio file into at most maxPoints samples,
// picked evenly across the whole file. Left is X, right is Y.
func LoadCurve(path string, maxPoints int) (Curve, error) {
	if maxPoints < 1 {
		maxPoints = 1
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExt(ext) {
		return Curve{}, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, ext, SupportedExtsList())
	}

	f, err := os.Open(path)
	if err != nil {
		return Curve{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := newSource(f)
	if err != nil {
		return Curve{}, err
	}
	if src.channels() < 2 {
		return Curve{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotStereo)
	}

	step := int64(1)
	if total := src.length(); total > int64(maxPoints) {
		step = (total + int64(maxPoints) - 1) / int64(maxPoints)
	}

	samples := make([]fourier.Complex, 0, min(maxPoints, readChunk))
	buf := make([]frame, readChunk)
	var index int64
	for len(samples) < maxPoints {
		n, err := src.readFrames(buf)
		for _, fr := range buf[:n] {
			if index%step == 0 && len(samples) < maxPoints {
				samples = append(samples, fourier.Complex{Re: fr[0], Im: fr[1]})
			}
			index++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Curve{}, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
		}
	}

	log.Printf("import: %s, %d frames, kept %d (every %d)", path, index, len(samples), step)
	return Curve{Title: readTitle(path), Samples: samples}, nil
}

// readTitle reads an ID3v2 title from MP3 files, falling back to the file
// name.
func readTitle(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			if title := strings.TrimSpace(tag.Title()); title != "" {
				return title
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
