package audio

import (
	"fmt"
	"image"
	"io"
	"log"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	exportBitDepth = 16
	exportChannels = 2
	// headroom keeps normalized paths away from full scale.
	headroom = 0.9
)

// pathFrames converts canvas positions around pivot into stereo frames.
// The path is scaled so its farthest point reaches headroom.
func pathFrames(path []image.Point, pivot image.Point) []frame {
	extent := 0.0
	for _, p := range path {
		extent = math.Max(extent, math.Abs(float64(p.X-pivot.X)))
		extent = math.Max(extent, math.Abs(float64(pivot.Y-p.Y)))
	}
	if extent == 0 {
		extent = 1
	}
	out := make([]frame, len(path))
	for i, p := range path {
		out[i] = frame{
			float64(p.X-pivot.X) / extent * headroom,
			float64(pivot.Y-p.Y) / extent * headroom,
		}
	}
	return out
}

// ExportWAV writes path as a 16-bit stereo WAV file, repeated loops times.
// Played on an X/Y oscilloscope the file redraws the path.
func ExportWAV(w io.WriteSeeker, path []image.Point, pivot image.Point, rate, loops int) error {
	if len(path) == 0 {
		return ErrNoPath
	}
	if loops < 1 {
		loops = 1
	}

	frames := pathFrames(path, pivot)
	data := make([]int, 0, len(frames)*exportChannels*loops)
	for range loops {
		for _, fr := range frames {
			data = append(data, int(math.Round(fr[0]*32767)), int(math.Round(fr[1]*32767)))
		}
	}

	enc := wav.NewEncoder(w, rate, exportBitDepth, exportChannels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: exportChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: exportBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing WAV file: %w", err)
	}
	log.Printf("export: %d frames x %d loops at %d Hz", len(frames), loops, rate)
	return nil
}
