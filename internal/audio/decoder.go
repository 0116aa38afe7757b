package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// frame is one stereo sample pair scaled to [-1, 1].
type frame [2]float64

// frameSource is implemented by every format-specific decoder.
type frameSource interface {
	// readFrames fills dst and returns the number of frames written. It
	// returns io.EOF once the stream is exhausted.
	readFrames(dst []frame) (int, error)
	// length returns the total number of frames, or -1 if unknown.
	length() int64
	channels() int
}

// newSource detects the format by file extension.
func newSource(f *os.File) (frameSource, error) {
	ext := strings.ToLower(filepath.Ext(f.Name()))
	switch ext {
	case ".mp3":
		return newMP3Source(f)
	case ".wav":
		return newWAVSource(f)
	case ".flac":
		return newFLACSource(f)
	case ".ogg":
		return newOGGSource(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// --- MP3 ---

// mp3Source reads go-mp3 output, which is always 16-bit stereo.
type mp3Source struct {
	dec *mp3.Decoder
	raw []byte
}

func newMP3Source(f *os.File) (*mp3Source, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Source{dec: dec}, nil
}

func (s *mp3Source) readFrames(dst []frame) (int, error) {
	need := len(dst) * 4
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	n, err := io.ReadFull(s.dec, s.raw[:need])
	frames := n / 4
	for i := range frames {
		l := int16(binary.LittleEndian.Uint16(s.raw[i*4:]))
		r := int16(binary.LittleEndian.Uint16(s.raw[i*4+2:]))
		dst[i] = frame{float64(l) / 32768, float64(r) / 32768}
	}
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	if frames > 0 && err == io.EOF {
		err = nil
	}
	return frames, err
}

func (s *mp3Source) length() int64 { return s.dec.Length() / 4 }
func (s *mp3Source) channels() int { return 2 }

// --- WAV ---

type wavSource struct {
	dec      *wav.Decoder
	buf      *goaudio.IntBuffer
	nchans   int
	bitDepth int
	frames   int64
}

func newWAVSource(f *os.File) (*wavSource, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	nchans := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	var frames int64 = -1
	if frameSize := int64(nchans) * int64(bitDepth) / 8; frameSize > 0 {
		frames = dec.PCMLen() / frameSize
	}
	return &wavSource{
		dec:      dec,
		buf:      &goaudio.IntBuffer{Format: dec.Format()},
		nchans:   nchans,
		bitDepth: bitDepth,
		frames:   frames,
	}, nil
}

func (s *wavSource) readFrames(dst []frame) (int, error) {
	need := len(dst) * s.nchans
	if cap(s.buf.Data) < need {
		s.buf.Data = make([]int, need)
	}
	s.buf.Data = s.buf.Data[:need]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("reading WAV samples: %w", err)
	}
	frames := n / s.nchans
	if frames == 0 {
		return 0, io.EOF
	}
	for i := range frames {
		base := i * s.nchans
		dst[i] = frame{s.scale(s.buf.Data[base]), s.scale(s.buf.Data[base+1])}
	}
	return frames, nil
}

func (s *wavSource) scale(v int) float64 {
	if s.bitDepth == 8 {
		// 8-bit WAV is unsigned
		return clampUnit(float64(v-128) / 128)
	}
	return clampUnit(float64(v) / float64(int64(1)<<(s.bitDepth-1)))
}

func (s *wavSource) length() int64 { return s.frames }
func (s *wavSource) channels() int { return s.nchans }

// --- FLAC ---

type flacSource struct {
	stream  *flac.Stream
	pending []frame
	bps     int
}

func newFLACSource(f *os.File) (*flacSource, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	return &flacSource{stream: stream, bps: int(stream.Info.BitsPerSample)}, nil
}

func (s *flacSource) readFrames(dst []frame) (int, error) {
	for len(s.pending) == 0 {
		fr, err := s.stream.ParseNext()
		if err != nil {
			return 0, err
		}
		full := float64(int64(1) << (s.bps - 1))
		left, right := fr.Subframes[0].Samples, fr.Subframes[1].Samples
		for i := range left {
			s.pending = append(s.pending, frame{
				clampUnit(float64(left[i]) / full),
				clampUnit(float64(right[i]) / full),
			})
		}
	}
	n := copy(dst, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *flacSource) length() int64 {
	if s.stream.Info.NSamples == 0 {
		return -1
	}
	return int64(s.stream.Info.NSamples)
}

func (s *flacSource) channels() int { return int(s.stream.Info.NChannels) }

// --- OGG Vorbis ---

type oggSource struct {
	reader *oggvorbis.Reader
	raw    []float32
}

func newOGGSource(f *os.File) (*oggSource, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	return &oggSource{reader: reader}, nil
}

func (s *oggSource) readFrames(dst []frame) (int, error) {
	nchans := s.reader.Channels()
	need := len(dst) * nchans
	if cap(s.raw) < need {
		s.raw = make([]float32, need)
	}
	n, err := s.reader.Read(s.raw[:need])
	frames := n / nchans
	for i := range frames {
		base := i * nchans
		dst[i] = frame{clampUnit(float64(s.raw[base])), clampUnit(float64(s.raw[base+1]))}
	}
	if frames > 0 && err == io.EOF {
		err = nil
	}
	if frames == 0 && err == nil {
		err = io.EOF
	}
	return frames, err
}

func (s *oggSource) length() int64 { return s.reader.Length() }
func (s *oggSource) channels() int { return s.reader.Channels() }
