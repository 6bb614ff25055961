package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"
)

const (
	// SizeBudgetBytes is the soft ceiling the compression loop tries to
	// satisfy before giving up gracefully.
	SizeBudgetBytes = 50 * 1024

	initialBox     = 600
	initialQuality = 80
	minQuality     = 10
	minBox         = 200
)

// compressState holds the two knobs of the converging search:
// JPEG quality and the bounding-box size in pixels.
type compressState struct {
	quality int
	box     int
}

// exhausted reports that neither knob can shrink further.
func (s compressState) exhausted() bool {
	return s.quality <= minQuality && s.box <= minBox
}

// next applies one transition: drop quality while it is above 20, then
// shrink the box by 50px and reset quality to 50. Once the box hits its
// floor, quality drains down to the floor too, so the search always
// terminates.
func (s compressState) next() compressState {
	switch {
	case s.quality > 20:
		s.quality -= 10
	case s.box > minBox:
		s.box -= 50
		s.quality = 50
	default:
		s.quality -= 10
	}
	return s
}

// CompressToBudget re-encodes src as JPEG, shrinking quality and
// dimensions until the output fits under SizeBudgetBytes. When both
// knobs are exhausted it returns the best-effort result rather than
// failing.
func CompressToBudget(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	state := compressState{quality: initialQuality, box: initialBox}

	out, err := encodeJPEG(img, state)
	if err != nil {
		return nil, err
	}

	for len(out) > SizeBudgetBytes && !state.exhausted() {
		state = state.next()

		out, err = encodeJPEG(img, state)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// encodeJPEG scales the source into the state's bounding box (aspect
// preserved) and encodes at the state's quality.
func encodeJPEG(img image.Image, s compressState) ([]byte, error) {
	scaled := resize.Thumbnail(uint(s.box), uint(s.box), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}
