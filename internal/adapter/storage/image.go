package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotAnImage = errors.New("file is not a supported image")
	ErrTooLarge   = errors.New("image exceeds the size limit")
)

var imageFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

// webp is accepted as is: imaging cannot decode it.
const webpType = "image/webp"

type preparedImage struct {
	data        []byte
	contentType string
	ext         string
}

// prepareImage sniffs the content type from the bytes, ignoring the
// client's filename, and downscales images larger than maxDimension on
// either side.
func prepareImage(data []byte, maxDimension int) (*preparedImage, error) {
	mt := mimetype.Detect(data)
	contentType := mt.String()

	if contentType == webpType {
		return &preparedImage{data: data, contentType: contentType, ext: mt.Extension()}, nil
	}

	format, ok := imageFormats[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, contentType)
	}

	out := &preparedImage{data: data, contentType: contentType, ext: mt.Extension()}
	if maxDimension <= 0 {
		return out, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension {
		return out, nil
	}

	resized := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	out.data = buf.Bytes()

	return out, nil
}
