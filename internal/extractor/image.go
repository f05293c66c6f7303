package extractor

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/31d4r/Raven/internal/engine"
	"github.com/31d4r/Raven/internal/logger"
)

// decodable formats are checked with image.DecodeConfig; other image types
// (HEIC, TIFF) are trusted once their signature sniffs as an image.
var decodable = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

type imageExtractor struct {
	ocr    engine.Recognizer
	logger logger.Logger
}

// NewImage creates an Extractor that OCRs images.
func NewImage(ocr engine.Recognizer, log logger.Logger) Extractor {
	return &imageExtractor{ocr: ocr, logger: log}
}

func (e *imageExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := checkImage(path); err != nil {
		return "", err
	}

	regions, err := e.ocr.Recognize(ctx, path)
	if errors.Is(err, engine.ErrUnavailable) {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}

	return strings.Join(regions, "\n"), nil
}

func checkImage(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return fmt.Errorf("%w: content is %s", ErrDecode, mtype.String())
	}
	if !decodable[mtype.String()] {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
