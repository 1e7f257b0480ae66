package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// JPEGQuality is the quality used when saving to a .jpg or .jpeg path.
const JPEGQuality = 95

// Save encodes img to path. The encoder follows the extension: .jpg and
// .jpeg produce JPEG, .bmp produces BMP, and anything else produces PNG.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, encoderFor(path)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(JPEGQuality)
	case ".bmp":
		return imgio.BMPEncoder()
	default:
		return imgio.PNGEncoder()
	}
}

// SnapshotDir writes intermediate canvases as image{index}.png inside Dir.
// The directory is created on the first write.
type SnapshotDir struct {
	Dir string
}

// WriteSnapshot renders canvas and saves it under Dir.
func (s SnapshotDir) WriteSnapshot(index int, canvas *LabaGrid) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return Save(s.Path(index), ToNRGBA(canvas))
}

// Path returns the file written for index.
func (s SnapshotDir) Path(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("image%d.png", index))
}
