package imaging

import (
	"fmt"
	"image"
	_ "image/gif" // Register GIF format decoder
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// supportedExtensions lists the file extensions ScanLibrary accepts.
var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}

// SupportedExtensions returns the lowercase file extensions that Open can
// decode.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions)
}

// IsImageFile reports whether name carries a supported image extension.
// The comparison is case-insensitive.
func IsImageFile(name string) bool {
	return slices.Contains(supportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// Open decodes the image at path.
//
// Supported formats are PNG, JPEG, GIF, BMP, and WebP. The returned error
// names the path so that a failure inside a large library can be located.
func Open(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	return img, nil
}

// ImageCache provides thread-safe caching of decoded images to avoid
// redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once
// an image is loaded, subsequent Load() calls for the same path return the
// cached copy without disk I/O. A collage run reads every library image once,
// but the command line also decodes the target, and the same file may appear
// as both target and library entry.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict(). Once
// images are converted to Lab grids the decoded copies are no longer needed
// and can be evicted.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not
// cached.
//
// The image is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) result in separate cache entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image format
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ScanLibrary lists the image files directly inside dir.
//
// Subdirectories are not descended into. Symlinks are followed, and entries
// that cannot be stat'd are skipped. Files without a supported extension are
// ignored. The result is sorted by path so that a seeded run sees the library
// in a stable order.
//
// An empty result is not an error here; the collage driver rejects an empty
// library before doing any work.
func ScanLibrary(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read library directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}

		if IsImageFile(entry.Name()) {
			paths = append(paths, full)
		}
	}

	slices.Sort(paths)
	return paths, nil
}

// LoadLibrary decodes every path through cache and converts it to a Lab
// grid with alpha. The first decode failure aborts the load.
func LoadLibrary(cache *ImageCache, paths []string) ([]*LabaGrid, error) {
	library := make([]*LabaGrid, 0, len(paths))
	for _, path := range paths {
		img, err := cache.Load(path)
		if err != nil {
			return nil, err
		}

		g, err := ToLabaGrid(img)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", path, err)
		}
		library = append(library, g)
	}
	return library, nil
}
