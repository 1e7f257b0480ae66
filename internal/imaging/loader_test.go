package imaging

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestImage writes a solid PNG named name into dir and returns its path.
func writeTestImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"anim.gif", true},
		{"scan.bmp", true},
		{"web.WebP", true},
		{"notes.txt", false},
		{"noext", false},
		{".png.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageFile(tt.name); got != tt.want {
				t.Errorf("IsImageFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSupportedExtensions_ReturnsCopy(t *testing.T) {
	exts := SupportedExtensions()
	exts[0] = ".xyz"
	if IsImageFile("a.xyz") {
		t.Error("modifying the returned slice changed the supported set")
	}
}

func TestOpen(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "a.png", 30, 20, color.RGBA{255, 0, 0, 255})

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("unexpected dimensions: got %dx%d, want 30x20", b.Dx(), b.Dy())
	}
}

func TestOpen_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open should fail for invalid image data")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, t.TempDir(), "a.png", 100, 100, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Second load should return cached image
	img2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
	if cache.Len() != 0 {
		t.Error("failed loads must not be cached")
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, t.TempDir(), "a.png", 10, 10, color.RGBA{0, 0, 255, 255})

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if cache.Len() != 0 {
		t.Error("Evict did not remove image from cache")
	}

	// Should not panic
	cache.Evict("/nonexistent/path")
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, t.TempDir(), "a.png", 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestScanLibrary(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "b.png", 4, 4, color.RGBA{0, 255, 0, 255})
	writeTestImage(t, dir, "a.PNG", 4, 4, color.RGBA{255, 0, 0, 255})
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	paths, err := ScanLibrary(dir)
	if err != nil {
		t.Fatalf("ScanLibrary failed: %v", err)
	}

	want := []string{filepath.Join(dir, "a.PNG"), filepath.Join(dir, "b.png")}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths %v, want %v", len(paths), paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d]: got %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestScanLibrary_Empty(t *testing.T) {
	paths, err := ScanLibrary(t.TempDir())
	if err != nil {
		t.Fatalf("ScanLibrary failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestScanLibrary_MissingDir(t *testing.T) {
	if _, err := ScanLibrary("/nonexistent/library"); err == nil {
		t.Error("ScanLibrary should fail for a missing directory")
	}
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	a := writeTestImage(t, dir, "a.png", 3, 2, color.RGBA{255, 0, 0, 255})
	b := writeTestImage(t, dir, "b.png", 5, 4, color.NRGBA{0, 0, 255, 128})

	cache := NewImageCache()
	library, err := LoadLibrary(cache, []string{a, b})
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}

	if len(library) != 2 {
		t.Fatalf("got %d images, want 2", len(library))
	}
	if library[0].Width() != 3 || library[0].Height() != 2 {
		t.Errorf("first image: got %dx%d, want 3x2", library[0].Width(), library[0].Height())
	}

	px := library[1].Pixels()[0]
	if px.Alpha < 0.49 || px.Alpha > 0.52 {
		t.Errorf("alpha: got %f, want about 0.5", px.Alpha)
	}
}

func TestLoadLibrary_DecodeFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeTestImage(t, dir, "a.png", 3, 3, color.RGBA{255, 0, 0, 255})
	bad := filepath.Join(dir, "b.png")
	if err := os.WriteFile(bad, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := LoadLibrary(NewImageCache(), []string{good, bad}); err == nil {
		t.Error("LoadLibrary should fail when any image cannot be decoded")
	}
}
