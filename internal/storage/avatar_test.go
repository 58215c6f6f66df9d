package storage

import (
    "bytes"
    "image"
    "image/color"
    "image/png"
    "os"
    "path/filepath"
    "strings"
    "testing"
)

func TestValidateUpload(t *testing.T) {
    cases := []struct {
        name        string
        contentType string
        size        int64
        want        error
    }{
        {"small png", "image/png", 1024, nil},
        {"jpeg at limit", "image/jpeg", MaxAvatarBytes, nil},
        {"over limit", "image/png", MaxAvatarBytes + 1, ErrTooLarge},
        {"three megabytes", "image/png", 3 * 1024 * 1024, ErrTooLarge},
        {"plain text", "text/plain", 1024, ErrNotImage},
        {"pdf", "application/pdf", 1024, ErrNotImage},
        {"empty type", "", 1024, ErrNotImage},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            if got := ValidateUpload(c.contentType, c.size); got != c.want {
                t.Errorf("ValidateUpload(%q, %d) = %v, want %v", c.contentType, c.size, got, c.want)
            }
        })
    }
}

// encodePNG renders a solid-color test image.
func encodePNG(t *testing.T, w, h int) []byte {
    t.Helper()
    img := image.NewRGBA(image.Rect(0, 0, w, h))
    for y := 0; y < h; y++ {
        for x := 0; x < w; x++ {
            img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
        }
    }
    var buf bytes.Buffer
    if err := png.Encode(&buf, img); err != nil {
        t.Fatalf("encode png: %v", err)
    }
    return buf.Bytes()
}

func TestSaveWritesFileAndURL(t *testing.T) {
    dir := t.TempDir()
    store := NewAvatarStore(dir, "http://localhost/")

    data := encodePNG(t, 64, 64)
    url, err := store.Save(42, "me.png", "image/png", int64(len(data)), bytes.NewReader(data))
    if err != nil {
        t.Fatalf("Save: %v", err)
    }
    if url != "http://localhost/avatars/42/avatar.png" {
        t.Errorf("url = %q", url)
    }
    if _, err := os.Stat(filepath.Join(dir, "42", "avatar.png")); err != nil {
        t.Errorf("stored file missing: %v", err)
    }
}

func TestSaveOverwrites(t *testing.T) {
    dir := t.TempDir()
    store := NewAvatarStore(dir, "http://localhost")

    first := encodePNG(t, 16, 16)
    second := encodePNG(t, 32, 32)
    url1, err := store.Save(7, "a.png", "image/png", int64(len(first)), bytes.NewReader(first))
    if err != nil {
        t.Fatalf("first Save: %v", err)
    }
    url2, err := store.Save(7, "b.png", "image/png", int64(len(second)), bytes.NewReader(second))
    if err != nil {
        t.Fatalf("second Save: %v", err)
    }
    if url1 != url2 {
        t.Errorf("re-upload changed the URL: %q vs %q", url1, url2)
    }
}

func TestSaveResizesLargeImages(t *testing.T) {
    dir := t.TempDir()
    store := NewAvatarStore(dir, "http://localhost")

    data := encodePNG(t, 1200, 800)
    if _, err := store.Save(9, "big.png", "image/png", int64(len(data)), bytes.NewReader(data)); err != nil {
        t.Fatalf("Save: %v", err)
    }
    f, err := os.Open(filepath.Join(dir, "9", "avatar.png"))
    if err != nil {
        t.Fatalf("open stored avatar: %v", err)
    }
    defer f.Close()
    cfg, err := png.DecodeConfig(f)
    if err != nil {
        t.Fatalf("decode stored avatar: %v", err)
    }
    if cfg.Width > 512 || cfg.Height > 512 {
        t.Errorf("stored avatar not resized: %dx%d", cfg.Width, cfg.Height)
    }
}

func TestSaveRejectsNonImageBody(t *testing.T) {
    store := NewAvatarStore(t.TempDir(), "http://localhost")
    body := strings.NewReader("definitely not pixels")
    if _, err := store.Save(3, "fake.png", "image/png", 21, body); err != ErrNotImage {
        t.Errorf("Save mislabelled body: err = %v, want ErrNotImage", err)
    }
}

func TestNormalizeExt(t *testing.T) {
    cases := map[string]string{
        "photo.JPG":    "jpg",
        "photo.jpeg":   "jpg",
        "anim.gif":     "gif",
        "scan.tiff":    "tif",
        "pic.bmp":      "bmp",
        "noext":        "png",
        "weird.webp":   "png",
        "avatar.PNG":   "png",
    }
    for in, want := range cases {
        if got := normalizeExt(in); got != want {
            t.Errorf("normalizeExt(%q) = %q, want %q", in, got, want)
        }
    }
}
