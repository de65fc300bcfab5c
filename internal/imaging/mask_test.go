package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestBinarize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	for x, v := range []uint8{0, 60, 200, 255} {
		img.SetGray(x, 0, color.Gray{Y: v})
	}

	tests := []struct {
		name      string
		threshold uint8
		invert    bool
		want      []uint8
	}{
		{"default threshold", DefaultThreshold, false, []uint8{0, 0, 255, 255}},
		{"low threshold", 50, false, []uint8{0, 255, 255, 255}},
		{"inverted", DefaultThreshold, true, []uint8{255, 255, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := Binarize(img, tt.threshold, tt.invert)
			for x, want := range tt.want {
				if got := mask.GrayAt(x, 0).Y; got != want {
					t.Errorf("pixel %d: got %d, want %d", x, got, want)
				}
			}
		})
	}
}

func TestBinarize_TransparentIsBackground(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})

	mask := Binarize(img, DefaultThreshold, false)
	if got := mask.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("transparent pixel: got %d, want 0", got)
	}
	if got := mask.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("white pixel: got %d, want 255", got)
	}
}

func TestLoadMask(t *testing.T) {
	cache := NewImageCache()
	path := writePNG(t, "mask.png", grayMask(5, 5, image.Pt(1, 1), image.Pt(2, 1), image.Pt(3, 3)))

	mask, err := LoadMask(cache, path, DefaultThreshold, false)
	if err != nil {
		t.Fatalf("LoadMask failed: %v", err)
	}
	if mask.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Fatalf("bounds: got %v", mask.Bounds())
	}

	var on int
	for _, v := range mask.Pix {
		if v == 255 {
			on++
		}
	}
	if on != 3 {
		t.Errorf("foreground pixels: got %d, want 3", on)
	}
	if mask.GrayAt(3, 3).Y != 255 {
		t.Error("pixel (3,3) should be foreground")
	}

	if _, err := LoadMask(cache, "/nonexistent/mask.png", DefaultThreshold, false); err == nil {
		t.Error("LoadMask should fail for non-existent file")
	}
}

func TestLoadGray_SixteenBit(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 2, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 0})
	src.SetGray16(1, 0, color.Gray16{Y: 0xFFFF})

	cache := NewImageCache()
	gray, err := LoadGray(cache, writePNG(t, "field.png", src))
	if err != nil {
		t.Fatalf("LoadGray failed: %v", err)
	}
	if got := gray.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("dark pixel: got %d, want 0", got)
	}
	if got := gray.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("bright pixel: got %d, want 255", got)
	}
}

func TestSampleGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(10 * (i + 1))
	}

	got, err := SampleGray(gray, []int{0, 2, 1}, []int{0, 0, 1})
	if err != nil {
		t.Fatalf("SampleGray failed: %v", err)
	}
	want := []uint8{10, 30, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := SampleGray(gray, []int{0}, []int{0, 1}); err == nil {
		t.Error("SampleGray should fail for mismatched coordinates")
	}
	if _, err := SampleGray(gray, []int{3}, []int{0}); err == nil {
		t.Error("SampleGray should fail for pixels outside the image")
	}
}
