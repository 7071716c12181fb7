package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyShadowExpandsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	subject := image.Pt(5, 5)
	img.Set(subject.X, subject.Y, color.RGBA{R: 255, A: 255})

	opts := ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	out := ApplyShadow(img, opts)
	if out.Image == nil {
		t.Fatal("expected output image")
	}
	if want := image.Rect(0, 0, 22, 20); !out.Image.Bounds().Eq(want) {
		t.Fatalf("bounds %v, want %v", out.Image.Bounds(), want)
	}
	if out.Offset != (image.Point{}) {
		t.Fatalf("offset %v, want origin", out.Offset)
	}
	shadowPt := subject.Add(out.Offset).Add(opts.Offset)
	if out.Image.RGBAAt(shadowPt.X, shadowPt.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", shadowPt)
	}
}

func TestApplyShadowZeroOpacity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	out := ApplyShadow(img, ShadowOptions{Radius: 12, Offset: image.Pt(20, 10)})
	if out.Image != img {
		t.Fatal("expected the input image back unchanged")
	}
}

func TestBoxBlurSpreads(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 5, 1))
	src.Pix[2] = 255
	out := boxBlur(src, 1)
	if out.Pix[1] == 0 || out.Pix[3] == 0 {
		t.Fatalf("blur did not reach neighbours: %v", out.Pix)
	}
	if out.Pix[0] != 0 {
		t.Fatalf("blur reached past radius: %v", out.Pix)
	}
}
