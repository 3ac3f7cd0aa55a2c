package sink

import (
	"os/exec"
	"testing"

	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/render/gantt/scene"
)

func hasConverter() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

func TestToPNGWithoutConverter(t *testing.T) {
	if hasConverter() {
		t.Skip("rsvg-convert installed")
	}
	_, err := ToPNG([]byte("<svg/>"), 2)
	if err == nil {
		t.Fatal("ToPNG succeeded without rsvg-convert")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeConverterMissing {
		t.Errorf("error code = %q, want %q", got, errors.ErrCodeConverterMissing)
	}
}

func TestRenderPNGConverts(t *testing.T) {
	if !hasConverter() {
		t.Skip("rsvg-convert not installed")
	}

	tree := &scene.Tree{
		Width:      40,
		Height:     20,
		Background: "white",
		Nodes: []scene.Node{
			scene.Rect{X: 5, Y: 5, W: 30, H: 10, RX: 3, Class: "box"},
		},
	}
	data, err := RenderPNG(tree, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	// PNG magic bytes.
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("output does not look like a PNG (%d bytes)", len(data))
	}
}

func TestRenderPDFConverts(t *testing.T) {
	if !hasConverter() {
		t.Skip("rsvg-convert not installed")
	}

	tree := &scene.Tree{Width: 40, Height: 20}
	data, err := RenderPDF(tree)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		t.Errorf("output does not look like a PDF (%d bytes)", len(data))
	}
}
