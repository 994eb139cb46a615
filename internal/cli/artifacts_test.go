package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soniarosenberger/brickring/pkg/errors"
	"github.com/soniarosenberger/brickring/pkg/ring"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,png,pdf", []string{"svg", "png", "pdf"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"svg", "png", "pdf"}); err != nil {
		t.Errorf("validateFormats(valid) = %v, want nil", err)
	}
	if err := validateFormats([]string{"svg", "gif"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormats(gif) = %v, want INVALID_FORMAT", err)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"job", "job"},
		{"job.svg", "job"},
		{"out/job.png", "out/job"},
		{"job.toml", "job.toml"}, // not a diagram format, keep as-is
	}

	for _, tt := range tests {
		if got := basePath(tt.input); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWriteDiagrams(t *testing.T) {
	in := ring.Inputs{
		BarrelInsideDiameter: 24,
		BrickThickness:       4.5,
		BricksPerRing:        8,
		FaceLength:           9.0,
	}
	g, err := ring.Solve(in, ring.ModeFixedFace)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	c := New(io.Discard, LogInfo)
	base := filepath.Join(t.TempDir(), "job")
	if err := c.writeDiagrams(in, g, "in", base, []string{"svg"}); err != nil {
		t.Fatalf("writeDiagrams: %v", err)
	}

	for _, suffix := range []string{"ring", "brick"} {
		path := base + "_" + suffix + ".svg"
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("%s is not SVG", path)
		}
	}
}

func TestWriteDiagramsRejectsBadFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.writeDiagrams(ring.Inputs{}, ring.Geometry{}, "in", "job", []string{"gif"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("writeDiagrams(gif) = %v, want INVALID_FORMAT", err)
	}
}
