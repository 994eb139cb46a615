package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soniarosenberger/brickring/pkg/errors"
	"github.com/soniarosenberger/brickring/pkg/render"
	"github.com/soniarosenberger/brickring/pkg/ring"
)

// validFormats is the set of supported diagram formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath strips a known format extension from the output path so
// "--output job.svg" and "--output job" produce the same file names.
func basePath(output string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if validFormats[ext] {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

// writeDiagrams renders the ring top view and the single-brick cut template
// and writes them as <base>_ring.<ext> and <base>_brick.<ext> for every
// requested format.
func (c *CLI) writeDiagrams(in ring.Inputs, g ring.Geometry, unit, output string, formats []string) error {
	if err := validateFormats(formats); err != nil {
		return err
	}
	base := basePath(output)

	diagrams := []struct {
		suffix string
		svg    []byte
	}{
		{"ring", render.RingSVG(in, g, render.WithUnit(unit))},
		{"brick", render.BrickSVG(in, g, render.WithUnit(unit))},
	}

	for _, format := range formats {
		for _, d := range diagrams {
			p := newProgress(c.Logger)
			data, err := convertDiagram(d.svg, format)
			if err != nil {
				return err
			}
			path := fmt.Sprintf("%s_%s.%s", base, d.suffix, format)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			p.done(fmt.Sprintf("Wrote %s", path))
		}
	}
	return nil
}

func convertDiagram(svg []byte, format string) ([]byte, error) {
	switch format {
	case "svg":
		return svg, nil
	case "png":
		return render.ToPNG(svg, 2.0)
	case "pdf":
		return render.ToPDF(svg)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
}
