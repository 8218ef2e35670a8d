package tui

import (
	"strings"
	"testing"

	"github.com/vkotenko/tui-delver/internal/core"
)

func TestColorStylesMatchPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("palette color %d has no style", c)
		}
	}

	if len(colorStyles) != int(core.ColorGray)+1 {
		t.Errorf("colorStyles has %d entries, palette has %d",
			len(colorStyles), int(core.ColorGray)+1)
	}
}

func TestRenderScreenKeepsContent(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "delver")
	s.SetCell(0, 1, 'g', core.ColorGreen)
	s.SetCell(1, 1, 'r', core.ColorRed)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "delver") {
		t.Errorf("first line lost its text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "g") || !strings.Contains(lines[1], "r") {
		t.Errorf("second line lost its glyphs: %q", lines[1])
	}
}

func TestStyleForUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetCell(0, 0, 'x', core.Color(200))

	out := RenderScreen(s)

	if !strings.Contains(out, "x") {
		t.Errorf("cell with out-of-palette color was dropped: %q", out)
	}
}
