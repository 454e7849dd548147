// Package sprite turns small ASCII-art silhouettes into alpha images at
// entity size, optionally rotated, and builds collision masks from them.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// Art is a silhouette drawn with characters. Space and '.' are
// transparent; every other character is opaque.
type Art []string

// Size returns the art's width (longest row) and height.
func (a Art) Size() (int, int) {
	w := 0
	for _, row := range a {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w, len(a)
}

// Image renders the art at one pixel per character.
func (a Art) Image() *image.Alpha {
	w, h := a.Size()
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for y, row := range a {
		x := 0
		for _, r := range row {
			if r != ' ' && r != '.' {
				img.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
			x++
		}
	}
	return img
}

// Built-in silhouettes, keyed by name.
var library = map[string]Art{
	"runner": {
		"...####...",
		"...####...",
		"....##....",
		"..######..",
		".#.####.#.",
		"#..####..#",
		"...####...",
		"...#..#...",
		"..##..##..",
		".##....##.",
	},
	"block": {
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
		"########",
	},
	"wall": {
		"...##...",
		"..####..",
		".######.",
		"########",
		"########",
		"########",
		"########",
		"########",
	},
	"pit": {
		"##########",
		".########.",
	},
	"spike": {
		"...##...",
		"..####..",
		"..####..",
		".######.",
		".######.",
		"########",
	},
}

// Lookup returns a built-in silhouette by name.
func Lookup(name string) (Art, error) {
	a, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("sprite: unknown art %q", name)
	}
	return a, nil
}

// Names returns the built-in silhouette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
