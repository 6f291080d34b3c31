package explorer

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/nexplorer/nexplorer/pkg/masks"
)

const defaultFileColor = tcell.ColorWhiteSmoke

// presetColors colors list entries by the built-in filter preset they belong to.
var presetColors = map[string]tcell.Color{
	"Coding":    tcell.ColorAqua,
	"Data":      tcell.ColorGold,
	"Images":    tcell.ColorMediumPurple,
	"Documents": tcell.ColorBisque,
}

type colorMask struct {
	mask  masks.Mask
	color tcell.Color
}

var (
	colorMasksOnce sync.Once
	colorMasks     []colorMask
)

func loadColorMasks() {
	for _, p := range masks.BuiltInPresets() {
		color, ok := presetColors[p.Name]
		if !ok {
			continue
		}
		mask, err := masks.FromWildcard(p.Wildcard)
		if err != nil {
			continue
		}
		colorMasks = append(colorMasks, colorMask{mask: mask, color: color})
	}
}

func colorByFileName(name string) tcell.Color {
	colorMasksOnce.Do(loadColorMasks)
	for i := range colorMasks {
		if ok, _ := colorMasks[i].mask.Match(name); ok {
			return colorMasks[i].color
		}
	}
	return defaultFileColor
}
