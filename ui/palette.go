package ui

import "gridsnake/game/entity"

// RGB is a frontend independent colour.
type RGB struct {
	R, G, B uint8
}

var (
	colorBackground = RGB{0, 0, 0}
	colorSnake      = RGB{0, 255, 0}
	colorHead       = RGB{0, 190, 0}
	colorCellBorder = RGB{93, 216, 228}
	colorText       = RGB{245, 245, 245}
)

// itemColor is the fill colour of a consumable.
func itemColor(kind entity.Kind) RGB {
	switch kind {
	case entity.GrowthItem:
		return RGB{255, 0, 0}
	case entity.ShrinkItem:
		return RGB{200, 122, 255}
	case entity.Obstacle:
		return RGB{130, 130, 130}
	}
	return colorText
}
