package styles

import "github.com/go-go-golems/catsdogs/pkg/content"

const (
	IconCat     = "🐈"
	IconDog     = "🐕"
	IconPending = "○"
)

// CategoryIcon returns the icon shown next to a category segment.
func CategoryIcon(c content.Category) string {
	switch c {
	case content.Cats:
		return IconCat
	case content.Dogs:
		return IconDog
	default:
		return IconPending
	}
}
