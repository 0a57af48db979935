package coordinator

import "github.com/go-go-golems/catsdogs/pkg/content"

// CategoryChangedMsg is sent when the selector moves to a new category.
type CategoryChangedMsg struct {
	Category content.Category
}

// MoreRequestedMsg asks for another item of the selected category.
type MoreRequestedMsg struct{}

// ResetRequestedMsg zeroes the score and clears selection and display.
type ResetRequestedMsg struct{}

// LoadResultMsg is the completion of a load issued for Generation.
type LoadResultMsg struct {
	Generation uint64
	Category   content.Category
	Result     content.Result
}
