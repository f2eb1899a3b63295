// Package vocabulary provides the Miwok word lists, the catalog they are loaded from,
// and the rendering of a word as a list item.
package vocabulary

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidClipHandle = errors.New("invalid clip handle")

// Entry is a single word or phrase in the native language paired with its Miwok translation.
// Image and Clip are handles resolved by the image and audio layers; an empty Image means
// the entry has no picture.
type Entry struct {
	Native string `yaml:"native" validate:"required"`
	Miwok  string `yaml:"miwok" validate:"required"`
	Image  string `yaml:"image,omitempty"`
	Clip   string `yaml:"clip" validate:"required,clip_handle"`
}

// ValidateClipHandle rejects handles that could resolve outside the clip directory.
func ValidateClipHandle(handle string) error {
	if handle == "" || handle == "." || handle == ".." || strings.ContainsAny(handle, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidClipHandle, handle)
	}
	return nil
}

func (e Entry) HasImage() bool {
	return e.Image != ""
}

func (e Entry) String() string {
	return fmt.Sprintf("Entry{native=%q, miwok=%q, image=%q, clip=%q}", e.Native, e.Miwok, e.Image, e.Clip)
}

// Category is a named list of entries shown together, such as numbers or colors.
type Category struct {
	ID      string  `yaml:"id" validate:"required"`
	Name    string  `yaml:"name" validate:"required"`
	Color   string  `yaml:"color,omitempty" validate:"omitempty,oneof=red green yellow blue magenta cyan white"`
	Entries []Entry `yaml:"entries" validate:"required,min=1,dive"`
}

// Entry returns the entry at the 1-based position shown to users.
func (c Category) Entry(number int) (Entry, error) {
	if number < 1 || number > len(c.Entries) {
		return Entry{}, fmt.Errorf("%w: %d is out of range 1-%d in %s", ErrEntryNotFound, number, len(c.Entries), c.ID)
	}
	return c.Entries[number-1], nil
}

// Clips returns the clip handles of all entries in display order.
func (c Category) Clips() []string {
	clips := make([]string, 0, len(c.Entries))
	for _, entry := range c.Entries {
		clips = append(clips, entry.Clip)
	}
	return clips
}
