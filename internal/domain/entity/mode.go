package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

// Mode is the kind of transformation requested for an image
type Mode string

// Enhancement modes
const (
	ModeEnhance    Mode = "enhance"
	ModeColorize   Mode = "colorize"
	ModeDeScratch  Mode = "de-scratch"
	ModeEnlighten  Mode = "enlighten"
	ModeRecreate   Mode = "recreate"
	ModeCombine    Mode = "combine"
	ModeCustomEdit Mode = "custom-edit"
)

// CatalogModes lists the fixed modes that carry a built-in instruction
func CatalogModes() []Mode {
	return []Mode{ModeEnhance, ModeColorize, ModeDeScratch, ModeEnlighten, ModeRecreate, ModeCombine}
}

// ParseMode validates a fixed catalog mode. An empty value is the general enhancement.
// The custom edit mode is not accepted here; it has its own entrypoint.
func ParseMode(value string) (Mode, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ModeEnhance, nil
	}
	for _, m := range CatalogModes() {
		if string(m) == value {
			return m, nil
		}
	}
	return "", errs.ErrInvalidMode
}

// String returns the mode name
func (m Mode) String() string {
	return string(m)
}
