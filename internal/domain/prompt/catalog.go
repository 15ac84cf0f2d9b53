// Package prompt maps enhancement modes to the instruction text sent to the image model.
package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

// Bounds of a custom edit instruction
const (
	MinInstructionLength = 3
	MaxInstructionLength = 500
)

var templates = map[entity.Mode]string{
	entity.ModeEnhance: "Take this old photograph and enhance it while preserving authenticity. " +
		"Remove blur, sharpen the details of faces, clothing, and background objects. " +
		"Increase clarity in textures like skin, hair, and fabric. " +
		"Do not invent unrealistic elements, stay faithful to the original content. " +
		"The result should look like a naturally sharp, high-quality version of the same photo, not artificial or overly smoothed.",

	entity.ModeColorize: "Convert this black-and-white or faded photograph into a natural color version. " +
		"Apply realistic skin tones, fabric colors, and environmental hues that match the time period and context. " +
		"Enhance contrast while keeping a soft, authentic look. " +
		"The goal is to bring memories to life with believable, emotionally resonant colors, while preserving all original details and atmosphere.",

	entity.ModeDeScratch: "Restore this aged photograph by removing scratches, dust, stains, and visible damage. " +
		"Reconstruct missing areas in a way that blends seamlessly with the original textures. " +
		"Preserve fine details such as facial features, clothing folds, and background objects. " +
		"The result should look clean and intact, as if the photo was never scratched, but without altering the composition or style.",

	entity.ModeEnlighten: "Correct the lighting of this photo to achieve a balanced, well-lit result. " +
		"Adjust brightness, contrast, and exposure so that subjects are clearly visible. " +
		"Fix underexposed or overexposed areas without losing detail. " +
		"Maintain natural shadows and highlights. " +
		"Do not oversaturate or alter colors significantly, focus on achieving even, realistic lighting that enhances the photo's clarity.",

	entity.ModeRecreate: "Recreate this heavily damaged photograph by reconstructing missing or unclear areas, " +
		"while preserving the original subjects, poses, and point of view. " +
		"Do not change the composition, clothing, or facial expressions. " +
		"The goal is to restore the portrait to what it originally looked like, same people, same positioning, same perspective, " +
		"without inventing new elements or altering the style. " +
		"The output should feel like a faithful restoration of the exact same image, only repaired.",

	entity.ModeCombine: "Take the provided photos of different people (ancestors, relatives, or acquaintances) " +
		"and merge them into a single, unified group photograph. " +
		"Ensure the faces, clothing, and body proportions remain faithful to the original input images. " +
		"Arrange the people naturally as if they were photographed together in the same scene, with consistent lighting, shadows, and perspective. " +
		"Blend styles so the final photo looks authentic and seamless, as though it was taken at one time and place. " +
		"Do not alter facial features or invent new people, only harmonize the given ones.",
}

// ForMode returns the built-in instruction of a catalog mode
func ForMode(mode entity.Mode) (string, error) {
	text, ok := templates[mode]
	if !ok {
		return "", errs.ErrInvalidMode
	}
	return text, nil
}

// ValidateInstruction checks a free-text custom edit instruction and returns it trimmed.
// The trimmed text must have at least MinInstructionLength characters and the
// submitted text at most MaxInstructionLength.
func ValidateInstruction(instruction string) (string, error) {
	trimmed := strings.TrimSpace(instruction)
	if utf8.RuneCountInString(trimmed) < MinInstructionLength {
		return "", errs.ErrInvalidInstruction
	}
	if utf8.RuneCountInString(instruction) > MaxInstructionLength {
		return "", errs.ErrInvalidInstruction
	}
	return trimmed, nil
}
