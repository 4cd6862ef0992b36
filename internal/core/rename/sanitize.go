package rename

import (
	"strings"
)

// Characters that cannot appear in Windows file names, plus newlines and
// hyphens, which models like to sprinkle into titles.
const invalidFilenameChars = "<>:\"/\\|?*-\n"

// SanitizeFilename makes a model-generated title safe to use as a file name
// on every supported platform.
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		if strings.ContainsRune(invalidFilenameChars, r) {
			b.WriteString(" - ")
		} else {
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(b.String(), " -._")
	return strings.Join(strings.Fields(cleaned), " ")
}
