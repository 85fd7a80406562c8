package shared

import "strings"

// CenterContent renders content vertically centered in the available height.
func CenterContent(content string, height int) string {
	content = strings.TrimRight(content, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	if len(contentLines) >= height {
		return content
	}

	topPad := (height - len(contentLines)) / 2

	lines := make([]string, 0, height)
	for i := 0; i < topPad; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, contentLines...)
	// Fill remaining to reach height
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// PinToBottom lays overlay over the last lines of base, which is padded or
// cut to exactly height lines. Lines of base above the overlay show through.
// An overlay taller than height keeps its bottom lines.
func PinToBottom(base, overlay string, height int) string {
	if height <= 0 {
		return ""
	}
	base = strings.TrimRight(base, "\n")
	overlay = strings.TrimRight(overlay, "\n")

	var baseLines []string
	if base != "" {
		baseLines = strings.Split(base, "\n")
	}
	var overlayLines []string
	if overlay != "" {
		overlayLines = strings.Split(overlay, "\n")
	}
	if len(overlayLines) > height {
		overlayLines = overlayLines[len(overlayLines)-height:]
	}

	lines := make([]string, height)
	copy(lines, baseLines)

	top := height - len(overlayLines)
	copy(lines[top:], overlayLines)

	return strings.Join(lines, "\n")
}
