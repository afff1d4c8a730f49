package tui

import "strings"

// renderWordLine styles the target word against the typed input: typed
// positions are correct or incorrect (mistyped positions stay marked even
// when the buffer content matches after a retype), the cursor position is
// underlined, and the rest is pending. Input typed past the end of the word
// is appended in the incorrect style.
func renderWordLine(target, input string, mistyped []int) string {
	targetRunes := []rune(target)
	inputRunes := []rune(input)

	mistakeAt := make(map[int]bool, len(mistyped))
	for _, pos := range mistyped {
		mistakeAt[pos] = true
	}

	var b strings.Builder
	for i, r := range targetRunes {
		style := pendingStyle
		switch {
		case i < len(inputRunes) && (mistakeAt[i] || inputRunes[i] != r):
			style = incorrectStyle
		case i < len(inputRunes):
			style = correctStyle
		case i == len(inputRunes):
			style = pendingStyle.Underline(true)
		}
		b.WriteString(style.Render(string(r)))
	}
	for i := len(targetRunes); i < len(inputRunes); i++ {
		b.WriteString(incorrectStyle.Render(string(inputRunes[i])))
	}
	return b.String()
}
