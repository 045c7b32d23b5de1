package workbench

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`(?m)^#{1,3}\s+.+$`)

// SplitMarkdown splits markdown into sections at H1-H3 headings. Each section
// keeps its heading line. Headings inside fenced code blocks are ignored.
// Content before the first heading becomes its own section. Empty sections
// are dropped.
func SplitMarkdown(markdown string) []string {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	// Find heading offsets against a copy with code blocks blanked out so
	// that # lines inside fences don't split sections. Blanking (rather than
	// removing) preserves offsets into the original string.
	masked := maskCodeBlocks(markdown)
	locs := headingRe.FindAllStringIndex(masked, -1)
	if len(locs) == 0 {
		return []string{markdown}
	}

	var sections []string
	appendSection := func(s string) {
		if strings.TrimSpace(s) != "" {
			sections = append(sections, strings.TrimRight(s, "\n"))
		}
	}

	appendSection(markdown[:locs[0][0]])
	for i, loc := range locs {
		end := len(markdown)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		appendSection(markdown[loc[0]:end])
	}

	return sections
}

// maskCodeBlocks replaces the contents of fenced code blocks with spaces,
// preserving string length and newline positions.
func maskCodeBlocks(s string) string {
	codeBlockRe := regexp.MustCompile("(?s)```.*?```")
	return codeBlockRe.ReplaceAllStringFunc(s, func(block string) string {
		masked := []byte(block)
		for i, b := range masked {
			if b != '\n' {
				masked[i] = ' '
			}
		}
		return string(masked)
	})
}

// SplitLines splits content into windows of at most window lines, with the
// last overlap lines of each window repeated at the start of the next.
// A window of zero or less returns the content as a single piece.
func SplitLines(content string, window, overlap int) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if window <= 0 {
		return []string{content}
	}
	if overlap < 0 || overlap >= window {
		overlap = 0
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) <= window {
		return []string{strings.Join(lines, "\n")}
	}

	step := window - overlap
	var pieces []string
	for start := 0; start < len(lines); start += step {
		end := start + window
		if end > len(lines) {
			end = len(lines)
		}
		piece := strings.Join(lines[start:end], "\n")
		if strings.TrimSpace(piece) != "" {
			pieces = append(pieces, piece)
		}
		if end == len(lines) {
			break
		}
	}

	return pieces
}
