package shell

import "strings"

// cappedBuffer accumulates output lines up to a byte limit. Lines past the
// limit are dropped but counted as truncation.
type cappedBuffer struct {
	sb        strings.Builder
	maxBytes  int
	truncated bool
}

func newCappedBuffer(maxBytes int) *cappedBuffer {
	return &cappedBuffer{maxBytes: maxBytes}
}

// WriteLine appends line plus a trailing newline, respecting the cap.
func (b *cappedBuffer) WriteLine(line string) {
	remaining := b.maxBytes - b.sb.Len()
	if remaining <= 0 {
		b.truncated = true
		return
	}
	if len(line)+1 > remaining {
		b.sb.WriteString(line[:remaining-1])
		b.sb.WriteByte('\n')
		b.truncated = true
		return
	}
	b.sb.WriteString(line)
	b.sb.WriteByte('\n')
}

func (b *cappedBuffer) String() string { return b.sb.String() }

func (b *cappedBuffer) Truncated() bool { return b.truncated }
