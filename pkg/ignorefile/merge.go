package ignorefile

import "strings"

// Merge returns original with its managed block replaced by b.
//
// The first block in original is replaced in place. Any further blocks, and
// stray end markers, are dropped. If original has no block, b is appended.
// Lines outside of blocks are copied unchanged and in order. The result
// always ends with a newline, and merging the same block into the result
// again returns the result unchanged.
func Merge(original string, b Block) string {
	var (
		sb      strings.Builder
		written bool
	)

	writeLine := func(line string) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sc := NewScanner(original)
	for sc.Scan() {
		line := sc.Line()

		switch line.Kind {
		case LineStart:
			if !written {
				writeLine(b.String())
				written = true
			}

		case LineEnd:
			// Already part of the written block.

		case LineText:
			if line.State == Outside {
				writeLine(line.Text)
			}
		}
	}

	if !written {
		writeLine(b.String())
	}

	return sb.String()
}

// Clear returns original with an empty managed block.
func Clear(original string) string {
	return Merge(original, Block{})
}
