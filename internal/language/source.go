package language

// SourceAt returns the source text spanned by pos, or "" when the position
// carries no source.
func SourceAt(pos *Position) string {
	if pos == nil || pos.Src == nil {
		return ""
	}
	// gqlparser positions count runes, not bytes.
	input := []rune(pos.Src.Input)
	start, end := pos.Start, pos.End
	if start < 0 {
		start = 0
	}
	if end > len(input) {
		end = len(input)
	}
	if start >= end {
		return ""
	}
	return string(input[start:end])
}

// FilePath returns the name of the source a position belongs to.
func FilePath(pos *Position) string {
	if pos == nil || pos.Src == nil {
		return ""
	}
	return pos.Src.Name
}
