package strseg

// Split slices text into the substrings between matches of pattern.
//
// The pattern is matched with DotAll. Capture groups in the pattern do not
// contribute segments. The limit counts splits:
//
//	limit == 0: split at every match
//	limit > 0:  at most limit splits; the last segment is the unsplit remainder
//	limit < 0:  no splits; the result is the whole text
//
// With removeEmpty, empty segments are dropped and the order of the others is
// kept.
//
// Example:
//
//	parts, _ := strseg.Split(`,`, "a,,b", 0, false)
//	// parts = ["a", "", "b"]
//
//	parts, _ = strseg.Split(`,`, "a,,b", 0, true)
//	// parts = ["a", "b"]
//
//	parts, _ = strseg.Split(`,`, "a,b,c", 1, false)
//	// parts = ["a", "b,c"]
func (s *Segmenter) Split(pattern, text string, limit int, removeEmpty bool) ([]string, error) {
	e, err := s.compile(pattern, DotAll, false)
	if err != nil {
		return nil, err
	}

	segments := make([]string, 0, 8)
	if limit >= 0 {
		last := 0
		for loc := range e.Scan(text, limit) {
			segments = appendSegment(segments, text[last:loc[0]], removeEmpty)
			last = loc[1]
		}
		text = text[last:]
	}
	return appendSegment(segments, text, removeEmpty), nil
}

// appendSegment appends seg unless it is empty and empties are removed.
func appendSegment(segments []string, seg string, removeEmpty bool) []string {
	if removeEmpty && seg == "" {
		return segments
	}
	return append(segments, seg)
}

// Split calls Split on the default Segmenter.
func Split(pattern, text string, limit int, removeEmpty bool) ([]string, error) {
	return std.Split(pattern, text, limit, removeEmpty)
}
