package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/coregx/strseg"
)

// matchJSON is the JSON form of a match. Groups that did not participate
// are null.
type matchJSON struct {
	Start  int       `json:"start"`
	End    int       `json:"end"`
	Text   string    `json:"text"`
	Groups []*string `json:"groups,omitempty"`
}

func writeStrings(w io.Writer, format string, items []string) error {
	if format == FormatJSON {
		return writeJSON(w, items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}

func writeMatches(w io.Writer, format string, seq iter.Seq[strseg.Match]) error {
	if format == FormatJSON {
		out := []matchJSON{}
		for m := range seq {
			out = append(out, toJSON(m))
		}
		return writeJSON(w, out)
	}
	for m := range seq {
		if _, err := fmt.Fprintln(w, m.String()); err != nil {
			return err
		}
	}
	return nil
}

func toJSON(m strseg.Match) matchJSON {
	j := matchJSON{Start: m.Start(), End: m.End(), Text: m.String()}
	for i := 1; i <= m.NumGroups(); i++ {
		if g, ok := m.Group(i); ok {
			j.Groups = append(j.Groups, &g)
		} else {
			j.Groups = append(j.Groups, nil)
		}
	}
	return j
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
