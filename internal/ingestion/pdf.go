package ingestion

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the text-layer lines of every page, in page order.
// Image-only PDFs have no text layer and yield an empty sequence.
func extractPDF(path string, data []byte) (lines []string, err error) {
	// the pdf reader panics on some malformed object graphs
	defer func() {
		if rec := recover(); rec != nil {
			lines = nil
			err = &CorruptDocumentError{Path: path, Cause: fmt.Errorf("%v", rec)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptDocumentError{Path: path, Cause: err}
	}

	var sb strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		writePageText(&sb, p.Content().Text)
		sb.WriteByte('\n')
	}

	return CleanLines(sb.String()), nil
}

// writePageText lays out glyphs in content-stream order. A baseline move starts
// a new line, so lines placed with Td inside one text object stay separate.
// A horizontal gap wider than a fifth of the font size becomes a space.
func writePageText(sb *strings.Builder, glyphs []pdf.Text) {
	var prev *pdf.Text
	for i := range glyphs {
		g := &glyphs[i]
		if g.S == "" || g.S == "\n" {
			continue
		}
		if prev != nil {
			size := math.Max(math.Abs(prev.FontSize), 1)
			switch {
			case math.Abs(g.Y-prev.Y) > size/2:
				sb.WriteByte('\n')
			case g.X-(prev.X+prev.W) > size/5 && !isSpace(prev.S) && !isSpace(g.S):
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(g.S)
		prev = g
	}
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}
