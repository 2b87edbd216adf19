package ingestion

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
	"github.com/nguyenthenguyen/docx"
)

// extractDocx returns one line per word-processor paragraph with visible text
func extractDocx(path string, data []byte) ([]string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptDocumentError{Path: path, Cause: err}
	}
	defer func() { _ = doc.Close() }()

	body := etree.NewDocument()
	if err := body.ReadFromString(doc.Editable().GetContent()); err != nil {
		return nil, &CorruptDocumentError{Path: path, Cause: err}
	}

	var sb strings.Builder
	for _, p := range body.FindElements("//w:p") {
		if insideParagraph(p) {
			continue
		}
		sb.WriteString(paragraphText(p))
		sb.WriteByte('\n')
	}

	return CleanLines(sb.String()), nil
}

// insideParagraph reports whether p is nested in another paragraph (text boxes).
// Nested paragraphs are emitted by the outer paragraph's walk.
func insideParagraph(p *etree.Element) bool {
	for parent := p.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Space == "w" && parent.Tag == "p" {
			return true
		}
	}
	return false
}

// paragraphText concatenates the run text of a paragraph in document order
func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			switch {
			case child.Space == "mc" && child.Tag == "Fallback":
				// the Choice branch already carries the same text
				continue
			case child.Space == "w" && (child.Tag == "pPr" || child.Tag == "rPr"):
				continue
			case child.Space == "w" && child.Tag == "p":
				sb.WriteByte('\n')
				sb.WriteString(paragraphText(child))
				sb.WriteByte('\n')
			case child.Space == "w" && child.Tag == "t":
				sb.WriteString(child.Text())
			case child.Space == "w" && child.Tag == "tab":
				sb.WriteByte('\t')
			case child.Space == "w" && (child.Tag == "br" || child.Tag == "cr"):
				sb.WriteByte(' ')
			default:
				walk(child)
			}
		}
	}
	walk(p)
	return sb.String()
}
