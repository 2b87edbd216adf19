package rendering

import (
	"strings"

	"github.com/beevik/etree"
)

// Region is a text-bearing shape on the template slide
type Region struct {
	Index int         `json:"index"`
	Name  string      `json:"name"`            // shape name from p:cNvPr
	Label string      `json:"label,omitempty"` // matched field key, empty when unmatched
	Text  string      `json:"text"`
	Style StyleSample `json:"style"`

	txBody *etree.Element
}

// findRegions returns every shape with a text body, in document order.
// Shapes nested in groups are included.
func findRegions(slide *etree.Document) []Region {
	var regions []Region
	for _, sp := range slide.FindElements("//p:sp") {
		txBody := sp.SelectElement("p:txBody")
		if txBody == nil {
			continue
		}
		text := bodyText(txBody)
		label := normalizeLabel(text)
		if _, ok := regionFields[label]; !ok {
			label = ""
		}
		var name string
		if cNvPr := sp.FindElement("./p:nvSpPr/p:cNvPr"); cNvPr != nil {
			name = cNvPr.SelectAttrValue("name", "")
		}
		regions = append(regions, Region{
			Index:  len(regions),
			Name:   name,
			Label:  label,
			Text:   text,
			Style:  captureStyle(txBody),
			txBody: txBody,
		})
	}
	return regions
}

// bodyText joins the paragraphs of a text body with newlines
func bodyText(txBody *etree.Element) string {
	paragraphs := txBody.SelectElements("a:p")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, paragraphText(p))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, child := range p.ChildElements() {
		switch child.Tag {
		case "r", "fld":
			if t := child.SelectElement("a:t"); t != nil {
				sb.WriteString(t.Text())
			}
		case "br":
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// rewrite replaces every paragraph of the region with one paragraph per line
// of text. Each new run carries the region's style sample; the first
// paragraph's a:pPr (alignment, spacing) is kept on every new paragraph.
func (r Region) rewrite(text string) {
	var pPr *etree.Element
	if first := r.txBody.SelectElement("a:p"); first != nil {
		pPr = first.SelectElement("a:pPr")
	}
	for _, p := range r.txBody.SelectElements("a:p") {
		r.txBody.RemoveChild(p)
	}

	// a txBody needs at least one paragraph, an empty value clears to one empty paragraph
	for _, line := range strings.Split(text, "\n") {
		p := r.txBody.CreateElement("a:p")
		if pPr != nil {
			p.AddChild(pPr.Copy())
		}
		if line == "" {
			p.AddChild(r.Style.props("a:endParaRPr"))
			continue
		}
		run := p.CreateElement("a:r")
		run.AddChild(r.Style.props("a:rPr"))
		run.CreateElement("a:t").SetText(line)
	}
}
