package rendering

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// StyleSample is the font styling of a region read before it is cleared.
// Zero values mean "not set" and are left to the slide's inherited styles.
type StyleSample struct {
	Size   float64 `json:"size,omitempty"`   // points
	Family string  `json:"family,omitempty"` // latin typeface
	Bold   bool    `json:"bold"`
	Italic bool    `json:"italic"`
	Color  string  `json:"color,omitempty"` // RRGGBB
}

// captureStyle reads the first run of the first paragraph of a text body.
// A paragraph without runs falls back to its end-of-paragraph properties.
func captureStyle(txBody *etree.Element) StyleSample {
	p := txBody.SelectElement("a:p")
	if p == nil {
		return StyleSample{}
	}
	if r := p.SelectElement("a:r"); r != nil {
		if rPr := r.SelectElement("a:rPr"); rPr != nil {
			return styleFromProps(rPr)
		}
		return StyleSample{}
	}
	if end := p.SelectElement("a:endParaRPr"); end != nil {
		return styleFromProps(end)
	}
	return StyleSample{}
}

// styleFromProps converts an a:rPr (or a:endParaRPr) element
func styleFromProps(props *etree.Element) StyleSample {
	var s StyleSample
	if sz, err := strconv.Atoi(props.SelectAttrValue("sz", "")); err == nil && sz > 0 {
		s.Size = float64(sz) / 100
	}
	s.Bold = isOn(props.SelectAttrValue("b", ""))
	s.Italic = isOn(props.SelectAttrValue("i", ""))
	if latin := props.SelectElement("a:latin"); latin != nil {
		s.Family = latin.SelectAttrValue("typeface", "")
	}
	if clr := props.FindElement("./a:solidFill/a:srgbClr"); clr != nil {
		s.Color = strings.ToUpper(clr.SelectAttrValue("val", ""))
	}
	return s
}

func isOn(v string) bool {
	return v == "1" || v == "true"
}

// props builds a fresh run-properties element carrying the sample. tag is
// "a:rPr" for runs and "a:endParaRPr" for empty paragraphs.
func (s StyleSample) props(tag string) *etree.Element {
	el := etree.NewElement(tag)
	el.CreateAttr("lang", "en-US")
	if s.Size > 0 {
		el.CreateAttr("sz", strconv.Itoa(int(s.Size*100+0.5)))
	}
	if s.Bold {
		el.CreateAttr("b", "1")
	}
	if s.Italic {
		el.CreateAttr("i", "1")
	}
	el.CreateAttr("dirty", "0")

	// schema order: fill before typeface
	if s.Color != "" {
		el.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", s.Color)
	}
	if s.Family != "" {
		el.CreateElement("a:latin").CreateAttr("typeface", s.Family)
	}
	return el
}

// String renders the sample for the inspect-template table
func (s StyleSample) String() string {
	var parts []string
	if s.Size > 0 {
		parts = append(parts, strconv.FormatFloat(s.Size, 'f', -1, 64)+"pt")
	}
	if s.Family != "" {
		parts = append(parts, s.Family)
	}
	if s.Bold {
		parts = append(parts, "bold")
	}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Color != "" {
		parts = append(parts, "#"+s.Color)
	}
	if len(parts) == 0 {
		return "inherited"
	}
	return strings.Join(parts, " ")
}
