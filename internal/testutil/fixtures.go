// Package testutil builds small in-memory .docx, .pdf and .pptx fixtures for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes data under dir and returns the full path
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// zipEntries writes the named entries, in order, into a zip archive
func zipEntries(t *testing.T, entries [][2]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e[0])
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", e[0], err)
		}
		if _, err := w.Write([]byte(e[1])); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", e[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// BuildDOCX returns a minimal word-processor document with one paragraph per
// entry. An empty entry produces an empty paragraph.
func BuildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>`)
		if p != "" {
			fmt.Fprintf(&body, `<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`, html.EscapeString(p))
		}
		body.WriteString(`</w:p>`)
	}
	return BuildDOCXBody(t, body.String())
}

// BuildDOCXBody wraps raw w:body markup into a word-processor document
func BuildDOCXBody(t *testing.T, bodyXML string) []byte {
	t.Helper()
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		bodyXML + `</w:body></w:document>`

	return zipEntries(t, [][2]string{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", docxDocumentRels},
	})
}

// BuildPDF returns a single-page PDF with one text object per line.
// Lines must be plain ASCII; parentheses and backslashes are escaped.
func BuildPDF(t *testing.T, lines []string) []byte {
	t.Helper()
	var content strings.Builder
	y := 760
	for _, line := range lines {
		escaped := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(line)
		fmt.Fprintf(&content, "BT /F1 11 Tf 72 %d Td (%s) Tj ET\n", y, escaped)
		y -= 14
	}
	return BuildPDFStream(t, content.String())
}

// BuildPDFStream returns a single-page PDF whose page content is stream, with
// Helvetica bound to /F1.
func BuildPDFStream(t *testing.T, stream string) []byte {
	t.Helper()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)
	return buf.Bytes()
}

// Shape describes a text box on the fixture slide
type Shape struct {
	Name string
	// Paragraphs holds the existing text, one entry per paragraph
	Paragraphs []string
	// RunAttrs and RunChildren are the raw attribute and child markup of each
	// run's a:rPr, e.g. `sz="1800" b="1"` and `<a:solidFill>...</a:solidFill>`
	RunAttrs    string
	RunChildren string
}

const pptxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/><Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/></Types>`

const pptxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/></Relationships>`

const pptxPresentation = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst></p:presentation>`

const pptxPresentationRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/></Relationships>`

// SlideXML renders the fixture slide markup for the given shapes
func SlideXML(shapes []Shape) string {
	var tree strings.Builder
	for i, s := range shapes {
		fmt.Fprintf(&tree, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`,
			i+2, html.EscapeString(s.Name))
		if len(s.Paragraphs) == 0 {
			tree.WriteString(`<a:p><a:endParaRPr lang="en-US"/></a:p>`)
		}
		for _, p := range s.Paragraphs {
			fmt.Fprintf(&tree, `<a:p><a:r><a:rPr lang="en-US" %s>%s</a:rPr><a:t>%s</a:t></a:r></a:p>`,
				s.RunAttrs, s.RunChildren, html.EscapeString(p))
		}
		tree.WriteString(`</p:txBody></p:sp>`)
	}
	// connectors carry no text body and are never regions
	tree.WriteString(`<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="99" name="Line"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr><p:spPr/></p:cxnSp>`)

	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		tree.String() + `</p:spTree></p:cSld></p:sld>`
}

// BuildPPTX returns a minimal single-slide presentation containing the shapes
func BuildPPTX(t *testing.T, shapes []Shape) []byte {
	t.Helper()
	return zipEntries(t, [][2]string{
		{"[Content_Types].xml", pptxContentTypes},
		{"_rels/.rels", pptxRootRels},
		{"ppt/presentation.xml", pptxPresentation},
		{"ppt/_rels/presentation.xml.rels", pptxPresentationRels},
		{"ppt/slides/slide1.xml", SlideXML(shapes)},
	})
}

// ReadZipEntry returns the content of one entry of a zip file on disk
func ReadZipEntry(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", name, err)
		}
		defer func() { _ = rc.Close() }()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("failed to read entry %s: %v", name, err)
		}
		return buf.String()
	}
	t.Fatalf("entry %s not found in %s", name, path)
	return ""
}

// StandardTemplate mirrors the company template: one labelled text box per field
func StandardTemplate() []Shape {
	return []Shape{
		{Name: "Summary", Paragraphs: []string{"Summary"}, RunAttrs: `sz="1200"`},
		{Name: "Experience", Paragraphs: []string{"Experience"}, RunAttrs: `sz="1100"`},
		{Name: "Skills", Paragraphs: []string{"Skills"}, RunAttrs: `sz="1100"`},
		{Name: "Education", Paragraphs: []string{"Education"}, RunAttrs: `sz="1100" i="1"`},
		{Name: "Name", Paragraphs: []string{"{{Name}}"}, RunAttrs: `sz="2400" b="1"`,
			RunChildren: `<a:solidFill><a:srgbClr val="1F3864"/></a:solidFill><a:latin typeface="Georgia"/>`},
		{Name: "Role", Paragraphs: []string{"Role"}, RunAttrs: `sz="1400"`},
		{Name: "Photo", Paragraphs: []string{"Picture"}},
		{Name: "Footer", Paragraphs: []string{"Confidential"}, RunAttrs: `sz="800"`},
	}
}
