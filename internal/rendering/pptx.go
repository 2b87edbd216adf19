package rendering

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/jonathan/resume-deck/internal/types"
)

const (
	presentationPart     = "ppt/presentation.xml"
	presentationRelsPart = "ppt/_rels/presentation.xml.rels"
	defaultSlidePart     = "ppt/slides/slide1.xml"
	slideRelType         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

// MergeResult summarizes a merge
type MergeResult struct {
	OutputPath string   `json:"output_path"`
	Filled     []string `json:"filled"`    // labels written with a value
	Cleared    []string `json:"cleared"`   // labels cleared because the value was empty
	Untouched  int      `json:"untouched"` // regions without a known label
}

// deck is a template package held in memory with its first slide parsed
type deck struct {
	archive   *zip.Reader
	slidePart string
	slide     *etree.Document
}

// Merge writes record into the labelled regions of the first slide of the
// template and saves the result to outputPath. The template is never modified.
func Merge(record *types.ResumeRecord, templatePath, outputPath string) (*MergeResult, error) {
	d, err := loadDeck(templatePath)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{OutputPath: outputPath, Filled: []string{}, Cleared: []string{}}
	for _, region := range findRegions(d.slide) {
		if region.Label == "" {
			result.Untouched++
			continue
		}
		value, _ := FieldText(record, region.Label)
		region.rewrite(value)
		if value == "" {
			result.Cleared = append(result.Cleared, region.Label)
		} else {
			result.Filled = append(result.Filled, region.Label)
		}
	}

	if err := d.save(templatePath, outputPath); err != nil {
		return nil, err
	}
	return result, nil
}

// ListRegions returns the text regions of the template's first slide
func ListRegions(templatePath string) ([]Region, error) {
	d, err := loadDeck(templatePath)
	if err != nil {
		return nil, err
	}
	return findRegions(d.slide), nil
}

func loadDeck(templatePath string) (*deck, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateLoadError{Message: fmt.Sprintf("template file not found: %s", templatePath), Cause: err}
		}
		return nil, &TemplateLoadError{Message: fmt.Sprintf("failed to read template %s", templatePath), Cause: err}
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &TemplateLoadError{Message: "template is not a presentation package", Cause: err}
	}

	d := &deck{archive: archive, slidePart: firstSlidePart(archive)}
	raw, err := readPart(archive, d.slidePart)
	if err != nil {
		return nil, &TemplateLoadError{Message: fmt.Sprintf("template has no slide at %s", d.slidePart), Cause: err}
	}

	d.slide = etree.NewDocument()
	if err := d.slide.ReadFromBytes(raw); err != nil {
		return nil, &TemplateLoadError{Message: "failed to parse slide XML", Cause: err}
	}
	if d.slide.FindElement("//p:cSld/p:spTree") == nil {
		return nil, &TemplateLoadError{Message: fmt.Sprintf("%s is not a slide", d.slidePart)}
	}
	return d, nil
}

// firstSlidePart resolves the first entry of the slide list through the
// presentation relationships. Packages that do not resolve fall back to slide1.xml.
func firstSlidePart(archive *zip.Reader) string {
	pres, err := readXMLPart(archive, presentationPart)
	if err != nil {
		return defaultSlidePart
	}
	sldID := pres.FindElement("//p:sldIdLst/p:sldId")
	if sldID == nil {
		return defaultSlidePart
	}
	relID := sldID.SelectAttrValue("r:id", "")

	rels, err := readXMLPart(archive, presentationRelsPart)
	if err != nil {
		return defaultSlidePart
	}
	for _, rel := range rels.FindElements("//Relationship") {
		if rel.SelectAttrValue("Id", "") != relID || rel.SelectAttrValue("Type", "") != slideRelType {
			continue
		}
		target := rel.SelectAttrValue("Target", "")
		if strings.HasPrefix(target, "/") {
			return strings.TrimPrefix(target, "/")
		}
		return path.Join(path.Dir(presentationPart), target)
	}
	return defaultSlidePart
}

func readXMLPart(archive *zip.Reader, name string) (*etree.Document, error) {
	raw, err := readPart(archive, name)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, err
	}
	return doc, nil
}

func readPart(archive *zip.Reader, name string) ([]byte, error) {
	f, err := archive.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// save writes the package to a temp file next to outputPath and renames it
// into place, so a failed save leaves no partial output behind.
func (d *deck) save(templatePath, outputPath string) (err error) {
	if samePath(templatePath, outputPath) {
		return &SaveError{Message: "output path must differ from the template path"}
	}

	slideXML, err := d.slide.WriteToBytes()
	if err != nil {
		return &SaveError{Message: "failed to serialize slide", Cause: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".resume-deck-*.pptx")
	if err != nil {
		return &SaveError{Message: fmt.Sprintf("failed to create output in %s", filepath.Dir(outputPath)), Cause: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	zw := zip.NewWriter(tmp)
	for _, f := range d.archive.File {
		if f.Name != d.slidePart {
			if err = zw.Copy(f); err != nil {
				return &SaveError{Message: fmt.Sprintf("failed to copy %s", f.Name), Cause: err}
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: f.Modified})
		if err != nil {
			return &SaveError{Message: "failed to write slide", Cause: err}
		}
		if _, err = w.Write(slideXML); err != nil {
			return &SaveError{Message: "failed to write slide", Cause: err}
		}
	}
	if err = zw.Close(); err != nil {
		return &SaveError{Message: "failed to finalize package", Cause: err}
	}
	// CreateTemp opens with 0600
	if err = tmp.Chmod(0644); err != nil {
		return &SaveError{Message: "failed to set output permissions", Cause: err}
	}
	if err = tmp.Sync(); err != nil {
		return &SaveError{Message: "failed to flush output", Cause: err}
	}
	if err = tmp.Close(); err != nil {
		return &SaveError{Message: "failed to close output", Cause: err}
	}
	if err = os.Rename(tmp.Name(), outputPath); err != nil {
		return &SaveError{Message: fmt.Sprintf("failed to move output to %s", outputPath), Cause: err}
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
