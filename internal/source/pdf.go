package source

import (
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDFSource extracts text content from a PDF document, page by page.
type PDFSource struct {
	doc  *fitz.Document
	path string
}

func NewPDFSource(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &PDFSource{doc: doc, path: path}, nil
}

func (s *PDFSource) Text() (string, error) {
	var sb strings.Builder
	for i := 0; i < s.doc.NumPage(); i++ {
		page, err := s.doc.Text(i)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strings.TrimSpace(page))
	}
	return sb.String(), nil
}

func (s *PDFSource) Close() error {
	return s.doc.Close()
}
