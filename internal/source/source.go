package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source yields the raw text content for a project.
type Source interface {
	Text() (string, error)
	Close() error
}

// Open picks a source implementation by file extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return NewPDFSource(path)
	case ".txt", ".md":
		return NewPlainSource(path)
	default:
		return nil, fmt.Errorf("неподдерживаемый формат текста: %s", path)
	}
}
