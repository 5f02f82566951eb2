package source

import "os"

// PlainSource reads text content from a .txt or .md file as-is.
type PlainSource struct {
	path string
}

func NewPlainSource(path string) (*PlainSource, error) {
	// Проверяем доступность файла на старте, чтобы ошибка всплыла сразу,
	// а не в середине подготовки проекта.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &PlainSource{path: path}, nil
}

func (s *PlainSource) Text() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *PlainSource) Close() error {
	return nil
}
