package project

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Write persists a project to a YAML file.
func Write(p Project, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read loads a project from a YAML file.
func Read(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, err
	}

	p := New()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Project{}, err
	}

	return p, nil
}
