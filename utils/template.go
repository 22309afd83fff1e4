package utils

import (
	"html/template"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadTemplates parses every template matching the glob pattern into one template set
func LoadTemplates(pattern string) (*template.Template, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid template pattern %s", pattern)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no templates match %s", pattern)
	}

	tmpl, err := template.ParseFiles(files...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse templates %s", pattern)
	}

	return tmpl, nil
}
