package arena

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"
)

// ErrMissingFilePath is returned when a save or load is requested
// without a target path.
var ErrMissingFilePath = errors.New("arena file path is not set")

// ErrFileNotFound is returned when loading from a path that does not
// exist.
var ErrFileNotFound = errors.New("arena file not found")

// Save writes the document to path as XML. The document is encoded in
// memory first, so an encoding failure never leaves a truncated file
// behind.
func (a *Arena) Save(path string) error {
	if path == "" {
		return ErrMissingFilePath
	}

	data, err := xml.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "Failed to encode arena %q", a.Name)
	}
	data = append([]byte(xml.Header), data...)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "Failed to write %q", path)
	}
	return nil
}

// Load reads an arena document from path.
func Load(path string) (*Arena, error) {
	if path == "" {
		return nil, ErrMissingFilePath
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%q", path)
		}
		return nil, errors.Wrapf(err, "Failed to open %q", path)
	}
	defer f.Close()

	var a Arena
	if err := xml.NewDecoder(f).Decode(&a); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode arena from %q", path)
	}
	return &a, nil
}
