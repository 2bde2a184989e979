// Package yaml loads sitecensus configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/sitecensus"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a catalog file. Keys present in the file replace the
// corresponding tables of sitecensus.DefaultCatalog; absent keys keep their
// defaults. Unknown keys are rejected so typos do not silently fall back.
func LoadCatalog(path string) (*sitecensus.Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, sitecensus.Errorf(sitecensus.ENOTFOUND, "catalog file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog document over the defaults and validates it.
func ParseCatalog(data []byte) (*sitecensus.Catalog, error) {
	catalog := sitecensus.DefaultCatalog()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(catalog); err != nil && !errors.Is(err, io.EOF) {
		return nil, sitecensus.Errorf(sitecensus.EINVALID, "invalid catalog: %v", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
