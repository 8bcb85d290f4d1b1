// Package traitdata decodes YAML trait definitions into a traits.Registry.
package traitdata

import (
	"bytes"
	_ "embed"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/traits"
)

//go:embed traits.yaml
var defaultTraits []byte

// File is the top-level document of a trait file
type File struct {
	Traits []traits.Definition `yaml:"traits"`
}

// Decode reads a trait file. Unknown fields are rejected so a typo in a
// definition fails loudly instead of silently dropping an effect.
func Decode(r io.Reader) (*traits.Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("trait file is empty")
		}
		return nil, errors.InvalidArgumentf("failed to decode trait file: %v", err)
	}

	built := make([]*traits.Trait, 0, len(file.Traits))
	for i, def := range file.Traits {
		trait, err := traits.New(def)
		if err != nil {
			return nil, errors.Wrapf(err, "trait %d", i)
		}
		built = append(built, trait)
	}

	registry, err := traits.NewRegistry(built...)
	if err != nil {
		return nil, err
	}
	log.Printf("[TRAITDATA] Loaded %d traits", len(built))
	return registry, nil
}

// LoadFile decodes the trait file at path
func LoadFile(path string) (*traits.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("trait file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open trait file %s", path)
	}
	defer f.Close()

	registry, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return registry, nil
}

// Default returns the built-in trait set
func Default() (*traits.Registry, error) {
	return Decode(bytes.NewReader(defaultTraits))
}

// Load reads path when set and falls back to the built-in set otherwise
func Load(path string) (*traits.Registry, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
