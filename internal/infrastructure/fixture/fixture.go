// Package fixture reads catalog seed data from YAML files.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the content of a fixture file
type File struct {
	CustomerOptions    []CustomerOption `yaml:"customer_options"`
	Products           []Product        `yaml:"products"`
	OptionGroups       []OptionGroup    `yaml:"option_groups"`
	RandomOptionGroups int              `yaml:"random_option_groups"`
}

// CustomerOption is one customer option entry
type CustomerOption struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
}

// Product is one product entry
type Product struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// OptionGroup is one explicit option group entry. Omitted keys stay nil so
// the factory can tell them apart from empty values.
type OptionGroup struct {
	Code         *string           `yaml:"code"`
	Translations map[string]string `yaml:"translations"`
	Options      []string          `yaml:"options"`
	Products     []string          `yaml:"products"`
}

// LoadFile reads and parses the fixture file at path
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a fixture document. Unknown keys are rejected; an empty
// document yields an empty File.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	if f.RandomOptionGroups < 0 {
		return nil, fmt.Errorf("invalid fixture: random_option_groups cannot be negative, got %d", f.RandomOptionGroups)
	}
	return &f, nil
}
