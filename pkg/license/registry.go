package license

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/trekcheck/trekcheck/pkg/sanitizer"
	"github.com/trekcheck/trekcheck/pkg/towing"
)

//go:embed classes.yaml
var defaultTable []byte

var validate = validator.New()

// normalizeLabel maps user and file input onto the stored label form.
var normalizeLabel = sanitizer.Compose(sanitizer.SingleLine, sanitizer.TrimToUpper)

// Class is one row of the license table.
type Class struct {
	Label                string `yaml:"label" json:"label" validate:"required,max=16"`
	MaxCombinationWeight int    `yaml:"max_combination_weight" json:"max_combination_weight" validate:"gte=0,lte=60000"`
	Description          string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Limit converts the class into the limit consumed by towing.Evaluate.
func (c Class) Limit() towing.LicenseLimit {
	return towing.LicenseLimit{
		ClassLabel:           c.Label,
		MaxCombinationWeight: c.MaxCombinationWeight,
	}
}

type table struct {
	Classes []Class `yaml:"classes" validate:"required,min=1,unique=Label,dive"`
}

// Registry is an immutable, validated license table. It is safe for concurrent use.
type Registry struct {
	classes []Class
	index   map[string]int
}

// Default returns the registry built from the embedded table.
func Default() (*Registry, error) {
	return Parse(defaultTable)
}

// Parse builds a registry from a YAML document.
func Parse(data []byte) (*Registry, error) {
	return Load(bytes.NewReader(data))
}

// Load reads a YAML table from r.
func Load(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t table
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrReadTable, err)
	}

	for i := range t.Classes {
		t.Classes[i].Label = normalizeLabel(t.Classes[i].Label)
		t.Classes[i].Description = sanitizer.SingleLine(t.Classes[i].Description)
	}
	if err := validate.Struct(t); err != nil {
		return nil, errors.Join(ErrInvalidTable, err)
	}

	reg := &Registry{
		classes: t.Classes,
		index:   make(map[string]int, len(t.Classes)),
	}
	for i, c := range t.Classes {
		reg.index[c.Label] = i
	}
	return reg, nil
}

// LoadFile reads a YAML table from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadTable, err)
	}
	defer f.Close()

	return Load(f)
}

// Lookup returns the limit for label, matched case-insensitively.
func (r *Registry) Lookup(label string) (towing.LicenseLimit, error) {
	c, ok := r.Class(label)
	if !ok {
		return towing.LicenseLimit{}, fmt.Errorf("%w: %q", ErrUnknownLicenseClass, sanitizer.Trim(label))
	}
	return c.Limit(), nil
}

// Class returns the table row for label.
func (r *Registry) Class(label string) (Class, bool) {
	i, ok := r.index[normalizeLabel(label)]
	if !ok {
		return Class{}, false
	}
	return r.classes[i], true
}

// Classes returns the table rows in file order.
func (r *Registry) Classes() []Class {
	out := make([]Class, len(r.classes))
	copy(out, r.classes)
	return out
}

// Labels returns the class labels in file order.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.classes))
	for i, c := range r.classes {
		out[i] = c.Label
	}
	return out
}
