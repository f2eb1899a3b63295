package vocabulary

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/miwok/internal/assets"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrEntryNotFound    = errors.New("entry not found")
)

// Catalog is the ordered set of categories available to study.
type Catalog struct {
	NativeLanguage string     `yaml:"native_language,omitempty"`
	Categories     []Category `yaml:"categories" validate:"required,min=1,unique=ID,dive"`
}

// LoadCatalog reads a catalog from path, or the embedded default catalog when path is empty.
// The loaded catalog is validated before it is returned.
func LoadCatalog(path string) (*Catalog, error) {
	data := assets.DefaultCatalog
	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
		data = contents
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML catalog without validating it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if catalog.NativeLanguage == "" {
		catalog.NativeLanguage = "English"
	}
	return &catalog, nil
}

// Category returns the category with the given ID.
func (c *Catalog) Category(id string) (Category, error) {
	for _, category := range c.Categories {
		if strings.EqualFold(category.ID, id) {
			return category, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s (available: %s)", ErrCategoryNotFound, id, strings.Join(c.IDs(), ", "))
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Categories))
	for _, category := range c.Categories {
		ids = append(ids, category.ID)
	}
	return ids
}

// Validate checks that every category has a unique ID and that every entry has
// both texts and a clip.
func (c *Catalog) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, e.Translate(trans))
		}
		return fmt.Errorf("invalid catalog: %s", strings.Join(messages, ", "))
	}
	return nil
}
