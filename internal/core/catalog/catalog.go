package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"stretchtimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

//go:embed exercises.yaml
var defaultDocument []byte

// ErrEmptyCategory indicates a catalog category without exercises.
var ErrEmptyCategory = errors.New("catalog category is empty")

type exerciseEntry struct {
	Name     string   `yaml:"name"`
	Group    string   `yaml:"group"`
	Duration string   `yaml:"duration"`
	Steps    []string `yaml:"steps"`
}

type document struct {
	Stretches []exerciseEntry `yaml:"stretches"`
	Eye       []exerciseEntry `yaml:"eye"`
	Breathing []exerciseEntry `yaml:"breathing"`
}

// Catalog holds the read-only exercise lists.
type Catalog struct {
	byCategory map[model.Category][]model.Exercise
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultDocument)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog or panics on error.
func MustDefault() *Catalog {
	catalog, err := Default()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Parse decodes a YAML catalog document. Every category must contain at
// least one exercise and every exercise needs a name and steps.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	catalog := &Catalog{byCategory: map[model.Category][]model.Exercise{}}
	sections := []struct {
		category model.Category
		entries  []exerciseEntry
	}{
		{model.CategoryStretch, doc.Stretches},
		{model.CategoryEye, doc.Eye},
		{model.CategoryBreathing, doc.Breathing},
	}
	for _, section := range sections {
		exercises, err := convertEntries(section.category, section.entries)
		if err != nil {
			return nil, err
		}
		catalog.byCategory[section.category] = exercises
	}
	return catalog, nil
}

// New builds a catalog from in-memory lists.
func New(stretches, eye, breathing []model.Exercise) *Catalog {
	return &Catalog{byCategory: map[model.Category][]model.Exercise{
		model.CategoryStretch:   withCategory(stretches, model.CategoryStretch),
		model.CategoryEye:       withCategory(eye, model.CategoryEye),
		model.CategoryBreathing: withCategory(breathing, model.CategoryBreathing),
	}}
}

// Exercises returns a copy of the exercises in the given category.
func (catalog *Catalog) Exercises(category model.Category) []model.Exercise {
	return append([]model.Exercise(nil), catalog.byCategory[category]...)
}

// Len returns the number of exercises in the given category.
func (catalog *Catalog) Len(category model.Category) int {
	return len(catalog.byCategory[category])
}

// At returns the exercise at index within the category.
func (catalog *Catalog) At(category model.Category, index int) (model.Exercise, error) {
	exercises := catalog.byCategory[category]
	if len(exercises) == 0 {
		return model.Exercise{}, fmt.Errorf("%s: %w", category, ErrEmptyCategory)
	}
	if index < 0 || index >= len(exercises) {
		return model.Exercise{}, fmt.Errorf("%s: index %d out of range", category, index)
	}
	return exercises[index], nil
}

func convertEntries(category model.Category, entries []exerciseEntry) ([]model.Exercise, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", category, ErrEmptyCategory)
	}
	exercises := make([]model.Exercise, 0, len(entries))
	for index, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("%s exercise %d: missing name", category, index)
		}
		if len(entry.Steps) == 0 {
			return nil, fmt.Errorf("%s exercise %q: missing steps", category, name)
		}
		exercises = append(exercises, model.Exercise{
			Name:     name,
			Duration: strings.TrimSpace(entry.Duration),
			Group:    strings.TrimSpace(entry.Group),
			Steps:    append([]string(nil), entry.Steps...),
			Category: category,
		})
	}
	return exercises, nil
}

func withCategory(exercises []model.Exercise, category model.Category) []model.Exercise {
	result := make([]model.Exercise, len(exercises))
	for index, exercise := range exercises {
		exercise.Category = category
		result[index] = exercise
	}
	return result
}
