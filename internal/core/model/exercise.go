package model

import "time"

// Category groups exercises.
type Category string

const (
	CategoryStretch   Category = "stretch"
	CategoryEye       Category = "eye"
	CategoryBreathing Category = "breathing"
)

// Label returns the heading used when the category is shown as a secondary exercise.
func (category Category) Label() string {
	switch category {
	case CategoryEye:
		return "Eye Break"
	case CategoryBreathing:
		return "Breathing"
	case CategoryStretch:
		return "Stretch"
	default:
		return string(category)
	}
}

// Exercise is a single catalog entry.
type Exercise struct {
	Name     string
	Duration string
	Group    string
	Steps    []string
	Category Category
}

// Pairing combines a body stretch with a secondary eye or breathing exercise.
type Pairing struct {
	Stretch   Exercise
	Secondary Exercise
}

// Reminder is a fired reminder ready to be presented.
type Reminder struct {
	Sequence int
	At       time.Time
	Message  string
	Pairing  Pairing
}
