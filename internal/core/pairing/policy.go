package pairing

import (
	"math/rand"
	"sync"
	"time"

	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
)

// Policy picks a random stretch and alternates the secondary category
// between eye and breathing exercises.
type Policy struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	rng     *rand.Rand
	last    model.Category
}

// New creates a policy. A nil source seeds from the current time.
// The first pairing always uses an eye exercise.
func New(exercises *catalog.Catalog, source rand.Source) *Policy {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Policy{
		catalog: exercises,
		rng:     rand.New(source),
		last:    model.CategoryBreathing,
	}
}

// Next returns the next pairing and records its secondary category.
func (policy *Policy) Next() (model.Pairing, error) {
	policy.mu.Lock()
	defer policy.mu.Unlock()

	stretch, err := policy.pickLocked(model.CategoryStretch)
	if err != nil {
		return model.Pairing{}, err
	}

	category := nextSecondary(policy.last)
	secondary, err := policy.pickLocked(category)
	if err != nil {
		return model.Pairing{}, err
	}
	policy.last = category

	return model.Pairing{Stretch: stretch, Secondary: secondary}, nil
}

// LastSecondary returns the category used by the most recent pairing.
func (policy *Policy) LastSecondary() model.Category {
	policy.mu.Lock()
	defer policy.mu.Unlock()
	return policy.last
}

func (policy *Policy) pickLocked(category model.Category) (model.Exercise, error) {
	count := policy.catalog.Len(category)
	if count == 0 {
		return policy.catalog.At(category, 0)
	}
	return policy.catalog.At(category, policy.rng.Intn(count))
}

func nextSecondary(last model.Category) model.Category {
	if last == model.CategoryEye {
		return model.CategoryBreathing
	}
	return model.CategoryEye
}
