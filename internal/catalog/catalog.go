// Package catalog loads the static lesson library embedded in the
// binary. The catalog is read-only for the process lifetime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Lucas345987/Python-Master/internal/course"
)

//go:embed data/lessons.json
var lessonsJSON []byte

// Catalog is an ordered, immutable collection of lessons with an ID
// index.
type Catalog struct {
	lessons []Lesson
	byID    map[string]int
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses and validates the embedded lesson data. The result is
// cached; subsequent calls return the same catalog.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(lessonsJSON)
	})
	return loaded, loadErr
}

func parse(data []byte) (*Catalog, error) {
	var lessons []Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		return nil, fmt.Errorf("parse lesson data: %w", err)
	}
	if err := validateLessons(lessons); err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(lessons))
	for i := range lessons {
		byID[lessons[i].ID] = i
	}
	return &Catalog{lessons: lessons, byID: byID}, nil
}

// validateLessons performs all structural checks on the lesson set.
// Returns a combined error describing all problems found, or nil.
func validateLessons(lessons []Lesson) error {
	var errs []string

	idSet := make(map[string]bool, len(lessons))
	for _, l := range lessons {
		if l.ID == "" {
			errs = append(errs, "lesson with empty ID")
			continue
		}
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true

		if l.Title == "" {
			errs = append(errs, fmt.Sprintf("lesson %q: empty title", l.ID))
		}
		if !l.Level.Valid() {
			errs = append(errs, fmt.Sprintf("lesson %q: unknown level %q", l.ID, l.Level))
		}
		if !l.OutputType.Valid() {
			errs = append(errs, fmt.Sprintf("lesson %q: unknown output type %q", l.ID, l.OutputType))
		}
		if l.SourceCode == "" {
			errs = append(errs, fmt.Sprintf("lesson %q: empty source code", l.ID))
		}
		if len(l.OutputData) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %q: missing output data", l.ID))
			continue
		}

		// Payload must decode for its declared type.
		var derr error
		if l.OutputType == OutputTable {
			_, derr = l.TableOutput()
		} else {
			_, derr = l.TextOutput()
		}
		if derr != nil {
			errs = append(errs, derr.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("lesson validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Len returns the number of lessons.
func (c *Catalog) Len() int { return len(c.lessons) }

// All returns the lessons in catalog order.
func (c *Catalog) All() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// ByID looks up a lesson by its unique ID.
func (c *Catalog) ByID(id string) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return c.lessons[i], true
}

// ByLevel returns the lessons at the given difficulty, in catalog order.
func (c *Catalog) ByLevel(level course.Difficulty) []Lesson {
	var out []Lesson
	for _, l := range c.lessons {
		if l.Level == level {
			out = append(out, l)
		}
	}
	return out
}
