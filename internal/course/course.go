// Package course defines the closed parameter sets every AI mode is
// shaped by: the library being studied and the difficulty level.
package course

import "fmt"

// Topic is one of the Python libraries covered by the app.
type Topic string

const (
	TopicPandas    Topic = "Pandas"
	TopicNumPy     Topic = "NumPy"
	TopicOpenCV    Topic = "OpenCV"
	TopicStreamlit Topic = "Streamlit"
)

// Topics returns all topics in display order.
func Topics() []Topic {
	return []Topic{TopicPandas, TopicNumPy, TopicOpenCV, TopicStreamlit}
}

// DefaultTopic is the initial selection on every mode screen.
func DefaultTopic() Topic { return TopicPandas }

func (t Topic) String() string { return string(t) }

// Valid reports whether t is a member of the closed topic set.
func (t Topic) Valid() bool {
	switch t {
	case TopicPandas, TopicNumPy, TopicOpenCV, TopicStreamlit:
		return true
	}
	return false
}

// ParseTopic converts a string into a Topic.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown topic: %q", s)
	}
	return t, nil
}

// Difficulty is one of the three ordered course levels.
// Labels are kept in Portuguese, matching the lesson material.
type Difficulty string

const (
	Basico        Difficulty = "Básico"
	Intermediario Difficulty = "Intermediário"
	Avancado      Difficulty = "Avançado"
)

// Difficulties returns all levels ordered from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Basico, Intermediario, Avancado}
}

// DefaultDifficulty is the initial selection on every mode screen.
func DefaultDifficulty() Difficulty { return Basico }

func (d Difficulty) String() string { return string(d) }

// Valid reports whether d is a member of the closed difficulty set.
func (d Difficulty) Valid() bool {
	switch d {
	case Basico, Intermediario, Avancado:
		return true
	}
	return false
}

// Rank returns the position of d in the difficulty ordering,
// 0 for Básico through 2 for Avançado, or -1 for an invalid value.
func (d Difficulty) Rank() int {
	for i, v := range Difficulties() {
		if v == d {
			return i
		}
	}
	return -1
}

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
	return d, nil
}
