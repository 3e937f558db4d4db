package question

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBank []byte

var ErrInvalidQuestion = errors.New("invalid question")

type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// Default returns the bank compiled into the binary.
func Default() ([]Question, error) {
	return Load(bytes.NewReader(defaultBank))
}

func LoadFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) ([]Question, error) {
	var file bankFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Questions))
	for i := range file.Questions {
		q := &file.Questions[i]
		q.Text = strings.TrimSpace(q.Text)
		if q.ID == "" {
			q.ID = deriveID(q.Text)
		}
		if err := validate(*q); err != nil {
			return nil, err
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidQuestion, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return file.Questions, nil
}

func validate(q Question) error {
	if q.Text == "" {
		return fmt.Errorf("%w: %s has no text", ErrInvalidQuestion, q.ID)
	}
	if len(q.Choices) < 2 {
		return fmt.Errorf("%w: %s needs at least two options", ErrInvalidQuestion, q.ID)
	}
	labels := make(map[string]struct{}, len(q.Choices))
	for _, c := range q.Choices {
		if _, dup := labels[c]; dup {
			return fmt.Errorf("%w: %s repeats option %q", ErrInvalidQuestion, q.ID, c)
		}
		labels[c] = struct{}{}
	}
	if !q.HasChoice(q.Answer) {
		return fmt.Errorf("%w: %s answer %q is not one of its options", ErrInvalidQuestion, q.ID, q.Answer)
	}
	return nil
}
