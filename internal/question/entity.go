package question

import "github.com/google/uuid"

// Question is a bank entry. Index is only meaningful on questions returned by
// Bank.Sample, where it is the 0-based position within that selection.
type Question struct {
	ID      string   `yaml:"id" json:"id"`
	Text    string   `yaml:"question" json:"question"`
	Choices []string `yaml:"options" json:"options"`
	Answer  string   `yaml:"answer" json:"answer"`
	Index   int      `yaml:"-" json:"index"`
}

// PublicQuestion is what a participant sees: no correct answer.
type PublicQuestion struct {
	ID      string   `json:"id"`
	Index   int      `json:"index"`
	Text    string   `json:"question"`
	Choices []string `json:"options"`
}

var idNamespace = uuid.MustParse("6f1c2a8e-3d4b-4c5a-9e7f-0a1b2c3d4e5f")

func (q Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:      q.ID,
		Index:   q.Index,
		Text:    q.Text,
		Choices: append([]string(nil), q.Choices...),
	}
}

func (q Question) HasChoice(label string) bool {
	for _, c := range q.Choices {
		if c == label {
			return true
		}
	}
	return false
}

func PublicList(questions []Question) []PublicQuestion {
	out := make([]PublicQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Public())
	}
	return out
}

func deriveID(text string) string {
	return uuid.NewSHA1(idNamespace, []byte(text)).String()
}
