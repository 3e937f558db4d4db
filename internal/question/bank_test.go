package question_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/saulo-duarte/devops-exam/internal/question"
)

func makeQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:      fmt.Sprintf("Q%d", i),
			Text:    fmt.Sprintf("question %d", i),
			Choices: []string{"A", "B", "C", "D"},
			Answer:  "B",
		}
	}
	return qs
}

func TestSampleDistinctWithDensePositions(t *testing.T) {
	for _, size := range []int{15, 16, 20, 100} {
		t.Run(fmt.Sprintf("bank=%d", size), func(t *testing.T) {
			bank := question.NewBank(makeQuestions(size), question.NewSeededRand(uint64(size)))

			got, err := bank.Sample(15)
			if err != nil {
				t.Fatalf("Sample failed: %v", err)
			}
			if len(got) != 15 {
				t.Fatalf("expected 15 questions, got %d", len(got))
			}

			ids := map[string]bool{}
			for i, q := range got {
				if ids[q.ID] {
					t.Errorf("question %s sampled twice", q.ID)
				}
				ids[q.ID] = true
				if q.Index != i {
					t.Errorf("position %d tagged with index %d", i, q.Index)
				}
			}
		})
	}
}

func TestSampleInsufficientBank(t *testing.T) {
	for _, size := range []int{0, 1, 14} {
		bank := question.NewBank(makeQuestions(size), question.NewSeededRand(1))
		_, err := bank.Sample(15)
		if !errors.Is(err, question.ErrInsufficientBank) {
			t.Errorf("bank=%d: expected ErrInsufficientBank, got %v", size, err)
		}
	}
}

func TestSampleReproducibleWithSeed(t *testing.T) {
	a, _ := question.NewBank(makeQuestions(30), question.NewSeededRand(42)).Sample(15)
	b, _ := question.NewBank(makeQuestions(30), question.NewSeededRand(42)).Sample(15)

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("position %d differs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestSampleDoesNotMutateBank(t *testing.T) {
	bank := question.NewBank(makeQuestions(20), question.NewSeededRand(7))

	got, _ := bank.Sample(15)
	got[0].Choices[0] = "mutated"

	again, _ := bank.Sample(20)
	for _, q := range again {
		if q.Choices[0] == "mutated" {
			t.Fatal("sampled question shares its options with the bank")
		}
	}
}

func TestSampleZero(t *testing.T) {
	got, err := question.NewBank(nil, nil).Sample(0)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty selection, got %v, %v", got, err)
	}
}

func TestPublicHidesAnswer(t *testing.T) {
	q := makeQuestions(1)[0]
	q.Index = 3
	p := q.Public()
	if p.ID != q.ID || p.Index != 3 || p.Text != q.Text || len(p.Choices) != len(q.Choices) {
		t.Fatalf("unexpected public view: %+v", p)
	}
}
