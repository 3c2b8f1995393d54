package authoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/trisha-agni/flashcard-cong-app/internal/deck"
)

type fakeCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func bioDeck() *deck.Deck {
	return &deck.Deck{Name: "biology", Terms: []string{"osmosis", "mitosis"}}
}

func TestAuthor_PromptCarriesTermsAndFormat(t *testing.T) {
	fc := &fakeCompleter{reply: "1. Q?\nA. x\nB. y"}

	_, err := Author(context.Background(), fc, bioDeck(), KindMCQ, LengthShort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := fc.prompts[0]
	for _, want := range []string{
		"osmosis, mitosis",
		"MCQ",
		"a 15 minute test",
		"number and a period",
		"capital letter (A-D)",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAuthor_MCQ(t *testing.T) {
	fc := &fakeCompleter{reply: "1. Q1?\nA. x\nB. y\n2. Q2?\nA. x\nB. y"}

	test, err := Author(context.Background(), fc, bioDeck(), KindMCQ, LengthShort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if test.Kind != KindMCQ || len(test.MCQs) != 2 || len(test.FRQs) != 0 {
		t.Fatalf("unexpected test: %+v", test)
	}
	if test.Count() != 2 || test.Empty() {
		t.Fatal("count/empty disagree with parsed questions")
	}
}

func TestAuthor_FRQ(t *testing.T) {
	fc := &fakeCompleter{reply: "1. Explain osmosis.\n2. Explain mitosis."}

	test, err := Author(context.Background(), fc, bioDeck(), KindFRQ, LengthLong)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if test.Kind != KindFRQ || len(test.FRQs) != 2 || len(test.MCQs) != 0 {
		t.Fatalf("unexpected test: %+v", test)
	}
}

func TestAuthor_EmptyReplyIsEmptyTestNotError(t *testing.T) {
	fc := &fakeCompleter{reply: "   \n\n  "}

	test, err := Author(context.Background(), fc, bioDeck(), KindMCQ, LengthShort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !test.Empty() {
		t.Fatalf("expected empty test, got %+v", test)
	}
}

func TestAuthor_GatewayErrorPropagates(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("provider down")}

	_, err := Author(context.Background(), fc, bioDeck(), KindMCQ, LengthShort)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "biology") {
		t.Fatalf("error should name the deck: %v", err)
	}
}
