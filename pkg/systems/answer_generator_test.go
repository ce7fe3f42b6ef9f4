package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/game"
)

// TestGenerate_ThousandRounds 10 张卡生成 1000 次，每次 4 个不同卡片且恰好一个正确
func TestGenerate_ThousandRounds(t *testing.T) {
	gen := NewAnswerSetGenerator(rand.New(rand.NewSource(11)))
	set := newTestSet(10)
	correctPositions := make([]int, 4)

	for i := 0; i < 1000; i++ {
		round, err := gen.Generate(set, 4)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(round.Answers) != 4 {
			t.Fatalf("round has %d answers, want 4", len(round.Answers))
		}

		correct := 0
		identities := make(map[string]bool)
		for _, a := range round.Answers {
			if a.IsCorrect {
				correct++
			}
			if identities[a.Identity] {
				t.Fatalf("duplicate identity %q in round %d", a.Identity, i)
			}
			identities[a.Identity] = true
		}
		if correct != 1 {
			t.Fatalf("round %d has %d correct answers", i, correct)
		}
		correctPositions[round.CorrectIndex()]++
	}

	// 正确答案位置应分布在所有槽位
	for pos, c := range correctPositions {
		if c == 0 {
			t.Errorf("correct answer never placed at slot %d", pos)
		}
	}
}

// TestGenerate_TermMatchesCorrectChoice 题目文本来自正确卡的术语面
func TestGenerate_TermMatchesCorrectChoice(t *testing.T) {
	gen := NewAnswerSetGenerator(rand.New(rand.NewSource(5)))
	set := newTestSet(6)
	byID := make(map[string]*dataset.StudiableItem)
	for i := range set.Items {
		byID[set.Items[i].ID] = &set.Items[i]
	}

	for i := 0; i < 50; i++ {
		round, err := gen.Generate(set, 4)
		if err != nil {
			t.Fatal(err)
		}
		correct := round.Answers[round.CorrectIndex()]
		item := byID[correct.Identity]
		if round.CorrectTermText != item.TermText() {
			t.Errorf("term %q does not belong to correct item %q", round.CorrectTermText, item.ID)
		}
		wantDef, _ := item.Definition().FirstText()
		if correct.DisplayText() != wantDef {
			t.Errorf("choice text %q, want %q", correct.DisplayText(), wantDef)
		}
	}
}

func TestGenerate_MediaVariants(t *testing.T) {
	set := &dataset.ContentSet{
		Title: "media",
		Items: []dataset.StudiableItem{
			{ID: "text", Sides: [2]dataset.CardSide{
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: "t1"}}},
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: "first"}, {Kind: dataset.MediaText, Value: "second"}}},
			}},
			{ID: "image", Sides: [2]dataset.CardSide{
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: "t2"}}},
				{Media: []dataset.Media{{Kind: dataset.MediaImage, Value: "https://example.com/a.png"}}},
			}},
			{ID: "both", Sides: [2]dataset.CardSide{
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: "t3"}}},
				{Media: []dataset.Media{{Kind: dataset.MediaImage, Value: "https://example.com/b.png"}, {Kind: dataset.MediaText, Value: "caption"}}},
			}},
			{ID: "empty", Sides: [2]dataset.CardSide{
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: "t4"}}},
				{},
			}},
		},
	}

	round, err := NewAnswerSetGenerator(rand.New(rand.NewSource(1))).Generate(set, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(round.Answers) != 4 {
		t.Fatalf("empty choice must not be dropped, got %d answers", len(round.Answers))
	}

	for _, a := range round.Answers {
		switch a.Identity {
		case "text":
			if a.DisplayText() != "first" || a.HasImage() {
				t.Errorf("text choice: %+v", a)
			}
		case "image":
			if a.Text != nil || !a.HasImage() {
				t.Errorf("image choice: %+v", a)
			}
		case "both":
			if a.DisplayText() != "caption" || *a.ImageURL != "https://example.com/b.png" {
				t.Errorf("both choice: %+v", a)
			}
		case "empty":
			if a.Text != nil || a.ImageURL != nil {
				t.Errorf("empty choice: %+v", a)
			}
		default:
			t.Errorf("unexpected identity %q", a.Identity)
		}
	}
}

func TestGenerate_InsufficientContent(t *testing.T) {
	gen := NewAnswerSetGenerator(nil)

	_, err := gen.Generate(newTestSet(3), 4)
	var insufficient *game.InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientContentError, got %v", err)
	}
	if insufficient.Have != 3 || insufficient.Need != 4 {
		t.Errorf("error fields = %+v", insufficient)
	}

	if _, err := gen.Generate(nil, 4); !errors.As(err, &insufficient) {
		t.Errorf("nil set should be insufficient, got %v", err)
	}
}
