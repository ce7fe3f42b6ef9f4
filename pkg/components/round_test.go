package components

import "testing"

func strPtr(s string) *string { return &s }

func TestRound_CorrectIndexAndClone(t *testing.T) {
	r := &Round{
		Index: 2,
		Answers: []AnswerChoice{
			{Text: strPtr("a"), Identity: "1"},
			{Text: strPtr("b"), Identity: "2", IsCorrect: true},
			{ImageURL: strPtr("https://example.com/c.png"), Identity: "3"},
		},
		CorrectTermText: "B",
	}

	if got := r.CorrectIndex(); got != 1 {
		t.Errorf("CorrectIndex = %d, want 1", got)
	}

	clone := r.Clone()
	clone.Answers[0].Hidden = true
	if r.Answers[0].Hidden {
		t.Error("Clone should not share the answers slice")
	}

	if (&Round{}).CorrectIndex() != -1 {
		t.Error("empty round should report -1")
	}
	var nilRound *Round
	if nilRound.Clone() != nil {
		t.Error("nil clone should be nil")
	}
}

func TestAnswerChoice_Display(t *testing.T) {
	empty := AnswerChoice{}
	if empty.DisplayText() != "" || empty.HasImage() {
		t.Error("empty choice should have no text and no image")
	}
	c := AnswerChoice{Text: strPtr("dog"), ImageURL: strPtr("u")}
	if c.DisplayText() != "dog" || !c.HasImage() {
		t.Error("choice should expose both text and image")
	}
}

func TestAnswerChoice_ImageLabel(t *testing.T) {
	tests := []struct {
		name string
		url  *string
		want string
	}{
		{"没有图片", nil, ""},
		{"空地址", strPtr(""), ""},
		{"取文件名", strPtr("https://upload.wikimedia.org/wikipedia/commons/e/ec/Mona_Lisa.jpg?width=200"), "[image: Mona_Lisa.jpg]"},
		{"相对路径", strPtr("cats/tabby.png"), "[image: tabby.png]"},
		{"只有主机", strPtr("https://example.com"), "[image: example.com]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AnswerChoice{ImageURL: tt.url}
			if got := c.ImageLabel(); got != tt.want {
				t.Errorf("ImageLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTurnPhase_String(t *testing.T) {
	tests := []struct {
		phase TurnPhase
		want  string
	}{
		{PhaseSelectingContent, "SelectingContent"},
		{PhaseAwaitingSelection, "AwaitingSelection"},
		{PhaseGameOver, "GameOver"},
		{TurnPhase(42), "TurnPhase(42)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestAnimationForPhase 只有动画阶段会挂起等待回报
func TestAnimationForPhase(t *testing.T) {
	animated := map[TurnPhase]AnimationKind{
		PhaseEnemyAdvancing:   AnimEnemyAdvance,
		PhasePlayerAdvancing:  AnimPlayerAdvance,
		PhasePlayerRetreating: AnimPlayerRetreat,
		PhaseEnemyAttacking:   AnimEnemyAttack,
	}
	for p := PhaseSelectingContent; p <= PhaseGameOver; p++ {
		kind, ok := AnimationForPhase(p)
		want, wantOK := animated[p]
		if ok != wantOK || (ok && kind != want) {
			t.Errorf("AnimationForPhase(%v) = %v, %v; want %v, %v", p, kind, ok, want, wantOK)
		}
	}
}

func TestPowerUpName_Valid(t *testing.T) {
	for _, p := range AllPowerUps {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if PowerUpName("shield").Valid() {
		t.Error("shield is not in the catalog")
	}
}
