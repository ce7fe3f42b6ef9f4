package systems

import (
	"math/rand"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/utils"
)

// AnswerSetGenerator 答案生成器
//
// 从学习集中不放回地抽取 n 张卡，随机指定其中一张为正确答案：
//   - 正确卡的术语面第一个文本作为题目
//   - 每张卡释义面的第一个文本作为选项文本，第一个图片作为选项图片
//   - 选项 Identity 取卡片 ID，重新生成时渲染 key 保持稳定
type AnswerSetGenerator struct {
	rng *rand.Rand
}

// NewAnswerSetGenerator 创建答案生成器，rng 为 nil 时使用全局随机源
func NewAnswerSetGenerator(rng *rand.Rand) *AnswerSetGenerator {
	return &AnswerSetGenerator{rng: rng}
}

// Generate 生成一个回合
//
// 返回：
//   - *components.Round: Index 为 0，由调用方设置
//   - error: 卡片数不足 n 时返回 *game.InsufficientContentError
func (g *AnswerSetGenerator) Generate(set *dataset.ContentSet, n int) (*components.Round, error) {
	if set.Len() < n {
		title := ""
		if set != nil {
			title = set.Title
		}
		return nil, &game.InsufficientContentError{Title: title, Have: set.Len(), Need: n}
	}

	indices := make([]int, set.Len())
	for i := range indices {
		indices[i] = i
	}
	picked := utils.SampleN(g.rng, indices, n)
	correct := g.intn(n)

	round := &components.Round{
		Answers: make([]components.AnswerChoice, 0, n),
	}
	for i, idx := range picked {
		item := &set.Items[idx]
		choice := components.AnswerChoice{
			Identity:  item.ID,
			IsCorrect: i == correct,
		}

		def := item.Definition()
		if text, ok := def.FirstText(); ok {
			choice.Text = &text
		}
		if url, ok := def.FirstImage(); ok {
			choice.ImageURL = &url
		}
		if choice.IsCorrect {
			round.CorrectTermText = item.TermText()
		}
		round.Answers = append(round.Answers, choice)
	}
	return round, nil
}

func (g *AnswerSetGenerator) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}
	return rand.Intn(n)
}
