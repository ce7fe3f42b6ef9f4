package systems

import (
	"math/rand"

	"github.com/decker502/quizbattle/pkg/components"
)

// PickLaserTarget 选择激光要烧掉的选项
//
// 均匀随机抽取下标，抽中正确答案则重抽；重抽超过 maxRetries 次后，
// 改为在所有错误选项中均匀挑选。保证永远不会选中正确答案，且一定终止。
//
// 返回：
//   - int: 目标下标
//   - bool: 回合中没有错误选项时为 false
func PickLaserTarget(rng *rand.Rand, round *components.Round, maxRetries int) (int, bool) {
	n := len(round.Answers)
	if n == 0 {
		return -1, false
	}
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		i := intn(n)
		if !round.Answers[i].IsCorrect {
			return i, true
		}
	}

	wrong := make([]int, 0, n)
	for i, a := range round.Answers {
		if !a.IsCorrect {
			wrong = append(wrong, i)
		}
	}
	if len(wrong) == 0 {
		return -1, false
	}
	return wrong[intn(len(wrong))], true
}
