package utils

import "math/rand"

// Shuffle 使用 Fisher–Yates 算法原地打乱切片
//
// 每种排列出现的概率相同。rng 为 nil 时使用全局随机源。
// 答案生成和道具抽取共用此函数，保证两处的随机分布一致。
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		items[i], items[j] = items[j], items[i]
	}
}

// Permutation 返回 items 的一个随机排列副本，不修改原切片
func Permutation[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	Shuffle(rng, out)
	return out
}

// SampleN 不放回地随机抽取 n 个元素
// n 超过长度时返回整个排列
func SampleN[T any](rng *rand.Rand, items []T, n int) []T {
	perm := Permutation(rng, items)
	if n < 0 {
		n = 0
	}
	if n > len(perm) {
		n = len(perm)
	}
	return perm[:n]
}
