// Package render 提供基于 ebiten 的绘制和输入辅助：战斗画面渲染、文字排版和按键/点击读取
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 优先在空格处断行；单个单词超过最大宽度时按字符强制断行。
// face 为 nil 或 maxWidth <= 0 时原样返回一行。
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureTextWidth(candidate, face) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// 单词本身超宽，按字符切开
		for MeasureTextWidth(word, face) > maxWidth {
			cut := fitPrefix(word, face, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// TruncateLines 最多保留 maxLines 行，被截断时最后一行以 "..." 结尾
func TruncateLines(lines []string, maxLines int) []string {
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	out[maxLines-1] = strings.TrimRight(out[maxLines-1], " ") + "..."
	return out
}

// fitPrefix 返回能放进 maxWidth 的最长前缀字节数，至少一个字符
func fitPrefix(s string, face text.Face, maxWidth float64) int {
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && MeasureTextWidth(s[:end+size], face) > maxWidth {
			break
		}
		end += size
	}
	return end
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}
