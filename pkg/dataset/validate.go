package dataset

import "fmt"

// Validate 检查学习集能否用于对战
//
// 卡片数少于 need 时无法开局；缺少术语文本的卡被抽中为正确答案时题目为空；
// 释义面既没有文本也没有图片时选项显示为空白卡。后两类仍可开局，只作为提示。
func Validate(set *ContentSet, need int) []string {
	var issues []string
	if set.Len() < need {
		issues = append(issues, fmt.Sprintf("has %d items, need at least %d", set.Len(), need))
	}
	if set == nil {
		return issues
	}

	ids := make(map[string]int, len(set.Items))
	for i := range set.Items {
		item := &set.Items[i]
		label := item.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if prev, dup := ids[item.ID]; dup && item.ID != "" {
			issues = append(issues, fmt.Sprintf("item %s: duplicate id (first at #%d)", label, prev+1))
		} else {
			ids[item.ID] = i
		}
		if item.TermText() == "" {
			issues = append(issues, fmt.Sprintf("item %s: term has no text", label))
		}
		def := item.Definition()
		_, hasText := def.FirstText()
		_, hasImage := def.FirstImage()
		if !hasText && !hasImage {
			issues = append(issues, fmt.Sprintf("item %s: definition is empty", label))
		}
	}
	return issues
}
