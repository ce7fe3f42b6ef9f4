package components

import (
	"net/url"
	"path"
)

// AnswerChoice 单个答案选项
//
// Text 与 ImageURL 至少一个非空属于正常内容；两者都为空时选项仍保留，
// 以保证每回合选项数固定。
type AnswerChoice struct {
	Text      *string
	ImageURL  *string
	IsCorrect bool
	Identity  string // 来源学习卡 ID，作为稳定的渲染 key

	// Hidden 仅影响显示（激光烧掉或已答对），不影响判定
	Hidden bool
}

// DisplayText 返回可显示的文本，没有文本时为空串
func (c AnswerChoice) DisplayText() string {
	if c.Text == nil {
		return ""
	}
	return *c.Text
}

// HasImage 是否带图片
func (c AnswerChoice) HasImage() bool {
	return c.ImageURL != nil && *c.ImageURL != ""
}

// ImageLabel 图片的文字占位，取地址中的文件名，没有图片时为空串
func (c AnswerChoice) ImageLabel() string {
	if !c.HasImage() {
		return ""
	}
	name := *c.ImageURL
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}
	if base := path.Base(name); base != "." && base != "/" {
		name = base
	}
	return "[image: " + name + "]"
}

// Round 一个回合：题目 + N 个选项
type Round struct {
	Index           int
	Answers         []AnswerChoice
	CorrectTermText string
}

// CorrectIndex 返回正确选项下标，不存在时返回 -1
func (r *Round) CorrectIndex() int {
	for i, a := range r.Answers {
		if a.IsCorrect {
			return i
		}
	}
	return -1
}

// Clone 深拷贝回合，供快照使用
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	out := *r
	out.Answers = make([]AnswerChoice, len(r.Answers))
	copy(out.Answers, r.Answers)
	return &out
}
