// Package dataset 提供题库（学习集）数据及加载
//
// 题库对战斗核心是只读的：核心只通过 Library 取得 ContentSet，
// 再由答案生成器从中抽题。
package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MediaKind 媒体类型
type MediaKind int

const (
	// MediaText 纯文本
	MediaText MediaKind = 1
	// MediaImage 图片 URL
	MediaImage MediaKind = 2
)

func (k MediaKind) String() string {
	switch k {
	case MediaText:
		return "text"
	case MediaImage:
		return "image"
	default:
		return fmt.Sprintf("MediaKind(%d)", int(k))
	}
}

// UnmarshalYAML 同时接受 "text"/"image" 与数字 1/2 两种写法
func (k *MediaKind) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "text", "1":
		*k = MediaText
	case "image", "2":
		*k = MediaImage
	default:
		return fmt.Errorf("line %d: unknown media kind %q", value.Line, value.Value)
	}
	return nil
}

// MarshalYAML 输出为字符串形式
func (k MediaKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Media 卡面上的单个媒体条目
type Media struct {
	Kind  MediaKind `yaml:"kind"`
	Value string    `yaml:"value"`
}

// CardSide 卡片的一面，由若干媒体条目组成
type CardSide struct {
	Media []Media `yaml:"media"`
}

// FirstText 返回第一个文本条目
func (s CardSide) FirstText() (string, bool) {
	for _, m := range s.Media {
		if m.Kind == MediaText {
			return m.Value, true
		}
	}
	return "", false
}

// FirstImage 返回第一个图片条目
func (s CardSide) FirstImage() (string, bool) {
	for _, m := range s.Media {
		if m.Kind == MediaImage {
			return m.Value, true
		}
	}
	return "", false
}

// 卡面索引
const (
	SideTerm       = 0
	SideDefinition = 1
)

// StudiableItem 一张学习卡：术语面 + 释义面
type StudiableItem struct {
	ID    string      `yaml:"id"`
	Sides [2]CardSide `yaml:"-"`
}

// Term 术语面
func (it *StudiableItem) Term() CardSide { return it.Sides[SideTerm] }

// Definition 释义面
func (it *StudiableItem) Definition() CardSide { return it.Sides[SideDefinition] }

// TermText 术语面的第一个文本，没有时返回空串
func (it *StudiableItem) TermText() string {
	text, _ := it.Sides[SideTerm].FirstText()
	return text
}

// ContentSet 一个学习集
type ContentSet struct {
	Title    string
	Category string
	Items    []StudiableItem
}

// DefaultCategory 未指定分类的学习集归入此分类
const DefaultCategory = "General"

// CategoryName 学习集所属分类，未指定时为 DefaultCategory
func (cs *ContentSet) CategoryName() string {
	if cs.Category == "" {
		return DefaultCategory
	}
	return cs.Category
}

// Len 学习卡数量
func (cs *ContentSet) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.Items)
}
