package dataset

import (
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// contentSetFile 学习集 YAML 文件结构
type contentSetFile struct {
	Title    string     `yaml:"title"`
	Category string     `yaml:"category"`
	Items    []itemFile `yaml:"items"`
}

type itemFile struct {
	ID         string  `yaml:"id"`
	Term       []Media `yaml:"term"`
	Definition []Media `yaml:"definition"`
}

// ParseContentSet 解析单个学习集 YAML
//
// category 可省略，省略时归入 DefaultCategory。
// 缺少 id 的条目按 "<title>#<序号>" 补齐，保证渲染 key 稳定。
func ParseContentSet(data []byte) (*ContentSet, error) {
	var file contentSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse content set YAML: %w", err)
	}
	if file.Title == "" {
		return nil, fmt.Errorf("content set title cannot be empty")
	}

	set := &ContentSet{
		Title:    file.Title,
		Category: file.Category,
		Items:    make([]StudiableItem, 0, len(file.Items)),
	}
	seen := make(map[string]bool, len(file.Items))
	for i, raw := range file.Items {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("%s#%d", file.Title, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("content set %q: duplicate item id %q", file.Title, id)
		}
		seen[id] = true

		set.Items = append(set.Items, StudiableItem{
			ID: id,
			Sides: [2]CardSide{
				{Media: raw.Term},
				{Media: raw.Definition},
			},
		})
	}
	return set, nil
}

// Library 学习集合集
type Library struct {
	sets       map[string]*ContentSet
	titles     []string
	categories []string
	byCategory map[string][]string
}

// NewLibrary 由若干学习集构建合集，标题重复时后者覆盖前者
func NewLibrary(sets ...*ContentSet) *Library {
	lib := &Library{sets: make(map[string]*ContentSet, len(sets))}
	for _, s := range sets {
		if s == nil {
			continue
		}
		lib.sets[s.Title] = s
	}
	for title := range lib.sets {
		lib.titles = append(lib.titles, title)
	}
	sort.Strings(lib.titles)

	lib.byCategory = make(map[string][]string)
	for _, title := range lib.titles {
		category := lib.sets[title].CategoryName()
		if _, ok := lib.byCategory[category]; !ok {
			lib.categories = append(lib.categories, category)
		}
		lib.byCategory[category] = append(lib.byCategory[category], title)
	}
	sort.Strings(lib.categories)
	return lib
}

// LoadLibrary 从 fsys 的 dir 目录加载全部 *.yaml 学习集
//
// fsys 可以是嵌入的 embed.FS，也可以是 os.DirFS。
func LoadLibrary(fsys fs.FS, dir string) (*Library, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list content sets in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no content sets found in %s", dir)
	}

	sets := make([]*ContentSet, 0, len(matches))
	titles := make(map[string]string, len(matches))
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		set, err := ParseContentSet(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if prev, dup := titles[set.Title]; dup {
			return nil, fmt.Errorf("duplicate content set title %q in %s and %s", set.Title, prev, name)
		}
		titles[set.Title] = name
		sets = append(sets, set)
	}
	return NewLibrary(sets...), nil
}

// GetRandomSet 随机返回一个学习集，合集为空时返回 nil
func (l *Library) GetRandomSet(rng *rand.Rand) *ContentSet {
	return l.pick(l.titles, rng)
}

// GetRandomSetIn 在分类内随机返回一个学习集，分类不存在时返回 nil
func (l *Library) GetRandomSetIn(category string, rng *rand.Rand) *ContentSet {
	return l.pick(l.byCategory[category], rng)
}

func (l *Library) pick(titles []string, rng *rand.Rand) *ContentSet {
	if len(titles) == 0 {
		return nil
	}
	var i int
	if rng != nil {
		i = rng.Intn(len(titles))
	} else {
		i = rand.Intn(len(titles))
	}
	return l.sets[titles[i]]
}

// GetAllSetsMap 返回 标题 -> 学习集 的映射副本
func (l *Library) GetAllSetsMap() map[string]*ContentSet {
	out := make(map[string]*ContentSet, len(l.sets))
	for k, v := range l.sets {
		out[k] = v
	}
	return out
}

// Titles 按字母序返回所有标题
func (l *Library) Titles() []string {
	return append([]string(nil), l.titles...)
}

// Categories 按字母序返回所有分类
func (l *Library) Categories() []string {
	return append([]string(nil), l.categories...)
}

// TitlesIn 按字母序返回分类下的标题
func (l *Library) TitlesIn(category string) []string {
	return append([]string(nil), l.byCategory[category]...)
}

// Get 按标题查找学习集
func (l *Library) Get(title string) (*ContentSet, bool) {
	s, ok := l.sets[title]
	return s, ok
}

// Len 学习集数量
func (l *Library) Len() int {
	return len(l.titles)
}
