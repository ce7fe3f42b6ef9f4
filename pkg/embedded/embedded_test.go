package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func initTestFS(t *testing.T) {
	t.Helper()
	Init(fstest.MapFS{
		"data/battle.yaml":       {Data: []byte("startingLives: 3\n")},
		"data/sets/planets.yaml": {Data: []byte("title: Planets\n")},
		"data/sets/fun.yaml":     {Data: []byte("title: Fun\n")},
	})
	t.Cleanup(func() { Init(nil) })
}

// TestNotInitialized 未初始化时所有访问都返回错误
func TestNotInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("Expected IsInitialized() to be false")
	}
	if _, err := ReadFile("data/battle.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile: %v", err)
	}
	if _, err := Sub("data/sets"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Sub: %v", err)
	}
	if Exists("data/battle.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	initTestFS(t)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"普通路径", "data/battle.yaml", false},
		{"带 ./ 前缀", "./data/battle.yaml", false},
		{"错误前缀", "assets/battle.yaml", true},
		{"不存在", "data/missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "startingLives: 3\n" {
				t.Errorf("content = %q", data)
			}
		})
	}
}

func TestGlobAndSub(t *testing.T) {
	initTestFS(t)

	matches, err := Glob("data/sets/*.yaml")
	if err != nil || len(matches) != 2 {
		t.Fatalf("Glob = %v, %v", matches, err)
	}

	sub, err := Sub("data/sets")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Stat(sub, "fun.yaml"); err != nil {
		t.Errorf("Sub should be rooted at data/sets: %v", err)
	}

	if !Exists("data/sets/planets.yaml") || Exists("data/sets/mars.yaml") {
		t.Error("Exists mismatch")
	}
}

func TestLoaders(t *testing.T) {
	Init(fstest.MapFS{
		"data/battle.yaml": {Data: []byte("startingLives: 5\n")},
		"data/sets/a.yaml": {Data: []byte(`title: Colors
items:
  - term: [{kind: text, value: red}]
    definition: [{kind: text, value: rojo}]
`)},
	})
	t.Cleanup(func() { Init(nil) })

	cfg, err := LoadBattleConfig("")
	if err != nil {
		t.Fatalf("LoadBattleConfig: %v", err)
	}
	if cfg.StartingLives != 5 || cfg.AnswerCount != 4 {
		t.Errorf("config = %+v", cfg)
	}

	lib, err := LoadLibrary("")
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if titles := lib.Titles(); len(titles) != 1 || titles[0] != "Colors" {
		t.Errorf("titles = %v", titles)
	}

	dir := t.TempDir()
	if _, err := LoadLibrary(dir); err == nil {
		t.Error("empty directory should fail")
	}
	if _, err := LoadBattleConfig(dir + "/missing.yaml"); err == nil {
		t.Error("missing config file should fail")
	}
}
