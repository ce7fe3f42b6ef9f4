package termui

import (
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// tickInterval 倒计时推进间隔
const tickInterval = 50 * time.Millisecond

// loopScheduler 把到期回调投递回事件循环
//
// 事件循环退出后调用 stop，之后到期的回调直接丢弃。
type loopScheduler struct {
	calls    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

func newLoopScheduler(buffer int) *loopScheduler {
	return &loopScheduler{
		calls: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

func (s *loopScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { s.deliver(fn) })
}

// deliver 投递回调，事件循环已退出时返回 false
func (s *loopScheduler) deliver(fn func()) bool {
	select {
	case s.calls <- fn:
		return true
	case <-s.done:
		return false
	}
}

func (s *loopScheduler) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// forwardEvents 在后台读取终端事件，done 关闭后退出并关闭返回的通道
func forwardEvents(poll func() termbox.Event, done <-chan struct{}) <-chan termbox.Event {
	events := make(chan termbox.Event)
	go func() {
		defer close(events)
		for {
			ev := poll()
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// TermboxUI 终端界面
type TermboxUI struct {
	scheduler *loopScheduler
}

// NewTermboxUI 创建终端界面，调用方用 Scheduler() 构造 Session
func NewTermboxUI() *TermboxUI {
	return &TermboxUI{scheduler: newLoopScheduler(16)}
}

// Scheduler 返回投递到本界面事件循环的调度器
func (ui *TermboxUI) Scheduler() Scheduler { return ui.scheduler }

// Init 初始化终端
func (ui *TermboxUI) Init() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return nil
}

// Close 恢复终端
func (ui *TermboxUI) Close() {
	termbox.Close()
}

// Run 事件循环，直到会话请求退出或终端出错
//
// 键盘事件、倒计时和动画回调都在这个 goroutine 中处理。
func (ui *TermboxUI) Run(s *Session) error {
	defer ui.scheduler.stop()
	events := forwardEvents(termbox.PollEvent, ui.scheduler.done)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	ui.Render(s)
mainloop:
	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyEsc {
					s.HandleEscape()
				} else if ev.Ch != 0 {
					s.HandleRune(ev.Ch)
				}
			case termbox.EventResize:
			case termbox.EventError:
				return fmt.Errorf("terminal event: %w", ev.Err)
			}
		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
		case fn := <-ui.scheduler.calls:
			fn()
		}
		if s.Quit() {
			break mainloop
		}
		ui.Render(s)
	}
	return nil
}

// Render 绘制当前视图
func (ui *TermboxUI) Render(s *Session) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y, line := range s.View() {
		fg := toneColor(line.Tone)
		ui.displayText(1, y+1, line.Text, fg, termbox.ColorDefault)
	}
	termbox.Flush()
}

func (ui *TermboxUI) displayText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}

func toneColor(t Tone) termbox.Attribute {
	switch t {
	case ToneTitle:
		return termbox.ColorWhite | termbox.AttrBold
	case ToneDim:
		return termbox.ColorBlue
	case ToneGood:
		return termbox.ColorGreen
	case ToneBad:
		return termbox.ColorRed
	case ToneWarn:
		return termbox.ColorYellow
	}
	return termbox.ColorDefault
}
