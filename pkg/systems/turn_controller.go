package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/logger"
)

// TurnControllerOptions 创建 TurnController 的参数
type TurnControllerOptions struct {
	Config *config.BattleConfig // nil 时使用默认配置
	Rand   *rand.Rand           // nil 时以当前时间为种子
	Logger *logger.Logger       // nil 时不输出日志
}

// TurnController 回合状态机
//
// 由离散事件驱动，单线程处理，每个事件处理完毕后才接受下一个：
//   - 玩家输入：SelectContentSet / Select / ChoosePowerUp / Restart
//   - 倒计时：Update(dt)
//   - 渲染层回报：AnimationComplete
//
// 每次进入新阶段代数 +1。动画回报必须携带当前阶段和代数，否则被忽略，
// 这样重复回报、过期回报和重开之前的回报都不会改变状态。
//
// 每个事件处理函数返回本次转换产生的指令，并向订阅者发布快照。
// 订阅回调中再次调用状态机会得到 game.ErrReentrantEvent。
type TurnController struct {
	cfg *config.BattleConfig
	log *logger.Logger
	rng *rand.Rand

	generator *AnswerSetGenerator
	ledger    *ScoreLedger
	lives     *LivesTracker
	catalog   *PowerUpCatalog
	selector  *PowerUpSelector
	countdown *CountdownSystem

	session    *game.SessionState
	round      *components.Round
	phase      components.TurnPhase
	generation uint64
	timer      components.CountdownComponent
	offer      []PowerUp

	selected    int
	revealed    bool
	lastCorrect bool
	lastLayout  *components.LayoutPoint

	subscribers map[int]func(game.Snapshot)
	nextSubID   int
	dispatching bool
}

// NewTurnController 创建状态机，初始处于选集阶段
func NewTurnController(opts TurnControllerOptions) *TurnController {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultBattleConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ledger := NewScoreLedger(cfg)
	lives := NewLivesTracker()
	catalog := NewPowerUpCatalog(cfg, ledger, lives)

	tc := &TurnController{
		cfg:         cfg,
		log:         logger.OrNop(opts.Logger),
		rng:         rng,
		generator:   NewAnswerSetGenerator(rng),
		ledger:      ledger,
		lives:       lives,
		catalog:     catalog,
		selector:    NewPowerUpSelector(catalog, rng, cfg.OfferSize),
		countdown:   NewCountdownSystem(),
		session:     game.NewSessionState(cfg),
		phase:       components.PhaseSelectingContent,
		selected:    -1,
		subscribers: make(map[int]func(game.Snapshot)),
	}
	return tc
}

// Config 返回战斗配置
func (tc *TurnController) Config() *config.BattleConfig { return tc.cfg }

// Catalog 返回道具目录（渲染道具描述用）
func (tc *TurnController) Catalog() *PowerUpCatalog { return tc.catalog }

// Phase 当前阶段
func (tc *TurnController) Phase() components.TurnPhase { return tc.phase }

// Generation 当前阶段代数
func (tc *TurnController) Generation() uint64 { return tc.generation }

// Subscribe 订阅快照，返回取消订阅函数
func (tc *TurnController) Subscribe(fn func(game.Snapshot)) func() {
	id := tc.nextSubID
	tc.nextSubID++
	tc.subscribers[id] = fn
	return func() { delete(tc.subscribers, id) }
}

// Snapshot 返回当前状态的只读副本
func (tc *TurnController) Snapshot() game.Snapshot {
	snap := game.Snapshot{
		Session:           tc.session.Clone(),
		Round:             tc.round.Clone(),
		Phase:             tc.phase,
		Generation:        tc.generation,
		SelectedIndex:     tc.selected,
		Revealed:          tc.revealed,
		LastAnswerCorrect: tc.lastCorrect,
		TimerRemaining:    tc.timer.Remaining,
		TimerDuration:     tc.timer.Duration,
		TimerArmed:        tc.timer.Armed,
	}
	if len(tc.offer) > 0 {
		snap.Offer = PowerUpNames(tc.offer)
	}
	if tc.lastLayout != nil {
		p := *tc.lastLayout
		snap.LastLayout = &p
	}
	return snap
}

// TimerFraction 倒计时剩余比例
func (tc *TurnController) TimerFraction() float64 {
	return tc.countdown.Fraction(&tc.timer)
}

// SelectContentSet 选择学习集并开局
//
// 只在选集阶段接受。学习集卡片不足时返回 *game.InsufficientContentError，
// 状态保持在选集阶段。
func (tc *TurnController) SelectContentSet(set *dataset.ContentSet) ([]components.Command, error) {
	return tc.dispatch(func() ([]components.Command, error) {
		if tc.phase != components.PhaseSelectingContent {
			return nil, fmt.Errorf("select content set in %v: %w", tc.phase, game.ErrInputNotAccepted)
		}
		if set == nil {
			return nil, game.ErrNoContentSet
		}

		round, err := tc.generator.Generate(set, tc.cfg.AnswerCount)
		if err != nil {
			tc.log.Warn("[TurnController] Content set rejected", "title", set.Title, "error", err)
			return nil, fmt.Errorf("select content set: %w", err)
		}

		tc.session.Begin(tc.cfg, set)
		round.Index = tc.session.Stage
		tc.round = round
		tc.log.Info("[TurnController] Session started",
			"session", tc.session.ID, "set", set.Title, "items", set.Len())

		return tc.enterEnemyAdvancing(), nil
	})
}

// Select 玩家选择第 index 个选项
//
// 只在等待选择阶段接受；选择后立即冻结输入并停止倒计时。
func (tc *TurnController) Select(index int) ([]components.Command, error) {
	return tc.dispatch(func() ([]components.Command, error) {
		if tc.phase != components.PhaseAwaitingSelection {
			return nil, fmt.Errorf("select in %v: %w", tc.phase, game.ErrInputNotAccepted)
		}
		if index < 0 || index >= len(tc.round.Answers) {
			return nil, &game.InvalidSelectionError{Index: index, Count: len(tc.round.Answers)}
		}
		return tc.resolveSelection(index), nil
	})
}

// ChoosePowerUp 在道具选择阶段选择一个道具
//
// name 不在本次提供的列表中时返回 *game.InvalidPowerUpError，选择界面保持。
func (tc *TurnController) ChoosePowerUp(name components.PowerUpName) ([]components.Command, error) {
	return tc.dispatch(func() ([]components.Command, error) {
		if tc.phase != components.PhasePowerUpOffer {
			return nil, fmt.Errorf("choose power-up in %v: %w", tc.phase, game.ErrInputNotAccepted)
		}
		if err := tc.selector.Apply(tc.session, tc.offer, name); err != nil {
			return nil, err
		}
		tc.log.Info("[TurnController] Power-up applied",
			"powerUp", name, "stage", tc.session.Stage, "lives", tc.session.Lives, "score", tc.session.Score)
		tc.offer = nil
		return tc.advanceStage()
	})
}

// Restart 任意阶段重开：取消倒计时，作废所有在途回报，回到选集阶段
func (tc *TurnController) Restart() ([]components.Command, error) {
	return tc.dispatch(func() ([]components.Command, error) {
		tc.log.Info("[TurnController] Restart", "from", tc.phase, "finalScore", tc.session.Score)

		tc.countdown.Disarm(&tc.timer)
		tc.timer = components.CountdownComponent{}
		tc.session.Reset(tc.cfg)
		tc.round = nil
		tc.offer = nil
		tc.selected = -1
		tc.revealed = false
		tc.lastCorrect = false
		tc.lastLayout = nil
		tc.setPhase(components.PhaseSelectingContent)

		return []components.Command{components.CmdDisarmTimer{}, components.CmdSessionReset{}}, nil
	})
}

// AnimationComplete 渲染层回报动画完成
//
// 阶段或代数不匹配的回报直接忽略，不返回错误。
func (tc *TurnController) AnimationComplete(ack components.AnimationAck) ([]components.Command, error) {
	return tc.dispatch(func() ([]components.Command, error) {
		if ack.Phase != tc.phase || ack.Generation != tc.generation {
			tc.log.Debug("[TurnController] Ignoring stale animation ack",
				"ackPhase", ack.Phase, "ackGeneration", ack.Generation,
				"phase", tc.phase, "generation", tc.generation)
			return nil, nil
		}
		if _, animated := components.AnimationForPhase(tc.phase); !animated {
			return nil, nil
		}
		if ack.Layout != nil {
			p := *ack.Layout
			tc.lastLayout = &p
		}

		switch tc.phase {
		case components.PhaseEnemyAdvancing:
			return tc.enterAwaitingSelection(), nil
		case components.PhasePlayerAdvancing:
			return tc.enterPlayerRetreating(), nil
		case components.PhasePlayerRetreating:
			return tc.finishPlayerTurn()
		case components.PhaseEnemyAttacking:
			return tc.resolveAfterTurn()
		}
		return nil, nil
	})
}

// Update 推进倒计时 dt 秒，到期时按超时处理
func (tc *TurnController) Update(dt float64) ([]components.Command, error) {
	if tc.phase != components.PhaseAwaitingSelection || !tc.timer.Armed {
		return nil, nil
	}
	return tc.dispatch(func() ([]components.Command, error) {
		if !tc.countdown.Update(&tc.timer, dt) {
			return nil, nil
		}
		if tc.timer.Generation != tc.generation {
			return nil, nil
		}
		return tc.resolveTimeout(), nil
	})
}

// dispatch 串行处理一个事件，成功且有状态变化时发布快照
func (tc *TurnController) dispatch(handle func() ([]components.Command, error)) ([]components.Command, error) {
	if tc.dispatching {
		return nil, game.ErrReentrantEvent
	}
	tc.dispatching = true
	defer func() { tc.dispatching = false }()

	before := tc.generation
	cmds, err := handle()
	if err != nil {
		return nil, err
	}
	if len(cmds) > 0 || tc.generation != before {
		tc.publish()
	}
	return cmds, nil
}

func (tc *TurnController) publish() {
	if len(tc.subscribers) == 0 {
		return
	}
	snap := tc.Snapshot()
	for _, fn := range tc.subscribers {
		fn(snap)
	}
}
