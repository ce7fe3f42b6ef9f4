package systems

import (
	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/decker502/quizbattle/pkg/utils"
)

const (
	// flashDuration 受击闪烁时长（秒）
	flashDuration = 0.3
	// cardFadeSpeed 卡片淡出速度（每秒 alpha）
	cardFadeSpeed = 3.0
	// strikeOffset 出击时停在目标前方的距离
	strikeOffset = config.ActorSize + 10
)

// BattleDirector 把状态机指令转换为实体动画，并把动画完成回报交回状态机
//
// 所有输入都经由 Director 转发，保证指令在同一帧内被应用：
//
//	输入/倒计时/补间完成 -> TurnController -> []Command -> Apply -> 实体
type BattleDirector struct {
	entityManager *ecs.EntityManager
	controller    *TurnController
	tweens        *TweenSystem
	flashes       *FlashEffectSystem
	log           *logger.Logger

	player ecs.EntityID
	enemy  ecs.EntityID
	cards  []ecs.EntityID

	// 最近一次揭晓结果，-1 表示超时
	revealIndex int
	// 当前播放中的动画
	playing *components.CmdPlayAnimation
}

// NewBattleDirector 创建 Director 并生成角色实体
func NewBattleDirector(em *ecs.EntityManager, tc *TurnController, log *logger.Logger) *BattleDirector {
	d := &BattleDirector{
		entityManager: em,
		controller:    tc,
		tweens:        NewTweenSystem(em),
		flashes:       NewFlashEffectSystem(em),
		log:           logger.OrNop(log),
		revealIndex:   -1,
	}
	d.spawnActors()
	return d
}

// Flashes 受击闪白系统
func (d *BattleDirector) Flashes() *FlashEffectSystem { return d.flashes }

// Controller 返回状态机
func (d *BattleDirector) Controller() *TurnController { return d.controller }

// Player 玩家实体
func (d *BattleDirector) Player() ecs.EntityID { return d.player }

// Enemy 敌人实体
func (d *BattleDirector) Enemy() ecs.EntityID { return d.enemy }

// Cards 当前回合的答案卡片实体，按选项顺序
func (d *BattleDirector) Cards() []ecs.EntityID { return d.cards }

// Playing 当前播放中的动画，没有时为 nil
func (d *BattleDirector) Playing() *components.CmdPlayAnimation { return d.playing }

// SelectContentSet 选择学习集开局
func (d *BattleDirector) SelectContentSet(set *dataset.ContentSet) error {
	return d.run(d.controller.SelectContentSet(set))
}

// Select 选择答案
func (d *BattleDirector) Select(index int) error {
	return d.run(d.controller.Select(index))
}

// ChoosePowerUp 选择道具
func (d *BattleDirector) ChoosePowerUp(name components.PowerUpName) error {
	return d.run(d.controller.ChoosePowerUp(name))
}

// Restart 重开
func (d *BattleDirector) Restart() error {
	return d.run(d.controller.Restart())
}

// Update 每帧调用：推进倒计时、补间、闪烁和淡出
func (d *BattleDirector) Update(dt float64) error {
	if err := d.run(d.controller.Update(dt)); err != nil {
		return err
	}

	for _, ack := range d.tweens.Update(dt) {
		d.playing = nil
		if err := d.run(d.controller.AnimationComplete(ack)); err != nil {
			return err
		}
	}

	d.flashes.Update(dt)
	d.updateCards(dt)
	d.entityManager.RemoveMarkedEntities()
	return nil
}

func (d *BattleDirector) run(cmds []components.Command, err error) error {
	if err != nil {
		return err
	}
	d.Apply(cmds)
	return nil
}

// Apply 应用一组指令
func (d *BattleDirector) Apply(cmds []components.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case components.CmdPlayAnimation:
			d.playAnimation(c)
		case components.CmdHideChoice:
			d.hideCard(c)
		case components.CmdRevealAnswers:
			d.revealIndex = c.SelectedIndex
		case components.CmdGameOver:
			d.playing = nil
			d.log.Info("[BattleDirector] Game over", "score", c.FinalScore, "stage", c.Stage)
		case components.CmdSessionReset:
			d.reset()
		case components.CmdArmTimer, components.CmdDisarmTimer, components.CmdShowPowerUpOffer:
			// 倒计时条和道具面板直接从快照渲染
		}
	}
}

// RevealIndex 最近一次揭晓时的选择，-1 表示超时或未揭晓
func (d *BattleDirector) RevealIndex() int { return d.revealIndex }

func (d *BattleDirector) spawnActors() {
	em := d.entityManager

	d.player = em.CreateEntity()
	ecs.AddComponent(em, d.player, &components.PositionComponent{X: config.PlayerHomeX, Y: config.PlayerHomeY})
	ecs.AddComponent(em, d.player, &components.ActorComponent{
		Role: components.ActorPlayer, HomeX: config.PlayerHomeX, HomeY: config.PlayerHomeY,
	})

	d.enemy = em.CreateEntity()
	ecs.AddComponent(em, d.enemy, &components.PositionComponent{X: config.EnemySpawnX, Y: config.EnemyHomeY})
	ecs.AddComponent(em, d.enemy, &components.ActorComponent{
		Role: components.ActorEnemy, HomeX: config.EnemyHomeX, HomeY: config.EnemyHomeY,
	})
}

func (d *BattleDirector) reset() {
	d.entityManager.Clear()
	d.cards = nil
	d.playing = nil
	d.revealIndex = -1
	d.spawnActors()
}

// spawnCards 为新回合生成答案卡片
func (d *BattleDirector) spawnCards(count int) {
	for _, id := range d.cards {
		d.entityManager.DestroyEntity(id)
	}
	d.cards = d.cards[:0]
	for i := 0; i < count; i++ {
		id := d.entityManager.CreateEntity()
		ecs.AddComponent(d.entityManager, id, &components.PositionComponent{X: config.AnswerColumnX, Y: config.AnswerCardY(i)})
		ecs.AddComponent(d.entityManager, id, &components.AnswerCardComponent{Index: i, Alpha: 1})
		d.cards = append(d.cards, id)
	}
}

func (d *BattleDirector) playAnimation(c components.CmdPlayAnimation) {
	cfg := d.controller.Config()
	duration := cfg.Animations.Duration(c.Kind)
	ack := &components.AnimationAck{Phase: c.Phase, Generation: c.Generation}
	d.playing = &c

	switch c.Kind {
	case components.AnimEnemyAdvance:
		d.revealIndex = -1
		if r := d.controller.Snapshot().Round; r != nil {
			d.spawnCards(len(r.Answers))
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](d.entityManager, d.enemy); ok {
			pos.X = config.EnemySpawnX
		}
		d.tweens.Start(d.enemy, &components.TweenComponent{
			ToX: config.EnemyHomeX, ToY: config.EnemyHomeY,
			Duration: duration, Easing: utils.EaseOutCubic, Ack: ack,
		})

	case components.AnimPlayerAdvance:
		tx, ty := config.EnemyHomeX, config.EnemyHomeY
		if c.Target != nil {
			tx, ty = c.Target.X, c.Target.Y
		}
		d.tweens.Start(d.player, &components.TweenComponent{
			ToX: tx - strikeOffset, ToY: ty,
			Duration: duration, Easing: utils.EaseOutCubic, Ack: ack,
		})
		if d.controller.Snapshot().LastAnswerCorrect {
			d.flash(d.enemy)
		}

	case components.AnimPlayerRetreat:
		d.tweens.Start(d.player, &components.TweenComponent{
			ToX: config.PlayerHomeX, ToY: config.PlayerHomeY,
			Duration: duration, Easing: utils.EaseInCubic, Ack: ack,
		})

	case components.AnimEnemyAttack:
		// 冲向玩家再返回，第二段结束时回报
		px, py := config.PlayerHomeX, config.PlayerHomeY
		if pos, ok := ecs.GetComponent[*components.PositionComponent](d.entityManager, d.player); ok {
			px, py = pos.X, pos.Y
		}
		d.tweens.Start(d.enemy, &components.TweenComponent{
			ToX: px + strikeOffset, ToY: py,
			Duration: duration / 2, Easing: utils.EaseInOutQuad,
			Next: &components.TweenComponent{
				ToX: config.EnemyHomeX, ToY: config.EnemyHomeY,
				Duration: duration / 2, Easing: utils.EaseInOutQuad, Ack: ack,
			},
		})
		d.flash(d.player)
	}

	d.log.Debug("[BattleDirector] Play animation", "kind", c.Kind, "phase", c.Phase, "generation", c.Generation)
}

func (d *BattleDirector) flash(id ecs.EntityID) {
	if actor, ok := ecs.GetComponent[*components.ActorComponent](d.entityManager, id); ok {
		actor.Damage++
		d.flashes.Trigger(id, flashDuration)
	}
}

func (d *BattleDirector) hideCard(c components.CmdHideChoice) {
	if c.Index < 0 || c.Index >= len(d.cards) {
		return
	}
	card, ok := ecs.GetComponent[*components.AnswerCardComponent](d.entityManager, d.cards[c.Index])
	if !ok {
		return
	}
	card.Fading = true
	card.Burned = c.Reason == components.HideByLaser
}

func (d *BattleDirector) updateCards(dt float64) {
	for _, id := range d.cards {
		card, ok := ecs.GetComponent[*components.AnswerCardComponent](d.entityManager, id)
		if !ok || !card.Fading {
			continue
		}
		card.Alpha = max(0, card.Alpha-cardFadeSpeed*dt)
	}
}
