package engine

import (
	"github.com/lixenwraith/lcd-pong/config"
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/layer"
	"github.com/lixenwraith/lcd-pong/shape"
)

// Layer names, also the draw order of the stack
const (
	LayerBall      = "ball"
	LayerField     = "field"
	LayerPlayer    = "playerPaddle"
	LayerOpponent  = "opponentPaddle"
	LayerLeftZone  = "leftScoreZone"
	LayerRightZone = "rightScoreZone"
)

// Scene is the fixed topology built once at startup
type Scene struct {
	Stack *layer.Stack
	Units *layer.MotionChain

	Ball      *layer.MotionUnit
	Opponent  *layer.MotionUnit
	Player    *layer.MotionUnit
	Field     *layer.Layer
	LeftZone  *layer.Layer
	RightZone *layer.Layer
}

// BuildScene lays out the field, paddles, zones and ball from cfg
// Stack order: ball, field, player, opponent, left zone, right zone
// Motion order: ball, opponent, player, so the player is last and hand-controlled
func BuildScene(cfg *config.Config, pal config.Palette) *Scene {
	radius := cfg.Ball.Radius
	paddle := shape.Rect{HalfSize: cfg.Paddle.HalfSize}
	zone := shape.Rect{HalfSize: cfg.Zone.HalfSize}

	ball := layer.New(LayerBall, shape.Circle{Radius: radius}, cfg.BallStart(), pal.Ball)
	field := layer.New(LayerField, shape.RectOutline{HalfSize: cfg.Field.HalfSize}, cfg.Center(), pal.Field)
	player := layer.New(LayerPlayer, paddle, cfg.PlayerStart(), pal.Player)
	opponent := layer.New(LayerOpponent, paddle, cfg.OpponentStart(), pal.Opponent)
	left := layer.New(LayerLeftZone, zone, cfg.LeftZoneCenter(), pal.Zone)
	right := layer.New(LayerRightZone, zone, cfg.RightZoneCenter(), pal.Zone)

	s := &Scene{
		Stack:     layer.NewStack(ball, field, player, opponent, left, right),
		Field:     field,
		LeftZone:  left,
		RightZone: right,
		Ball: &layer.MotionUnit{
			Layer:    ball,
			Velocity: cfg.Ball.Velocity,
			Idle:     cfg.Ball.Velocity,
		},
		Opponent: &layer.MotionUnit{
			Layer:    opponent,
			Velocity: cfg.Paddle.OpponentVelocity,
			Idle:     cfg.Paddle.OpponentVelocity,
			Paddle:   true,
		},
		Player: &layer.MotionUnit{
			Layer:  player,
			Paddle: true,
		},
	}
	s.Units = layer.NewMotionChain(s.Ball, s.Opponent, s.Player)
	return s
}

// Fence is the bounds of the field outline
func (s *Scene) Fence() core.Region {
	return s.Field.Bounds()
}
