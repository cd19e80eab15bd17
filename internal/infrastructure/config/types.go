package config

import "time"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	World   WorldConfig   `json:"world"`
	Player  PlayerConfig  `json:"player"`
	Debug   DebugConfig   `json:"debug"`
	Voice   VoiceConfig   `json:"voice"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// TickDuration returns the fixed duration of one update tick
func (d DisplayConfig) TickDuration() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

type WorldConfig struct {
	TileSize int `json:"tileSize"`
}

type PlayerConfig struct {
	Spawn    PositionConfig  `json:"spawn"`
	Sprite   SpriteConfig    `json:"sprite"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Physics  PhysicsSettings `json:"physics"`
}

// PositionConfig is a pixel position. Negative Y counts up from the screen bottom.
type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type SpriteConfig struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	Frames       int `json:"frames"`
	WalkCooldown int `json:"walkCooldown"` // ticks between walk frames
}

type MovementConfig struct {
	MoveSpeed int `json:"moveSpeed"`
	MaxSpeed  int `json:"maxSpeed"`
}

type JumpConfig struct {
	Velocity   int `json:"velocity"`   // launch velocity, negative is up
	CooldownMS int `json:"cooldownMs"` // re-jump lockout
}

// Cooldown returns the jump lockout as a duration
func (j JumpConfig) Cooldown() time.Duration {
	return time.Duration(j.CooldownMS) * time.Millisecond
}

type PhysicsSettings struct {
	Gravity      int `json:"gravity"`
	MaxFallSpeed int `json:"maxFallSpeed"`
}

type DebugConfig struct {
	Outline      bool `json:"outline"`
	OutlineWidth int  `json:"outlineWidth"`
}

type VoiceConfig struct {
	StopTimeoutMS int `json:"stopTimeoutMs"`
	RetryDelayMS  int `json:"retryDelayMs"`
}

// StopTimeout returns how long shutdown waits for the recognition worker
func (v VoiceConfig) StopTimeout() time.Duration {
	return time.Duration(v.StopTimeoutMS) * time.Millisecond
}

// RetryDelay returns the pause after a failed recognition cycle
func (v VoiceConfig) RetryDelay() time.Duration {
	return time.Duration(v.RetryDelayMS) * time.Millisecond
}

// SpawnPoint resolves the configured spawn against the screen height
func (c *GameConfig) SpawnPoint() (x, y int) {
	x, y = c.Player.Spawn.X, c.Player.Spawn.Y
	if y < 0 {
		y += c.Display.ScreenHeight
	}
	return x, y
}

// LevelConfig is the root config for levels/level<N>.json
type LevelConfig struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Grid [][]int `json:"grid"`
}
