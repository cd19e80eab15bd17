package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the underlying filesystem
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads levels/level<N>.json
func (l *Loader) LoadLevel(n int) (*LevelConfig, error) {
	path := LevelPath(n, "json")
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", n, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", n, err)
	}

	return &cfg, nil
}

// LevelPath returns the path of a level file inside the config filesystem
func LevelPath(n int, ext string) string {
	return fmt.Sprintf("levels/level%d.%s", n, ext)
}

// Validate checks values the game loop divides by or sizes buffers with
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate)
	case c.World.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %d", c.World.TileSize)
	case c.Player.Sprite.Frames <= 0:
		return fmt.Errorf("player needs at least one walk frame, got %d", c.Player.Sprite.Frames)
	case c.Player.Sprite.Width <= 0 || c.Player.Sprite.Height <= 0:
		return fmt.Errorf("player sprite size must be positive, got %dx%d", c.Player.Sprite.Width, c.Player.Sprite.Height)
	}
	return nil
}
