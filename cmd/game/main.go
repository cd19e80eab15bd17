package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/voiceplatform/internal/application/game"
	"github.com/younwookim/voiceplatform/internal/application/replay"
	"github.com/younwookim/voiceplatform/internal/application/scene/playing"
	"github.com/younwookim/voiceplatform/internal/application/session"
	"github.com/younwookim/voiceplatform/internal/application/system"
	"github.com/younwookim/voiceplatform/internal/infrastructure/assets"
	"github.com/younwookim/voiceplatform/internal/infrastructure/config"
	"github.com/younwookim/voiceplatform/internal/infrastructure/level"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// appName names the per-user data directory of the level store
const appName = "voiceplatform"

// Voice input modes
const (
	voiceNone  = "none"
	voiceStdin = "stdin"
)

type options struct {
	level     int
	tmx       bool
	assetDir  string
	voiceMode string
	record    string
	replay    string
	saveLevel bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.IntVar(&opts.level, "level", 1, "Level number to play")
	fset.BoolVar(&opts.tmx, "tmx", false, "Read the built-in level from its Tiled map instead of JSON")
	fset.StringVar(&opts.assetDir, "assets", "img", "Directory holding the PNG artwork")
	fset.StringVar(&opts.voiceMode, "voice", voiceNone, "Voice input: none or stdin (one command word per token)")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Play back a recorded input file")
	fset.BoolVar(&opts.saveLevel, "save-level", false, "Store the level grid in the user data directory")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	if opts.level < 1 {
		return options{}, fmt.Errorf("invalid level %d", opts.level)
	}
	if opts.voiceMode != voiceNone && opts.voiceMode != voiceStdin {
		return options{}, fmt.Errorf("unknown voice mode %q", opts.voiceMode)
	}
	if opts.record != "" && opts.replay != "" {
		return options{}, errors.New("-record and -replay cannot be combined")
	}
	return opts, nil
}

func buildRecognizer(mode string, stdin io.Reader) voice.Recognizer {
	if mode == voiceStdin {
		return voice.NewLineRecognizer(stdin)
	}
	return nil
}

// loadGrid reads the built-in grid of level n from the config filesystem
func loadGrid(loader *config.Loader, n int, tmx bool) ([][]int, error) {
	if tmx {
		return level.LoadTMX(loader.FS(), config.LevelPath(n, "tmx"))
	}
	levelCfg, err := loader.LoadLevel(n)
	if err != nil {
		return nil, err
	}
	return levelCfg.Grid, nil
}

// openReplay loads a recording and reports the level it was captured on,
// falling back when the file does not name one
func openReplay(path string, fallback int) (*replay.Replayer, int, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, 0, err
	}
	replayer := replay.NewReplayer(*data)
	if n := replayer.Level(); n > 0 {
		return replayer, n, nil
	}
	return replayer, fallback, nil
}

// shutdown stops the voice worker and returns the game loop error that
// should end the process, if any
func shutdown(cancel context.CancelFunc, sess *session.Session, timeout time.Duration, runErr error) error {
	cancel()
	if err := sess.Close(timeout); err != nil {
		log.Printf("Voice shutdown: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	levelNum := opts.level
	var replayer *replay.Replayer
	if opts.replay != "" {
		replayer, levelNum, err = openReplay(opts.replay, levelNum)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
	}

	provided, err := loadGrid(loader, levelNum, opts.tmx)
	if err != nil {
		log.Fatalf("Failed to load level %d: %v", levelNum, err)
	}

	store, err := level.OpenStore(appName)
	if err != nil {
		log.Printf("Level store unavailable, using built-in levels: %v", err)
		store = nil
	}
	src := level.Resolve(store, levelNum, provided)
	if opts.saveLevel {
		if store == nil {
			log.Printf("Cannot save level %d: no level store", levelNum)
		} else if err := store.Save(levelNum, src.Grid); err != nil {
			log.Printf("Failed to save level %d: %v", levelNum, err)
		} else {
			log.Printf("Saved level %d as %s", levelNum, level.Key(levelNum))
		}
	}
	world := system.LoadWorld(src, &cfg.World)

	// A replay carries its own voice commands
	var recognizer voice.Recognizer
	if replayer == nil {
		recognizer = buildRecognizer(opts.voiceMode, os.Stdin)
	}
	sess := session.New(cfg, world, nil, recognizer)

	imgs := assets.Load(os.DirFS(opts.assetDir), assets.Sizes{
		ScreenWidth:  cfg.Display.ScreenWidth,
		ScreenHeight: cfg.Display.ScreenHeight,
		TileSize:     cfg.World.TileSize,
		PlayerWidth:  cfg.Player.Sprite.Width,
		PlayerHeight: cfg.Player.Sprite.Height,
		Frames:       cfg.Player.Sprite.Frames,
	})

	scene := playing.New(cfg, sess, assets.NewSet(imgs), playing.Options{
		Level:      levelNum,
		RecordPath: opts.record,
		Replayer:   replayer,
	})
	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	ctx, cancel := context.WithCancel(context.Background())
	sess.Start(ctx)

	runErr := ebiten.RunGame(g)

	if err := shutdown(cancel, sess, cfg.Voice.StopTimeout(), runErr); err != nil {
		log.Fatal(err)
	}
}
