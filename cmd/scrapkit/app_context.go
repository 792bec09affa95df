package main

import (
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/config"
	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	"github.com/alexisbeaulieu97/scrapkit/internal/store"
)

// appContext bundles the services every command shares. It is filled in by
// the root command before any subcommand runs.
type appContext struct {
	cfg  *config.Config
	log  *logger.Logger
	rand *rand.Rand
	now  func() time.Time
}

func (a *appContext) init(cmd *cobra.Command, flags *rootFlags) error {
	base, err := defaultBaseDir()
	if err != nil {
		return newCommandError(cmd.Name(), "determining scrapkit directory", err, "Ensure your HOME directory is set correctly.")
	}

	path := flags.configPath
	if path == "" {
		path = filepath.Join(base, "config.yaml")
	}

	cfg, err := config.Load(path, config.Default(base))
	if err != nil {
		return newCommandError(cmd.Name(), "loading configuration "+path, err, "Fix the configuration file or point --config at a valid one.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error for log.level.")
	}

	seed := uint64(time.Now().UnixNano())
	if cmd.Flags().Changed("seed") {
		seed = uint64(flags.seed)
	}

	a.cfg = cfg
	a.log = log
	a.rand = rand.New(rand.NewPCG(seed, seed))
	a.now = time.Now
	return nil
}

func (a *appContext) composer(title string) *scrapbook.Composer {
	if title == "" {
		title = a.cfg.Title
	}
	return scrapbook.NewComposer(scrapbook.Options{
		Rand:   a.rand,
		Now:    a.now,
		Logger: a.log,
		Title:  title,
	})
}

func (a *appContext) library() (*store.Library, error) {
	return store.New(a.cfg.DataDir, a.log)
}

// libraryFor opens the library holding ref and returns ref's file name in it.
// The directory is never created: ref must name an existing scrapbook.
func (a *appContext) libraryFor(ref string) (*store.Library, string, error) {
	dir, name := splitScrapbookRef(ref, a.cfg.DataDir)
	lib, err := store.Open(dir, a.log)
	if err != nil {
		return nil, "", err
	}
	return lib, name, nil
}
