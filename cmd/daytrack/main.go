package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/redis/go-redis/v9"

	"github.com/benjamonnguyen/daytrack"
	"github.com/benjamonnguyen/daytrack/charmlog"
	"github.com/benjamonnguyen/daytrack/rediskv"
	"github.com/benjamonnguyen/daytrack/sqlite"
	"github.com/benjamonnguyen/daytrack/store"
)

const cmdTimeout = 3 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// conf
	conf, err := daytrack.LoadConfig(daytrack.DefaultConfFile())
	if err != nil {
		fmt.Println(err)
		return 1
	}
	if conf.DevMode {
		fmt.Println("Dev mode is on!")
	}
	if err := os.MkdirAll(path.Dir(conf.LogPath), 0o744); err != nil {
		fmt.Println(err)
		return 1
	}
	f, err := os.OpenFile(conf.LogPath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	defer f.Close() //nolint:errcheck
	logger := charmlog.NewLogger(charmlog.Options{
		Writer: f,
		Level:  conf.LogLevel,
	})
	logger.Info("loaded config", "config", conf)

	// storage
	kv, closeKV, err := openKVStore(conf, logger)
	if err != nil {
		logger.Error("failed to open storage", "backend", conf.Backend, "error", err)
		fmt.Println(err)
		return 1
	}
	defer closeKV() //nolint:errcheck

	s := store.New(kv, logger)

	// handle initial args
	if len(os.Args) > 1 {
		return runOnce(s, strings.Join(os.Args[1:], " "))
	}

	// start program
	fmt.Println(colorize(colorYellow, logo))
	fmt.Printf("\nEnter \"/?\" for help\n\n")

	userinput := textinput.New()
	userinput.Focus()
	userinput.CharLimit = 280
	userinput.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))

	m := model{
		l:          logger,
		store:      s,
		timeFormat: conf.TimeFormat,
		cmdTimeout: cmdTimeout,
		userinput:  userinput,
		vp:         viewport.New(0, 0),
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}

func openKVStore(conf daytrack.Config, logger daytrack.Logger) (daytrack.KVStore, func() error, error) {
	switch conf.Backend {
	case daytrack.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr: conf.RedisAddr,
		})
		timeout, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		if err := rdb.Ping(timeout).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", conf.RedisAddr, err)
		}
		kv := rediskv.NewKVStore(rdb, rediskv.DefaultPrefix, logger)
		return kv, kv.Close, nil
	default:
		if err := os.MkdirAll(path.Dir(conf.DatabaseURL), 0o744); err != nil {
			return nil, nil, err
		}
		db, err := sqlite.Open(conf.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(sqlite.Migrations); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed migration: %w", err)
		}
		return sqlite.NewKVStore(db, logger), db.Close, nil
	}
}

// runOnce executes a single command from the program arguments and returns
// the exit code.
func runOnce(s *store.Store, input string) int {
	act, err := parseCommand(input)
	switch {
	case errors.Is(err, errQuit):
		return 0
	case errors.Is(err, errHelp):
		fmt.Println(colorize(colorYellow, programUsage))
		fmt.Println()
		fmt.Print(commandHelp)
		return 0
	case err != nil:
		fmt.Println(colorize(colorRed, err.Error()))
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()
	text, err := act(ctx, s)
	if err != nil {
		fmt.Println(colorize(colorRed, err.Error()))
		return 1
	}
	fmt.Println(text)
	return 0
}
