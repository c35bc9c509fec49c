// Package app wires together all adapters and domain logic.
// It provides lifecycle management for the alphabet daemon: create, start,
// stop. It also implements socket.AppQueries, the request surface both the
// socket server and the HTTP server dispatch into.
package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/bbolt"
	fsw "github.com/aeliyag/reinforcedLearning/internal/adapters/fsnotify"
	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
	"github.com/aeliyag/reinforcedLearning/internal/adapters/web"
	conf "github.com/aeliyag/reinforcedLearning/internal/config"
	"github.com/aeliyag/reinforcedLearning/internal/domain/policy"
	"github.com/aeliyag/reinforcedLearning/internal/domain/status"
	"github.com/aeliyag/reinforcedLearning/internal/ports"
)

// ConfigFile is the filename within the data directory the daemon reads its
// configuration from, and watches for changes.
const ConfigFile = "config.yaml"

// App is the top-level container wiring all components together.
type App struct {
	DataDir string

	Store     ports.Storage
	Watcher   ports.Watcher
	Server    *socket.Server
	WebServer *web.Server

	log        zerolog.Logger
	configPath string
	statusPath string
	httpPort   int
	started    time.Time
	closeStore func() error

	// mu serializes every load-mutate-store cycle on the value table and
	// guards the engine, which is swapped on config reload.
	mu        sync.Mutex
	engine    *policy.Engine
	decisions uint64
	feedbacks uint64
}

// Config holds initialization parameters for the App.
type Config struct {
	DataDir  string          // directory for db, config, status, port file
	HTTPPort int             // preferred HTTP port (default: computed from data dir)
	Store    ports.Storage   // optional: overrides the bbolt store (tests)
	Logger   *zerolog.Logger // optional: nil means no logging
}

// New creates an App with all dependencies wired. Does not start services.
func New(cfg Config) (*App, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory required")
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	configPath := filepath.Join(cfg.DataDir, ConfigFile)
	fileCfg, err := conf.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store := cfg.Store
	closeStore := func() error { return nil }
	if store == nil {
		dbPath := fileCfg.Server.DBPath
		if dbPath == "" {
			dbPath = filepath.Join(cfg.DataDir, "alphabet.db")
		}
		bs, err := bbolt.NewStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		store = bs
		closeStore = bs.Close
	}

	watcher, err := fsw.NewWatcher()
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	httpPort := cfg.HTTPPort
	if httpPort == 0 {
		httpPort = fileCfg.Server.HTTPPort
	}

	a := &App{
		DataDir:    cfg.DataDir,
		Store:      store,
		Watcher:    watcher,
		log:        log,
		configPath: configPath,
		statusPath: filepath.Join(cfg.DataDir, status.StatusFile),
		httpPort:   httpPort,
		engine:     policy.NewEngine(fileCfg.EngineParams()),
		closeStore: closeStore,
	}

	a.Server = socket.NewServer(socket.SocketPath(cfg.DataDir), a)

	httpPortFile := filepath.Join(cfg.DataDir, "http.port")
	a.WebServer = web.NewServer(a, httpPortFile)

	return a, nil
}

// Start begins the daemon (socket server + HTTP server + config watcher).
func (a *App) Start() error {
	a.started = time.Now()
	if err := a.Server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	// HTTP API is non-fatal if the port is taken
	httpPort := a.httpPort
	if httpPort == 0 {
		httpPort = web.DefaultPort(a.DataDir)
	}
	if err := a.WebServer.Start(httpPort); err != nil {
		a.log.Warn().Err(err).Msg("http api unavailable")
	}
	// Config hot reload — non-fatal if setup fails
	if err := a.Watcher.Watch(a.configPath, a.onConfigChanged); err != nil {
		a.log.Warn().Err(err).Msg("config watcher unavailable")
	}
	// Write initial status
	a.mu.Lock()
	if table, err := a.loadTableLocked(); err == nil {
		a.writeStatusLocked(table)
	}
	a.mu.Unlock()

	a.log.Info().
		Str("socket", a.Server.Addr()).
		Int("http_port", a.WebServer.Port()).
		Msg("daemon started")
	return nil
}

// Stop gracefully shuts down all services.
func (a *App) Stop() error {
	_ = a.Watcher.Stop()
	a.WebServer.Stop()
	_ = a.Server.Stop()
	err := a.closeStore()
	a.log.Info().Msg("daemon stopped")
	return err
}

// onConfigChanged re-reads the config file and swaps the engine tuning.
// A broken file keeps the previous tuning.
func (a *App) onConfigChanged() {
	fileCfg, err := conf.Load(a.configPath)
	if err != nil {
		a.log.Warn().Err(err).Msg("config reload rejected")
		return
	}
	a.mu.Lock()
	a.engine = policy.NewEngine(fileCfg.EngineParams())
	a.mu.Unlock()
	a.log.Info().
		Float64("epsilon", fileCfg.Engine.Epsilon).
		Float64("alpha", fileCfg.Engine.Alpha).
		Float64("gamma", fileCfg.Engine.Gamma).
		Msg("config reloaded")
}

// Decide serves a recommendation request.
// Implements socket.AppQueries.
func (a *App) Decide(p socket.DecideParams) (socket.DecideResult, error) {
	in, err := parseDecideParams(p)
	if err != nil {
		invalidInputTotal.Inc()
		return socket.DecideResult{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	table, err := a.loadTableLocked()
	if err != nil {
		return socket.DecideResult{}, err
	}

	d := a.engine.Decide(table, in)
	a.decisions++
	decisionsTotal.WithLabelValues(d.Action.String()).Inc()
	a.writeStatusLocked(table)

	a.log.Debug().
		Str("state", d.StateKey).
		Str("action", d.Action.String()).
		Str("target", d.Target.String()).
		Msg("decision")

	list := make([]string, len(d.List))
	for i, s := range d.List {
		list[i] = s.String()
	}
	return socket.DecideResult{
		Action:   d.Action.String(),
		Target:   socket.Target{Letter: d.Target.String(), List: list},
		StateKey: d.StateKey,
	}, nil
}

// Feedback applies a reward to the value table and persists it.
// Implements socket.AppQueries.
func (a *App) Feedback(p socket.FeedbackParams) (socket.FeedbackResult, error) {
	fb, err := parseFeedbackParams(p)
	if err != nil {
		invalidInputTotal.Inc()
		return socket.FeedbackResult{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	table, err := a.loadTableLocked()
	if err != nil {
		return socket.FeedbackResult{}, err
	}

	val := a.engine.Apply(table, fb)
	if err := a.Store.SaveTable(table); err != nil {
		storeFailuresTotal.Inc()
		return socket.FeedbackResult{}, fmt.Errorf("%w: save table: %v", ports.ErrStoreUnavailable, err)
	}

	a.feedbacks++
	feedbackTotal.Inc()
	a.writeStatusLocked(table)

	a.log.Debug().
		Str("state", fb.StateKey).
		Str("action", fb.Action.String()).
		Float64("reward", fb.Reward).
		Float64("value", val).
		Msg("feedback")

	return socket.FeedbackResult{OK: true, Value: val}, nil
}

// Stats summarizes the learned table.
// Implements socket.AppQueries.
func (a *App) Stats() (socket.StatsResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	table, err := a.loadTableLocked()
	if err != nil {
		return socket.StatsResult{}, err
	}

	entries := 0
	for _, row := range table {
		entries += len(row)
	}

	var top []socket.StateInfo
	for _, key := range topKeys(table, 5) {
		action, val := bestEntry(table[key])
		top = append(top, socket.StateInfo{StateKey: key, BestAction: action, BestValue: val})
	}

	return socket.StatsResult{
		StateCount:    len(table),
		EntryCount:    entries,
		DecisionCount: a.decisions,
		FeedbackCount: a.feedbacks,
		TopStates:     top,
		Uptime:        a.uptime(),
	}, nil
}

// Health reports daemon liveness.
// Implements socket.AppQueries.
func (a *App) Health() socket.HealthResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	states := 0
	if table, err := a.loadTableLocked(); err == nil {
		states = len(table)
	}
	return socket.HealthResult{
		Status:     "ok",
		Service:    "alphabet-rl",
		StateCount: states,
		Uptime:     a.uptime(),
	}
}

// Wipe deletes the learned table and resets counters.
// Implements socket.AppQueries.
func (a *App) Wipe() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.Store.DeleteTable(); err != nil {
		storeFailuresTotal.Inc()
		return fmt.Errorf("%w: delete table: %v", ports.ErrStoreUnavailable, err)
	}
	a.decisions = 0
	a.feedbacks = 0
	a.writeStatusLocked(ports.ValueTable{})
	a.log.Info().Msg("value table wiped")
	return nil
}

// loadTableLocked fetches the full table, mapping a fresh store to an empty
// table. Must be called with a.mu held.
func (a *App) loadTableLocked() (ports.ValueTable, error) {
	table, err := a.Store.LoadTable()
	if err != nil {
		storeFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: load table: %v", ports.ErrStoreUnavailable, err)
	}
	if table == nil {
		table = ports.ValueTable{}
	}
	return table, nil
}

// writeStatusLocked refreshes the status file. Must be called with a.mu held.
func (a *App) writeStatusLocked(table ports.ValueTable) {
	_ = status.WriteJSON(a.statusPath, status.Generate(table, a.decisions, a.feedbacks))
}

func (a *App) uptime() string {
	if a.started.IsZero() {
		return "0s"
	}
	return time.Since(a.started).Round(time.Second).String()
}

// topKeys returns up to n state keys ranked by best learned value,
// descending, ties broken by key.
func topKeys(table ports.ValueTable, n int) []string {
	type sv struct {
		key string
		val float64
	}
	var states []sv
	for key, row := range table {
		if len(row) == 0 {
			continue
		}
		_, best := bestEntry(row)
		states = append(states, sv{key, best})
	}
	sort.Slice(states, func(i, j int) bool {
		if states[i].val != states[j].val {
			return states[i].val > states[j].val
		}
		return states[i].key < states[j].key
	})
	if len(states) > n {
		states = states[:n]
	}
	keys := make([]string, len(states))
	for i, s := range states {
		keys[i] = s.key
	}
	return keys
}

func bestEntry(row map[string]float64) (string, float64) {
	best, bestVal := "", 0.0
	first := true
	for action, v := range row {
		if first || v > bestVal || (v == bestVal && action < best) {
			best, bestVal, first = action, v, false
		}
	}
	return best, bestVal
}
