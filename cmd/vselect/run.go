package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"vselect/internal/app"
	"vselect/internal/catalog"
	"vselect/internal/config"
	"vselect/internal/domain"
	"vselect/internal/eventbus"
	"vselect/internal/history"
	"vselect/internal/ui"
	"vselect/internal/ui/services/selection"
)

// errNoCatalogue is returned when neither files nor --generate were given
var errNoCatalogue = errors.New("no catalogue given: pass catalogue files or --generate N")

// setupLogging sends the standard logger to vselect.log; the TUI owns the terminal
func setupLogging() func() {
	logFile, err := os.OpenFile("vselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		logFile.Close()
	}
}

func runSelect(cmd *cobra.Command, args []string, fl flags) error {
	defer setupLogging()()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, cfgPath, err := loadConfig(configSvc, fl.configPath, args)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, fl)

	cat, err := loadCatalogue(ctx, args, fl)
	if err != nil {
		return err
	}

	widgetOpts := buildOptions(cat, cfg, bus)

	var store *history.Store
	historyKey := sourceKey(args, fl)
	if fl.remember {
		store = history.Open(history.DefaultDir())
		seed, err := store.Load(historyKey)
		if err != nil {
			log.Printf("Failed to load history: %v", err)
		}
		widgetOpts.DefaultSelection = seedSelection(cat, seed, widgetOpts.IsMulti)
	}

	widget, err := ui.New(widgetOpts)
	if err != nil {
		return err
	}

	host := app.NewModel(widget, cfg.UISettings.Title)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd())
	if !stdoutTTY {
		// stdout is a pipe; draw on stderr so the result stays clean
		progOpts = append(progOpts, tea.WithOutput(os.Stderr))
	}

	log.Printf("Starting UI with %d options...", len(cat.Options))
	p := tea.NewProgram(host, progOpts...)
	host.SetProgram(p)

	stop := ui.ForwardEvents(bus, p.Send,
		eventbus.EventSelectionChanged,
		eventbus.EventSearchCommitted,
		eventbus.EventOptionsChanged,
	)
	defer stop()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Printf("UI interrupted")
			return nil
		}
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Printf("UI exited normally")

	values := host.Selection().Values
	if store != nil {
		if err := store.Save(historyKey, values); err != nil {
			log.Printf("Failed to save history: %v", err)
		}
	}
	if fl.saveConfig {
		if err := configSvc.SaveToPath(cfg, cfgPath); err != nil {
			return err
		}
		log.Printf("Config saved to %s", cfgPath)
	}

	return printSelection(os.Stdout, values, stdoutTTY)
}

// loadConfig resolves the config file: an explicit path, then a
// .vselect.toml next to the first catalogue, then the user config file
func loadConfig(svc config.ConfigService, explicit string, args []string) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := svc.LoadFromPath(explicit)
		if err != nil {
			return nil, "", err
		}
		log.Printf("Loaded config from %s", explicit)
		return cfg, explicit, nil
	}

	if len(args) > 0 {
		local := filepath.Join(filepath.Dir(args[0]), config.LocalFileName)
		if _, err := os.Stat(local); err == nil {
			cfg, err := svc.LoadFromPath(local)
			if err == nil {
				log.Printf("Loaded config from %s", local)
				return cfg, local, nil
			}
			log.Printf("Ignoring %s: %v", local, err)
		}
	}

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}
	return cfg, svc.Path(), nil
}

// applyFlags overrides config values with the flags set on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config, fl flags) {
	changed := cmd.Flags().Changed
	if changed("multi") {
		cfg.Widget.Multi = fl.multi
	}
	if changed("search") {
		cfg.Widget.Search = fl.search
	}
	if changed("sticky") {
		cfg.Widget.Sticky = fl.sticky
	}
	if changed("loop") {
		cfg.Widget.Loop = fl.loop
	}
	if changed("debounce") {
		cfg.Widget.DebounceMS = int(max(fl.debounce, 0).Milliseconds())
	}
	if changed("title") {
		cfg.UISettings.Title = fl.title
	}
}

func loadCatalogue(ctx context.Context, args []string, fl flags) (*domain.Catalogue, error) {
	if fl.generate > 0 {
		return catalog.Generate(fl.generate, fl.groups), nil
	}
	if len(args) == 0 {
		return nil, errNoCatalogue
	}
	return catalog.LoadAll(ctx, args)
}

// buildOptions wires catalogue records into widget options
func buildOptions(cat *domain.Catalogue, cfg *config.Config, bus eventbus.EventBus) ui.Options[domain.Option] {
	o := ui.Options[domain.Option]{
		Options:          cat.Options,
		GetOptionValue:   func(o domain.Option) string { return o.Value },
		GetOptionLabel:   domain.Option.DisplayLabel,
		IsOptionDisabled: func(o domain.Option) bool { return o.Disabled },
		Bus:              bus,
	}
	config.Apply(cfg, &o)

	if cat.HasGroups() {
		o.GetOptionGroup = func(o domain.Option) string { return o.Group }
	}
	if cat.HasSizes() {
		def := max(o.DefaultOptionSize, 1)
		o.GetOptionSize = func(o domain.Option) int {
			if o.Size > 0 {
				return o.Size
			}
			return def
		}
	}
	if o.IsMulti {
		o.DefaultSelection = selection.Many()
	}
	return o
}

// seedSelection turns remembered values into an initial selection
func seedSelection(cat *domain.Catalogue, seed []string, multi bool) selection.Value {
	enabled := make(map[string]bool, len(cat.Options))
	for _, o := range cat.Options {
		enabled[o.Value] = !o.Disabled
	}
	kept := history.Filter(seed, func(v string) bool { return enabled[v] }, multi)

	switch {
	case multi:
		return selection.Many(kept...)
	case len(kept) == 1:
		return selection.Single(kept[0])
	default:
		return selection.None()
	}
}

func sourceKey(args []string, fl flags) string {
	if fl.generate > 0 {
		return history.Key([]string{fmt.Sprintf("generate:%d:%d", fl.generate, fl.groups)})
	}
	return history.Key(args)
}

// printSelection writes one value per line, colored on a terminal
func printSelection(w io.Writer, values []string, color bool) error {
	for _, v := range values {
		line := v
		if color {
			line = selectedColor.Sprint(v)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to print selection: %w", err)
		}
	}
	return nil
}
