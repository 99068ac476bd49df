package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"uikit/internal/config"
	"uikit/internal/data"
	"uikit/internal/domain"
	"uikit/internal/eventbus"
	"uikit/internal/ui"
)

func main() {
	var (
		configPath string
		dataPath   string
		logPath    string
		noMouse    bool
	)
	flag.StringVarP(&configPath, "config", "c", config.DefaultFileName, "Path to the TOML config file")
	flag.StringVarP(&dataPath, "data", "d", "", "TOML file with [[users]] to show instead of the sample data")
	flag.StringVar(&logPath, "log", "uikit.log", "Log file")
	flag.BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
	flag.Parse()

	// Set up logging
	logFile, err := tea.LogToFile(logPath, "uikit")
	if err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}

	bus := eventbus.New()
	defer bus.Close()

	// Problems found before the UI runs are shown on its status line
	var startupErrors []eventbus.ErrorEvent

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		startupErrors = append(startupErrors, eventbus.ErrorEvent{Message: "Config error, using defaults", Err: err})
	}
	if noMouse {
		cfg.UISettings.Mouse = false
	}

	if dataPath == "" {
		dataPath = cfg.UISettings.DataFile
	}
	users, err := loadUsers(dataPath)
	if err != nil {
		startupErrors = append(startupErrors, eventbus.ErrorEvent{Message: "Data file error, showing sample data", Err: err})
	}

	subscribeAuditLog(bus)

	log.Printf("Creating UI model...")
	uiModel, err := ui.NewModel(bus, cfg, users)
	if err != nil {
		log.Printf("Error creating UI: %v", err)
		fmt.Printf("Error creating UI: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	for _, e := range startupErrors {
		log.Printf("%s: %v", e.Message, e.Err)
		bus.Publish(e)
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults when it
// does not exist yet. Invalid files are left alone and defaults are used.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	cfg, err := configSvc.Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return config.DefaultConfig(), err
	}

	log.Printf("Creating default config")
	cfg = config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg, nil
}

// loadUsers reads the data file, falling back to the sample users
func loadUsers(path string) ([]domain.User, error) {
	if path == "" {
		return data.SampleUsers(), nil
	}
	users, err := data.LoadFile(path)
	if err != nil {
		return data.SampleUsers(), err
	}
	log.Printf("Loaded %d users from %s", len(users), path)
	return users, nil
}

// subscribeAuditLog writes one log line per user interaction
func subscribeAuditLog(bus eventbus.EventBus) {
	audit := func(e eventbus.DomainEvent) {
		log.Printf("audit: %s %+v", e.Type(), e)
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventSortChanged,
		eventbus.EventRowClicked,
		eventbus.EventRowCopied,
		eventbus.EventFormSubmitted,
		eventbus.EventFormRejected,
		eventbus.EventButtonPressed,
		eventbus.EventModalOpened,
		eventbus.EventModalClosed,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, audit)
	}
}
