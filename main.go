package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsoler/chores-tui/internal/config"
	"github.com/rsoler/chores-tui/internal/store"
	_ "github.com/rsoler/chores-tui/internal/store/memory"
	"github.com/rsoler/chores-tui/internal/store/sqlite"
	"github.com/rsoler/chores-tui/internal/tui"
)

func main() {
	initFlag := flag.Bool("init", false, "create a new task database and exit")
	fixturesFlag := flag.Bool("fixtures", false, "create a database with sample tasks and exit")
	dbFlag := flag.String("db", "", "path to the task database (overrides config)")
	configFlag := flag.String("config", "", "path to the config file")
	backendFlag := flag.String("store", "", "storage backend to use (overrides config)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.LoadFrom(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(err)
	}

	dbPath := cfg.Database.Path
	if *dbFlag != "" {
		dbPath = *dbFlag
	}
	backend := cfg.Database.Backend
	if *backendFlag != "" {
		backend = *backendFlag
	}

	if *initFlag {
		if err := sqlite.Initialize(dbPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Created task database at %s\n", dbPath)
		return
	}

	if *fixturesFlag {
		if err := sqlite.CreateFixturesDatabase(dbPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Created fixtures database at %s\n", dbPath)
		return
	}

	// Open the persistence backend
	s, err := store.Open(backend, dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	// Create model
	model, err := tui.New(s, time.Duration(cfg.UI.CheckIntervalSeconds)*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	// Start the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
