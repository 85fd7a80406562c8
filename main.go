package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"modalpicker/internal/config"
	"modalpicker/internal/items"
	"modalpicker/internal/logs"
	"modalpicker/internal/tui"
)

func main() {
	// Parse CLI flags
	kindFlag := flag.String("kind", "", "Picker kind: date or custom")
	headerFlag := flag.String("header", "", "Header text")
	itemsFlag := flag.String("items", "", "File with custom picker options (.yaml, .md or plain lines)")
	optionsFlag := flag.String("options", "", "Custom picker options (comma-separated)")
	doneFlag := flag.String("done", "", "Done button text")
	cancelFlag := flag.String("cancel", "", "Cancel button text")
	logDirFlag := flag.String("log-dir", "", "Directory for debug.log")
	onceFlag := flag.Bool("once", false, "Present one picker, print the picked value and exit")
	flag.Parse()

	// Build CLIFlags
	cliFlags := config.CLIFlags{
		Kind:       *kindFlag,
		Header:     *headerFlag,
		DoneText:   *doneFlag,
		CancelText: *cancelFlag,
		ItemsFile:  *itemsFlag,
		Items:      config.ParseCommaSeparated(*optionsFlag),
		LogDir:     *logDirFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// Inline options win over the items file
	list := items.List{Items: cfg.Items}
	if len(list.Items) == 0 && cfg.ItemsFile != "" {
		list, err = items.Load(cfg.ItemsFile)
		if err != nil {
			log.Fatalf("Failed to load items: %v", err)
		}
		logs.Logger.Printf("Loaded %d items from %s", len(list.Items), cfg.ItemsFile)
	}

	logs.Logger.Printf("Starting %s picker (once=%v)", cfg.Kind, *onceFlag)
	appModel := tui.NewAppModel(cfg, list, *onceFlag)
	p := tea.NewProgram(appModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}

	if !*onceFlag {
		return
	}
	result, ok := final.(tui.AppModel).Result()
	if !ok {
		logs.Close()
		os.Exit(1)
	}
	fmt.Println(result.Value)
}
