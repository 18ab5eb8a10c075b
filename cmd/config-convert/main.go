package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrissnell/modeltime/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		simulation = flag.String("simulation", "", "Simulation name to store under (default: name from YAML, else \"default\")")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <sim.yaml> -sqlite <sim.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Check if YAML file exists
	if _, err := os.Stat(*yamlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: YAML file does not exist: %s\n", *yamlFile)
		os.Exit(1)
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	yamlProvider := config.NewYAMLProvider(*yamlFile)
	configData, err := yamlProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	if *simulation == "" {
		*simulation = configData.Name
	}
	if *simulation == "" {
		*simulation = config.DefaultSimulation
	}
	configData.Name = *simulation

	// Refuse to store a schedule that could not be computed
	if _, err := configData.ModelTime(); err != nil {
		fmt.Fprintf(os.Stderr, "Error validating configuration: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		printConfigSummary(configData)
		fmt.Println("DRY RUN complete - no database written")
		return
	}

	if err := saveToSQLite(*sqliteFile, configData); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration into SQLite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Conversion completed successfully!\n")
	fmt.Printf("Run it with: modeltime -sqlite %s -simulation %s\n", *sqliteFile, *simulation)
}

func saveToSQLite(dbPath string, configData *config.ConfigData) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	sqliteProvider, err := config.NewSQLiteProvider(dbPath, configData.Name)
	if err != nil {
		return fmt.Errorf("failed to create SQLite provider: %w", err)
	}
	defer sqliteProvider.Close()

	if err := sqliteProvider.InitSchema(); err != nil {
		return err
	}

	fmt.Printf("  Inserting simulation %q with %d stress periods...\n", configData.Name, len(configData.Periods))
	if err := sqliteProvider.SaveConfig(configData); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

func printConfigSummary(configData *config.ConfigData) {
	fmt.Println("\nConfiguration Summary:")
	fmt.Printf("Simulation:  %s\n", configData.Name)
	fmt.Printf("Time units:  %s\n", configData.TimeUnits)
	fmt.Printf("Start:       %s\n", configData.StartDateTime)
	if configData.Namefile != "" {
		fmt.Printf("Name file:   %s\n", configData.Namefile)
	}
	if configData.ReferenceFile != "" {
		fmt.Printf("Reference:   %s\n", configData.ReferenceFile)
	}

	fmt.Printf("\nStress periods (%d):\n", len(configData.Periods))
	for i, p := range configData.Periods {
		fmt.Printf("  %3d  perlen=%g nstp=%d tsmult=%g\n", i+1, p.Perlen, p.Nstp, p.Tsmult)
	}
}
