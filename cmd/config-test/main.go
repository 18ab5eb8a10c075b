package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/chrissnell/modeltime/pkg/config"
)

const tolerance = 1e-9

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite configuration file")
		simulation = flag.String("simulation", config.DefaultSimulation, "Simulation name in the SQLite database")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <sim.yaml> -sqlite <sim.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("Configuration Comparison Test")
	fmt.Println("===========================")

	// Load YAML configuration
	fmt.Printf("Loading YAML configuration: %s\n", *yamlFile)
	yamlProvider := config.NewYAMLProvider(*yamlFile)
	yamlConfig, err := yamlProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML config: %v\n", err)
		os.Exit(1)
	}

	// Load SQLite configuration
	fmt.Printf("Loading SQLite configuration: %s\n", *sqliteFile)
	sqliteProvider, err := config.NewSQLiteProvider(*sqliteFile, *simulation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SQLite provider: %v\n", err)
		os.Exit(1)
	}
	defer sqliteProvider.Close()

	sqliteConfig, err := sqliteProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading SQLite config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nComparison Results:")
	fmt.Println("==================")

	ok := compareField("Time units", yamlConfig.TimeUnits, sqliteConfig.TimeUnits)
	ok = compareField("Start", yamlConfig.StartDateTime, sqliteConfig.StartDateTime) && ok
	ok = compareSchedules(yamlConfig, sqliteConfig) && ok

	if !ok {
		fmt.Println("\n✗ Configurations differ")
		os.Exit(1)
	}
	fmt.Println("\n✓ Configurations produce the same schedule")
}

func compareField(name, yamlValue, sqliteValue string) bool {
	if yamlValue == sqliteValue {
		fmt.Printf("✓ %s matches\n", name)
		return true
	}
	fmt.Printf("✗ %s differs: YAML=%q SQLite=%q\n", name, yamlValue, sqliteValue)
	return false
}

func compareSchedules(yamlConfig, sqliteConfig *config.ConfigData) bool {
	fmt.Printf("Periods - YAML: %d, SQLite: %d\n", len(yamlConfig.Periods), len(sqliteConfig.Periods))

	yamlTime, err := yamlConfig.ModelTime()
	if err != nil {
		fmt.Printf("✗ YAML schedule invalid: %v\n", err)
		return false
	}
	sqliteTime, err := sqliteConfig.ModelTime()
	if err != nil {
		fmt.Printf("✗ SQLite schedule invalid: %v\n", err)
		return false
	}

	yamlTotim, _ := yamlTime.ComputeTotim()
	sqliteTotim, _ := sqliteTime.ComputeTotim()
	if len(yamlTotim) != len(sqliteTotim) {
		fmt.Printf("✗ Step count mismatch: YAML=%d SQLite=%d\n", len(yamlTotim), len(sqliteTotim))
		return false
	}

	for k := range yamlTotim {
		if math.Abs(yamlTotim[k]-sqliteTotim[k]) > tolerance {
			fmt.Printf("✗ totim differs at step %d: YAML=%g SQLite=%g\n", k+1, yamlTotim[k], sqliteTotim[k])
			return false
		}
	}
	fmt.Printf("✓ All %d time steps match\n", len(yamlTotim))
	return true
}
