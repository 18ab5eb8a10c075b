package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/chrissnell/modeltime/internal/log"
	"github.com/chrissnell/modeltime/pkg/config"
	"github.com/chrissnell/modeltime/pkg/modeltime"
	"github.com/chrissnell/modeltime/pkg/responseformat"
)

func main() {
	// A .env file is optional; the environment may already hold the settings
	envErr := godotenv.Load()

	var (
		cfgFile       = flag.String("config", os.Getenv("MODELTIME_CONFIG"), "Path to YAML configuration file")
		sqliteFile    = flag.String("sqlite", os.Getenv("MODELTIME_SQLITE"), "Path to SQLite configuration database")
		simulation    = flag.String("simulation", getEnv("MODELTIME_SIMULATION", config.DefaultSimulation), "Simulation name in the SQLite database")
		namefile      = flag.String("namefile", "", "Name file whose header holds start metadata (overrides config)")
		referenceFile = flag.String("reference", "", "USGS model reference file (overrides config)")
		format        = flag.String("format", "table", "Output format: table, json or msgpack")
		debug         = flag.Bool("debug", getEnvBool("MODELTIME_DEBUG"), "Enable debug logging")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debugf("no .env file loaded: %v", envErr)
	}

	if *cfgFile == "" && *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -config <sim.yaml> | -sqlite <sim.db> [-simulation name]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	provider, err := newProvider(*cfgFile, *sqliteFile, *simulation)
	if err != nil {
		log.Fatalf("error opening configuration: %v", err)
	}
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	mt, err := cfg.ModelTime()
	if err != nil {
		log.Fatalf("error building model time: %v", err)
	}

	if *namefile != "" {
		cfg.Namefile = *namefile
	}
	if *referenceFile != "" {
		cfg.ReferenceFile = *referenceFile
	}

	// Layer the name file header first, then the reference file
	if cfg.Namefile != "" {
		ok, err := mt.AttribsFromNamfileHeader(cfg.Namefile)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Infow("read name file header", "path", cfg.Namefile, "ingested", ok)
	}
	if cfg.ReferenceFile != "" {
		ok, err := mt.ReadUSGSModelReferenceFile(cfg.ReferenceFile)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Infow("read model reference file", "path", cfg.ReferenceFile, "ingested", ok)
	}

	table, err := mt.ComputeStepTable()
	if err != nil {
		log.Fatalf("error computing time steps: %v", err)
	}

	if *format == "table" {
		printTable(table)
		return
	}

	outFormat, err := responseformat.ParseFormat(*format)
	if err != nil {
		log.Fatalf("%v", err)
	}
	formatter := responseformat.NewFormatter()
	formatter.Indent = true
	if err := formatter.Write(os.Stdout, outFormat, table); err != nil {
		log.Fatalf("error writing output: %v", err)
	}
}

func newProvider(cfgFile, sqliteFile, simulation string) (config.ConfigProvider, error) {
	if cfgFile != "" {
		return config.NewYAMLProvider(cfgFile), nil
	}
	return config.NewSQLiteProvider(sqliteFile, simulation)
}

func printTable(table *modeltime.StepTable) {
	fmt.Printf("Time units: %s\n", table.TimeUnits)
	if table.StartDateTime != "" {
		fmt.Printf("Start:      %s\n", table.StartDateTime)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "KPER\tKSTP\tTSLEN\tTOTIM\tDATETIME\t")
	for _, step := range table.Steps {
		datetime := "-"
		if step.DateTime != nil {
			datetime = step.DateTime.Format("2006-01-02T15:04:05")
		}
		// Periods and steps are reported 1-based, as MODFLOW does
		fmt.Fprintf(w, "%d\t%d\t%.6g\t%.6g\t%s\t\n", step.Kper+1, step.Kstp+1, step.Tslen, step.Totim, datetime)
	}
	w.Flush()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
