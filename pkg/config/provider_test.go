package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolp(b bool) *bool { return &b }

const sampleYAML = `
name: regional
time-units: days
start-datetime: "2020-05-01T00:00:00"
namefile: model.nam
reference-file: usgs.model.reference
periods:
  - perlen: 1
    steady-state: true
  - perlen: 365.25
    nstp: 12
    tsmult: 1.2
    steady-state: false
  - perlen: 30
    nstp: 5
    steady-state: false
`

func TestYAMLProviderLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	provider := NewYAMLProvider(path)
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	expected := &ConfigData{
		Name:          "regional",
		TimeUnits:     "days",
		StartDateTime: "2020-05-01T00:00:00",
		Namefile:      "model.nam",
		ReferenceFile: "usgs.model.reference",
		Periods: []PeriodData{
			{Perlen: 1, Nstp: 1, Tsmult: 1.0, SteadyState: boolp(true)},
			{Perlen: 365.25, Nstp: 12, Tsmult: 1.2, SteadyState: boolp(false)},
			{Perlen: 30, Nstp: 5, Tsmult: 1.0, SteadyState: boolp(false)},
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	periods, err := provider.GetPeriods()
	if err != nil {
		t.Fatalf("GetPeriods returned error: %v", err)
	}
	if len(periods) != 3 {
		t.Errorf("GetPeriods returned %d periods, expected 3", len(periods))
	}
	if !provider.IsReadOnly() {
		t.Error("YAML provider should be read-only")
	}

	mt, err := cfg.ModelTime()
	if err != nil {
		t.Fatalf("ModelTime returned error: %v", err)
	}
	if mt.Nper() != 3 {
		t.Errorf("Nper() = %d, expected 3", mt.Nper())
	}
	if steady, ok := mt.SteadyState().At(0); !ok || !steady {
		t.Errorf("period 0 steady state = %v, %v; expected true", steady, ok)
	}
	if mt.Start().String() != "2020-05-01T00:00:00" {
		t.Errorf("start = %q", mt.Start().String())
	}
}

func TestYAMLProviderRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte("periods:\n  - perlen: 1\n    nstep: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewYAMLProvider(path).LoadConfig(); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestConfigModelTimeSteadyState(t *testing.T) {
	tests := []struct {
		name    string
		config  ConfigData
		wantErr bool
		check   func(t *testing.T, steady, ok bool)
	}{
		{
			name: "uniform flag",
			config: ConfigData{
				SteadyState: boolp(false),
				Periods:     []PeriodData{{Perlen: 1, Nstp: 1, Tsmult: 1}},
			},
			check: func(t *testing.T, steady, ok bool) {
				if !ok || steady {
					t.Errorf("At(0) = %v, %v; expected false, true", steady, ok)
				}
			},
		},
		{
			name: "unset",
			config: ConfigData{
				Periods: []PeriodData{{Perlen: 1, Nstp: 1, Tsmult: 1}},
			},
			check: func(t *testing.T, steady, ok bool) {
				if ok {
					t.Error("expected no steady-state flag")
				}
			},
		},
		{
			name: "partial per-period flags",
			config: ConfigData{
				Periods: []PeriodData{
					{Perlen: 1, Nstp: 1, Tsmult: 1},
					{Perlen: 1, Nstp: 1, Tsmult: 1, SteadyState: boolp(true)},
				},
			},
			wantErr: true,
		},
		{
			name: "invalid period data",
			config: ConfigData{
				Periods: []PeriodData{{Perlen: 1, Nstp: 0, Tsmult: 1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := tt.config.ModelTime()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ModelTime returned error: %v", err)
			}
			if mt.TimeUnits() != "days" {
				t.Errorf("TimeUnits() = %q, expected default days", mt.TimeUnits())
			}
			steady, ok := mt.SteadyState().At(0)
			tt.check(t, steady, ok)
		})
	}
}

func TestSQLiteProviderRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "modeltime.db")

	provider, err := NewSQLiteProvider(dbPath, "regional")
	if err != nil {
		t.Fatalf("NewSQLiteProvider returned error: %v", err)
	}
	defer provider.Close()

	if err := provider.InitSchema(); err != nil {
		t.Fatalf("InitSchema returned error: %v", err)
	}

	original := &ConfigData{
		Name:          "regional",
		TimeUnits:     "hours",
		StartDateTime: "2021-03-04T05:06:07",
		SteadyState:   boolp(false),
		Periods: []PeriodData{
			{Perlen: 24, Nstp: 4, Tsmult: 1.0},
			{Perlen: 48, Nstp: 6, Tsmult: 1.5},
		},
	}
	if err := provider.SaveConfig(original); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	loaded, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("config mismatch after save (-want +got):\n%s", diff)
	}

	// Saving again replaces the periods rather than appending
	original.Periods = original.Periods[:1]
	original.Namefile = "model.nam"
	if err := provider.SaveConfig(original); err != nil {
		t.Fatalf("second SaveConfig returned error: %v", err)
	}
	loaded, err = provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("config mismatch after resave (-want +got):\n%s", diff)
	}
}

func TestSQLiteProviderMissingSimulation(t *testing.T) {
	provider, err := NewSQLiteProvider(filepath.Join(t.TempDir(), "modeltime.db"), "")
	if err != nil {
		t.Fatalf("NewSQLiteProvider returned error: %v", err)
	}
	defer provider.Close()

	if err := provider.InitSchema(); err != nil {
		t.Fatalf("InitSchema returned error: %v", err)
	}
	if _, err := provider.LoadConfig(); err == nil {
		t.Error("expected error for missing simulation")
	}
	if provider.IsReadOnly() {
		t.Error("SQLite provider should be writable")
	}
}
