package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
	"github.com/secmon-lab/idwatch/pkg/service/prediction"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Monitor holds the monitored table configuration. Tables come from a YAML
// monitor file, or from the single-table flags when no file is given.
type Monitor struct {
	File          string
	Table         string
	PredictionURL string
	CurrentURL    string
	CurrentMaxID  int64
	FloorValue    int64
	SourceTimeout time.Duration
}

// Flags returns CLI flags for Monitor configuration
func (m *Monitor) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "monitor-file",
			Aliases:     []string{"f"},
			Usage:       "YAML file listing monitored tables",
			Category:    "Monitor",
			Sources:     cli.EnvVars("IDWATCH_MONITOR_FILE"),
			Destination: &m.File,
		},
		&cli.StringFlag{
			Name:        "table",
			Usage:       "Table name when monitoring a single table without a monitor file",
			Category:    "Monitor",
			Sources:     cli.EnvVars("IDWATCH_TABLE"),
			Destination: &m.Table,
		},
		&cli.StringFlag{
			Name:        "prediction-url",
			Usage:       "Prediction endpoint of the single table",
			Category:    "Monitor",
			Sources:     cli.EnvVars("IDWATCH_PREDICTION_URL"),
			Destination: &m.PredictionURL,
		},
		&cli.StringFlag{
			Name:        "current-url",
			Usage:       "Current max id endpoint of the single table",
			Category:    "Monitor",
			Sources:     cli.EnvVars("IDWATCH_CURRENT_URL"),
			Destination: &m.CurrentURL,
		},
		&cli.Int64Flag{
			Name:        "current-max-id",
			Usage:       "Static current max id of the single table when it has no endpoint",
			Category:    "Monitor",
			Sources:     cli.EnvVars("IDWATCH_CURRENT_MAX_ID"),
			Destination: &m.CurrentMaxID,
		},
		&cli.Int64Flag{
			Name:        "floor-value",
			Usage:       "Lower bound of back-filled history in the chart series (overrides the monitor file)",
			Category:    "Monitor",
			Sources:     cli.EnvVars("IDWATCH_FLOOR_VALUE"),
			Destination: &m.FloorValue,
		},
		&cli.DurationFlag{
			Name:        "source-timeout",
			Usage:       "Timeout of each request to a prediction or current max id endpoint",
			Category:    "Monitor",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("IDWATCH_SOURCE_TIMEOUT"),
			Destination: &m.SourceTimeout,
		},
	}
}

// Configure loads and validates the monitored tables and builds their sources
func (m *Monitor) Configure() (*model.MonitorConfig, map[types.TableName]prediction.Sources, error) {
	var cfg *model.MonitorConfig
	switch {
	case m.File != "":
		if m.Table != "" {
			return nil, nil, goerr.New("monitor-file and table are mutually exclusive")
		}
		loaded, err := LoadMonitorFile(m.File)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	case m.Table != "":
		cfg = &model.MonitorConfig{
			Tables: []model.TableConfig{
				{
					Name:          types.TableName(m.Table),
					PredictionURL: m.PredictionURL,
					CurrentURL:    m.CurrentURL,
					CurrentMaxID:  m.CurrentMaxID,
				},
			},
		}
	default:
		return nil, nil, goerr.New("either monitor-file or table is required")
	}

	if m.FloorValue != 0 {
		cfg.FloorValue = m.FloorValue
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, goerr.Wrap(err, "invalid monitor configuration", goerr.V("file", m.File))
	}

	var opts []prediction.Option
	if m.SourceTimeout > 0 {
		opts = append(opts, prediction.WithTimeout(m.SourceTimeout))
	}

	sources := make(map[types.TableName]prediction.Sources, len(cfg.Tables))
	for _, table := range cfg.Tables {
		sources[table.Name] = prediction.FromTableConfig(table, opts...)
	}

	return cfg, sources, nil
}

// LogValue returns structured log value
func (m Monitor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", m.File),
		slog.String("table", m.Table),
		slog.String("prediction_url", m.PredictionURL),
		slog.Int64("floor_value", m.FloorValue),
		slog.Duration("source_timeout", m.SourceTimeout),
	)
}

// LoadMonitorFile loads the monitored tables from a YAML file. The result is not validated.
func LoadMonitorFile(path string) (*model.MonitorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "monitor file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read monitor file", goerr.V("path", path))
	}

	var cfg model.MonitorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse monitor file", goerr.V("path", path))
	}

	return &cfg, nil
}
