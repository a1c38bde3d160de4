package model

import (
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// MonitorConfig represents the set of monitored tables
type MonitorConfig struct {
	FloorValue int64         `yaml:"floor_value,omitempty"`
	Ceiling    int64         `yaml:"ceiling,omitempty"`
	Tables     []TableConfig `yaml:"tables"`
}

// TableConfig describes where the prediction and current max id of a table come from
type TableConfig struct {
	Name          types.TableName `yaml:"name"`
	PredictionURL string          `yaml:"prediction_url"`
	CurrentURL    string          `yaml:"current_url,omitempty"`    // Sibling endpoint returning the current max id
	CurrentMaxID  int64           `yaml:"current_max_id,omitempty"` // Static value when no endpoint exists
}

// Validate validates the table configuration
func (t *TableConfig) Validate() error {
	if err := t.Name.Validate(); err != nil {
		return goerr.Wrap(err, "invalid table name")
	}
	if err := validateURL(t.PredictionURL); err != nil {
		return goerr.Wrap(err, "invalid prediction URL", goerr.V("table", t.Name))
	}

	switch {
	case t.CurrentURL != "" && t.CurrentMaxID != 0:
		return goerr.New("current_url and current_max_id are mutually exclusive", goerr.V("table", t.Name))
	case t.CurrentURL != "":
		if err := validateURL(t.CurrentURL); err != nil {
			return goerr.Wrap(err, "invalid current URL", goerr.V("table", t.Name))
		}
	case t.CurrentMaxID <= 0:
		return goerr.New("either current_url or a positive current_max_id is required",
			goerr.V("table", t.Name),
			goerr.V("current_max_id", t.CurrentMaxID))
	}

	return nil
}

// Validate validates the monitor configuration and fills defaults
func (c *MonitorConfig) Validate() error {
	if len(c.Tables) == 0 {
		return goerr.New("at least one table is required")
	}

	if c.Ceiling == 0 {
		c.Ceiling = Int32Ceiling
	}
	if c.FloorValue == 0 {
		c.FloorValue = DefaultFloorValue
	}
	if c.FloorValue < 0 || c.FloorValue >= c.Ceiling {
		return goerr.New("floor_value must be between 0 and ceiling",
			goerr.V("floor_value", c.FloorValue),
			goerr.V("ceiling", c.Ceiling))
	}

	names := make(map[types.TableName]bool)
	for i := range c.Tables {
		table := &c.Tables[i]
		if err := table.Validate(); err != nil {
			return goerr.Wrap(err, "invalid table at index", goerr.V("index", i))
		}
		if names[table.Name] {
			return goerr.New("duplicate table name", goerr.V("table", table.Name))
		}
		names[table.Name] = true
	}

	return nil
}

// FindTable finds a table by its name
func (c *MonitorConfig) FindTable(name types.TableName) *TableConfig {
	for _, t := range c.Tables {
		if t.Name == name {
			result := t
			return &result
		}
	}
	return nil
}

// TableNames returns the configured table names in file order
func (c *MonitorConfig) TableNames() []types.TableName {
	names := make([]types.TableName, 0, len(c.Tables))
	for _, t := range c.Tables {
		names = append(names, t.Name)
	}
	return names
}

func validateURL(raw string) error {
	if raw == "" {
		return goerr.New("URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return goerr.Wrap(err, "failed to parse URL", goerr.V("url", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.New("URL scheme must be http or https", goerr.V("url", raw))
	}
	if u.Host == "" {
		return goerr.New("URL host is empty", goerr.V("url", raw))
	}
	return nil
}
