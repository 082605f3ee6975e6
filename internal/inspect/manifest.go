package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// manifestDateFormat is the schedule-date format accepted in manifests.
const manifestDateFormat = "2006-01-02"

// Manifest is a batch of entries as exported by the field crew, plus the
// report header metadata. Both JSON and YAML files are accepted.
type Manifest struct {
	ScheduleDate string  `json:"tanggal_jadwal,omitempty" yaml:"tanggal_jadwal,omitempty"`
	AssetName    string  `json:"nama_aset,omitempty"      yaml:"nama_aset,omitempty"`
	Entries      []Entry `json:"entries"                  yaml:"entries"`
}

// LoadManifest reads and validates a manifest file. The format is chosen by
// extension: .json, or .yaml/.yml.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: reading a user-provided manifest is expected
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest and every entry in it.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return fmt.Errorf("manifest has no entries")
	}
	if m.ScheduleDate != "" {
		if _, err := time.Parse(manifestDateFormat, m.ScheduleDate); err != nil {
			return fmt.Errorf("invalid schedule date %q (want YYYY-MM-DD): %w", m.ScheduleDate, err)
		}
	}
	for _, e := range m.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Date returns the parsed schedule date, or the zero time when the
// manifest carries none.
func (m *Manifest) Date() time.Time {
	if m.ScheduleDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(manifestDateFormat, m.ScheduleDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
