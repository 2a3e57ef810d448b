package memory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	v1 "github.com/aevon-lab/retail-insights/internal/api/v1"
	"gopkg.in/yaml.v3"
)

// Snapshot is one consistent read of every collection the engine consumes.
type Snapshot struct {
	Sales     []v1.Sale     `yaml:"sales"`
	Products  []v1.Product  `yaml:"products"`
	Expenses  []v1.Expense  `yaml:"expenses"`
	Customers []v1.Customer `yaml:"customers"`
	Employees []v1.Employee `yaml:"employees"`
	Stores    []v1.Store    `yaml:"stores"`
}

// LoadSnapshot reads a YAML snapshot file.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	snap, err := ParseSnapshot(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	slog.Info("[Snapshot] Loaded snapshot",
		"path", path,
		"sales", len(snap.Sales),
		"products", len(snap.Products),
		"expenses", len(snap.Expenses),
		"customers", len(snap.Customers),
		"employees", len(snap.Employees),
		"stores", len(snap.Stores))

	return snap, nil
}

// ParseSnapshot decodes YAML snapshot content. Unknown fields are rejected.
// Empty content yields an empty snapshot.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}
	return snap, nil
}
