package codegen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	manifestFileName    = ".i18ngen-manifest.json"
	manifestFileVersion = 1
)

// buildManifest records metadata about the last generation run so callers can
// detect drift between the checked-in output and the locale files that
// produced it.
type buildManifest struct {
	Version     int                       `json:"version"`
	RunID       string                    `json:"run_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Outputs     map[string]manifestOutput `json:"outputs"`
}

type manifestOutput struct {
	Path     string `json:"path"`
	Package  string `json:"package"`
	Checksum string `json:"checksum"`
	Size     int64  `json:"size"`
	Locales  int    `json:"locales"`
	Messages int    `json:"messages"`
}

func newBuildManifest(runID uuid.UUID, generatedAt time.Time) *buildManifest {
	return &buildManifest{
		Version:     manifestFileVersion,
		RunID:       runID.String(),
		GeneratedAt: generatedAt.UTC(),
		Outputs:     map[string]manifestOutput{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(uuid.Nil, time.Time{}), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("codegen: parse manifest: %w", err)
	}
	if manifest.Outputs == nil {
		manifest.Outputs = map[string]manifestOutput{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *buildManifest) setOutput(entry manifestOutput) {
	if m == nil {
		return
	}
	if m.Outputs == nil {
		m.Outputs = map[string]manifestOutput{}
	}
	m.Outputs[entry.Path] = entry
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	// Stable ordering for deterministic output.
	type orderedManifest struct {
		Version     int              `json:"version"`
		RunID       string           `json:"run_id"`
		GeneratedAt time.Time        `json:"generated_at"`
		Outputs     []manifestOutput `json:"outputs"`
	}
	ordered := orderedManifest{
		Version:     m.Version,
		RunID:       m.RunID,
		GeneratedAt: m.GeneratedAt,
	}
	if len(m.Outputs) > 0 {
		ordered.Outputs = make([]manifestOutput, 0, len(m.Outputs))
		for _, entry := range m.Outputs {
			ordered.Outputs = append(ordered.Outputs, entry)
		}
		sort.Slice(ordered.Outputs, func(i, j int) bool {
			return ordered.Outputs[i].Path < ordered.Outputs[j].Path
		})
	}
	return json.MarshalIndent(ordered, "", "  ")
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
