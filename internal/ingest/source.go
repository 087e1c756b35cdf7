package ingest

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/internal/domain"
)

// Source is a connector that pulls raw events from an upstream feed.
// Push-style sources (the ingestion API) bypass this interface and call
// the gate directly.
type Source interface {
	ID() string
	Type() domain.SourceType
	FetchEvents(ctx context.Context, since time.Time) ([]domain.RawEvent, error)
}

// Registry holds the pull sources known to the poller.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds or replaces a source by ID.
func (r *Registry) Register(s Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[s.ID()] = s
}

// Get returns the source with the given ID.
func (r *Registry) Get(id string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[id]
	return s, ok
}

// All returns registered sources in stable ID order.
func (r *Registry) All() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Source, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// registryFile is the on-disk shape of the source registry.
type registryFile struct {
	Sources []registryEntry `yaml:"sources"`
}

type registryEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Endpoint string `yaml:"endpoint"`
}

func readRegistryFile(path string) ([]registryEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source registry %s: %w", path, err)
	}
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse source registry %s: %w", path, err)
	}
	return file.Sources, nil
}

// SyncRegistryFile reads the YAML source registry and upserts a
// DataSource row per entry. Existing rows keep their status and
// counters; only the descriptive fields are refreshed.
func SyncRegistryFile(ctx context.Context, client *ent.Client, path string) error {
	entries, err := readRegistryFile(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.ID == "" || !domain.ValidSourceType(domain.SourceType(entry.Type)) {
			return fmt.Errorf("source registry entry %q: missing id or unknown type %q", entry.ID, entry.Type)
		}

		existing, err := client.DataSource.Query().Where(datasource.IDEQ(entry.ID)).Only(ctx)
		if ent.IsNotFound(err) {
			_, err = client.DataSource.Create().
				SetID(entry.ID).
				SetName(entry.Name).
				SetSourceType(datasource.SourceType(entry.Type)).
				SetStatus(datasource.StatusACTIVE).
				SetEndpoint(entry.Endpoint).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create data source %s: %w", entry.ID, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("look up data source %s: %w", entry.ID, err)
		}

		_, err = existing.Update().
			SetName(entry.Name).
			SetSourceType(datasource.SourceType(entry.Type)).
			SetEndpoint(entry.Endpoint).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update data source %s: %w", entry.ID, err)
		}
	}
	return nil
}

// StaticSource serves a fixed batch of events, used by seeding and
// tests.
type StaticSource struct {
	SourceID   string
	SourceType domain.SourceType
	Events     []domain.RawEvent
}

func (s *StaticSource) ID() string              { return s.SourceID }
func (s *StaticSource) Type() domain.SourceType { return s.SourceType }

func (s *StaticSource) FetchEvents(_ context.Context, since time.Time) ([]domain.RawEvent, error) {
	var out []domain.RawEvent
	for _, ev := range s.Events {
		if ev.Timestamp.After(since) {
			out = append(out, ev)
		}
	}
	return out, nil
}
