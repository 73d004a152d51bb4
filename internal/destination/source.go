package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrCatalogUnavailable is wrapped by live sources when the catalog cannot be read.
var ErrCatalogUnavailable = errors.New("destination catalog unavailable")

// Source provides the raw destination records.
type Source interface {
	Destinations(ctx context.Context) ([]Destination, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]Destination, error)

// Destinations calls f.
func (f SourceFunc) Destinations(ctx context.Context) ([]Destination, error) {
	return f(ctx)
}

// StaticSource serves a fixed, in-memory record set.
type StaticSource struct {
	records []Destination
}

// NewStaticSource returns a source over the built-in dataset.
func NewStaticSource() *StaticSource {
	return &StaticSource{records: StaticRecords()}
}

// NewStaticSourceWith returns a source over caller-supplied records.
func NewStaticSourceWith(records []Destination) *StaticSource {
	cp := make([]Destination, len(records))
	for i, r := range records {
		cp[i] = r.clone()
	}
	return &StaticSource{records: cp}
}

// Destinations returns a copy of the configured records. It never fails.
func (s *StaticSource) Destinations(_ context.Context) ([]Destination, error) {
	out := make([]Destination, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out, nil
}

// LoadCatalog reads src once and builds a Catalog from the result.
func LoadCatalog(ctx context.Context, src Source, log *slog.Logger) (*Catalog, error) {
	records, err := src.Destinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading destinations: %w", err)
	}
	return NewCatalog(records, log), nil
}
