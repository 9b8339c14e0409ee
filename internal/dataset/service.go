package dataset

import (
	"sync"

	"github.com/nmspartans/dugout/internal/config"
)

// Service owns the process-wide dataset cache. The dataset is built once on
// first use and is read-only afterwards, so concurrent readers need no
// coordination; Reload replaces it wholesale.
type Service struct {
	sources []config.SeasonSource

	mu    sync.Mutex
	ds    *Dataset
	diags []Diagnostic
}

// NewService returns a Service over the configured season sources. Nothing is
// loaded until the first Dataset or Reload call.
func NewService(sources []config.SeasonSource) *Service {
	return &Service{sources: sources}
}

// Dataset returns the cached dataset, building it on first call.
func (s *Service) Dataset() *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		s.ds, s.diags = Build(s.sources)
	}
	return s.ds
}

// Diagnostics returns the load diagnostics from the most recent build.
func (s *Service) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diags
}

// Reload discards the cache and rebuilds the dataset from the season sources.
func (s *Service) Reload() (*Dataset, []Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds, s.diags = Build(s.sources)
	return s.ds, s.diags
}
