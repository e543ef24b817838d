package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/Veraticus/txscan/pkg/corpus"
	"github.com/Veraticus/txscan/pkg/types"
)

// MockLoader is a thread-safe in-memory implementation of interfaces.Loader for testing
type MockLoader struct {
	mu       sync.Mutex
	contents map[string]string
	errs     map[string]error
	calls    []string
}

// NewMockLoader creates a loader serving the given identifier -> content pairs
func NewMockLoader(contents map[string]string) *MockLoader {
	m := &MockLoader{
		contents: make(map[string]string, len(contents)),
		errs:     make(map[string]error),
	}
	for k, v := range contents {
		m.contents[k] = v
	}
	return m
}

// Load implements the Loader interface
func (m *MockLoader) Load(ctx context.Context, identifier string) (types.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, identifier)

	if err := ctx.Err(); err != nil {
		return types.Document{}, err
	}
	if err, ok := m.errs[identifier]; ok {
		return types.Document{}, err
	}
	text, ok := m.contents[identifier]
	if !ok {
		return types.Document{}, fmt.Errorf("load %q: %w", identifier, corpus.ErrNotFound)
	}
	return types.Document{
		Identifier: identifier,
		Text:       text,
		Digest:     xxhash.Sum64String(text),
	}, nil
}

// Set adds or replaces the content served for identifier
func (m *MockLoader) Set(identifier, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents[identifier] = text
}

// SetError makes Load fail for identifier
func (m *MockLoader) SetError(identifier string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[identifier] = err
}

// GetCalls returns a copy of the identifiers requested so far
func (m *MockLoader) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// MockReporter is a thread-safe mock implementation of interfaces.Reporter for testing
type MockReporter struct {
	mu      sync.Mutex
	reports []types.Report
	err     error
}

// NewMockReporter creates a new mock reporter
func NewMockReporter() *MockReporter {
	return &MockReporter{}
}

// Report implements the Reporter interface
func (m *MockReporter) Report(report types.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, report)
	return nil
}

// SetError sets the error to return on Report calls
func (m *MockReporter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// GetReports returns a copy of the received reports
func (m *MockReporter) GetReports() []types.Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]types.Report, len(m.reports))
	copy(result, m.reports)
	return result
}
