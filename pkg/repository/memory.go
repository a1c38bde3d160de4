package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu          sync.RWMutex
	alertStates map[types.TableName]*model.AlertState
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		alertStates: make(map[types.TableName]*model.AlertState),
	}
}

// GetAlertState retrieves the alert state of a table
func (m *Memory) GetAlertState(ctx context.Context, table types.TableName) (*model.AlertState, error) {
	if table == "" {
		return nil, goerr.New("table name is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.alertStates[table]
	if !exists {
		return nil, goerr.Wrap(model.ErrAlertStateMissing, "no alert state for table", goerr.V("table", table))
	}

	// Return a copy to prevent external modification
	stateCopy := *state
	return &stateCopy, nil
}

// PutAlertState saves the alert state of a table
func (m *Memory) PutAlertState(ctx context.Context, state *model.AlertState) error {
	if state == nil {
		return goerr.New("alert state is nil")
	}
	if state.Table == "" {
		return goerr.New("table name is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stateCopy := *state
	m.alertStates[state.Table] = &stateCopy
	return nil
}

// ListAlertStates lists all alert states ordered by table name
func (m *Memory) ListAlertStates(ctx context.Context) ([]*model.AlertState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	states := make([]*model.AlertState, 0, len(m.alertStates))
	for _, state := range m.alertStates {
		stateCopy := *state
		states = append(states, &stateCopy)
	}

	sort.Slice(states, func(i, j int) bool {
		return states[i].Table < states[j].Table
	})

	return states, nil
}

// Close is a no-op for memory repository
func (m *Memory) Close() error {
	return nil
}
