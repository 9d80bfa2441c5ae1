package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type item struct {
	key  string
	name string
}

// mockAdapter is a testify mock of Adapter[item]
type mockAdapter struct {
	mock.Mock
}

func (m *mockAdapter) Key(it item) string         { return it.key }
func (m *mockAdapter) DisplayName(it item) string { return it.name }

func (m *mockAdapter) Lookup(ctx context.Context, it item) Lookup {
	args := m.Called(ctx, it)
	return args.Get(0).(Lookup)
}

func (m *mockAdapter) Create(ctx context.Context, it item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *mockAdapter) Update(ctx context.Context, recordID string, it item) error {
	args := m.Called(ctx, recordID, it)
	return args.Error(0)
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		lookup   Lookup
		opts     Options
		wantType ActionType
		wantID   string
	}{
		{"Absent creates", NotFound(), Options{EnableUpdate: true}, ActionCreate, ""},
		{"Absent creates without updates", NotFound(), Options{}, ActionCreate, ""},
		{"Exists updates", Found("page-1", "title"), Options{EnableUpdate: true}, ActionUpdate, "page-1"},
		{"Exists skips when disabled", Found("page-1", "title"), Options{}, ActionSkip, "page-1"},
		{"Failed lookup blocks", Failed(errors.New("boom")), Options{EnableUpdate: true}, ActionBlocked, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := Decide("10", "Half-Life", tt.lookup, tt.opts)
			assert.Equal(t, tt.wantType, action.Type)
			assert.Equal(t, tt.wantID, action.RecordID)
			assert.Equal(t, "10", action.Key)
			assert.Equal(t, "Half-Life", action.Name)
			assert.NotEmpty(t, action.Reason)
		})
	}
}

func TestDecide_BlockedReasonCarriesError(t *testing.T) {
	action := Decide("10", "Half-Life", Failed(errors.New("retry budget exhausted")), Options{})
	assert.Contains(t, action.Reason, "retry budget exhausted")
}

func TestReconcileOne(t *testing.T) {
	ctx := context.Background()
	hl := item{key: "10", name: "Half-Life"}

	t.Run("Create", func(t *testing.T) {
		adapter := new(mockAdapter)
		adapter.On("Lookup", mock.Anything, hl).Return(NotFound())
		adapter.On("Create", mock.Anything, hl).Return(nil)

		outcome := ReconcileOne[item](ctx, adapter, hl, Options{EnableUpdate: true})
		assert.True(t, outcome.Applied)
		assert.Equal(t, ActionCreate, outcome.Action.Type)
		adapter.AssertExpectations(t)
	})

	t.Run("Update", func(t *testing.T) {
		adapter := new(mockAdapter)
		adapter.On("Lookup", mock.Anything, hl).Return(Found("page-1", "appid"))
		adapter.On("Update", mock.Anything, "page-1", hl).Return(nil)

		outcome := ReconcileOne[item](ctx, adapter, hl, Options{EnableUpdate: true})
		assert.True(t, outcome.Applied)
		assert.Equal(t, ActionUpdate, outcome.Action.Type)
		adapter.AssertExpectations(t)
	})

	t.Run("Skip", func(t *testing.T) {
		adapter := new(mockAdapter)
		adapter.On("Lookup", mock.Anything, hl).Return(Found("page-1", "title"))

		outcome := ReconcileOne[item](ctx, adapter, hl, Options{EnableUpdate: false})
		assert.False(t, outcome.Applied)
		assert.Equal(t, ActionSkip, outcome.Action.Type)
		adapter.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BlockedNeverCreates", func(t *testing.T) {
		adapter := new(mockAdapter)
		adapter.On("Lookup", mock.Anything, hl).Return(Failed(errors.New("timeout")))

		outcome := ReconcileOne[item](ctx, adapter, hl, Options{EnableUpdate: true})
		assert.False(t, outcome.Applied)
		assert.Equal(t, ActionBlocked, outcome.Action.Type)
		adapter.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DryRun", func(t *testing.T) {
		adapter := new(mockAdapter)
		adapter.On("Lookup", mock.Anything, hl).Return(NotFound())

		outcome := ReconcileOne[item](ctx, adapter, hl, Options{EnableUpdate: true, DryRun: true})
		assert.False(t, outcome.Applied)
		assert.Equal(t, ActionCreate, outcome.Action.Type)
		adapter.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("CreateFails", func(t *testing.T) {
		adapter := new(mockAdapter)
		adapter.On("Lookup", mock.Anything, hl).Return(NotFound())
		adapter.On("Create", mock.Anything, hl).Return(errors.New("validation_error"))

		outcome := ReconcileOne[item](ctx, adapter, hl, Options{})
		assert.False(t, outcome.Applied)
		assert.Equal(t, "validation_error", outcome.Error)
	})
}

func TestSummary_Add(t *testing.T) {
	var s Summary
	s.Add(Outcome{Action: Action{Type: ActionCreate}, Applied: true})
	s.Add(Outcome{Action: Action{Type: ActionUpdate}, Applied: true})
	s.Add(Outcome{Action: Action{Type: ActionUpdate}, Applied: true})
	s.Add(Outcome{Action: Action{Type: ActionSkip}})
	s.Add(Outcome{Action: Action{Type: ActionBlocked}})
	s.Add(Outcome{Action: Action{Type: ActionCreate}, Error: "boom"})
	s.Add(Outcome{Action: Action{Type: ActionCreate}})
	s.Add(Outcome{Action: Action{Type: ActionFiltered}})

	assert.Equal(t, Summary{Total: 8, Created: 1, Updated: 2, Skipped: 1, Blocked: 1, Filtered: 1, Failed: 1, Planned: 1}, s)
}

func TestLookupState_String(t *testing.T) {
	assert.Equal(t, "found", LookupFound.String())
	assert.Equal(t, "not_found", LookupNotFound.String())
	assert.Equal(t, "error", LookupError.String())
}
