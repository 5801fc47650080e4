package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/storage/memory"
	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driving"
)

// stubPicker returns a fixed pick result.
type stubPicker struct {
	result driven.PickResult
	err    error
}

func (p *stubPicker) Pick(context.Context) (driven.PickResult, error) {
	return p.result, p.err
}

func newMirrorFixture(t *testing.T, picker driven.FilePicker, store *memory.MirrorStore) (*CRMService, *MirrorService) {
	t.Helper()
	engine := newTestEngine(t, memory.NewStateStore())
	svc := NewMirrorService(engine, picker, func(string) (driven.MirrorStore, error) {
		return store, nil
	}, nil)
	svc.limit = rate.Inf
	t.Cleanup(func() { _ = svc.Close() })
	return engine, svc
}

func TestMirrorService_StatusUnattached(t *testing.T) {
	_, svc := newMirrorFixture(t, &stubPicker{}, memory.NewMirrorStore("crm.json", nil))

	status := svc.Status()
	assert.False(t, status.Attached)
	assert.False(t, status.Synced)
	assert.Empty(t, status.FileName)
}

func TestMirrorService_ConnectAborted(t *testing.T) {
	picker := &stubPicker{err: domain.ErrAborted}
	engine, svc := newMirrorFixture(t, picker, memory.NewMirrorStore("crm.json", nil))

	err := svc.Connect(context.Background())
	assert.ErrorIs(t, err, domain.ErrAborted)

	// Nothing changed.
	assert.False(t, svc.Status().Attached)
	assert.Len(t, engine.State().Leads, 3)
}

func TestMirrorService_ConnectNewFileSeedsFromCurrentState(t *testing.T) {
	store := memory.NewMirrorStore("crm.json", nil)
	picker := &stubPicker{result: driven.PickResult{Path: "crm.json", Existing: false}}
	engine, svc := newMirrorFixture(t, picker, store)

	require.NoError(t, svc.Connect(context.Background()))

	status := svc.Status()
	assert.True(t, status.Attached)
	assert.True(t, status.Synced)
	assert.Equal(t, "crm.json", status.FileName)

	// Primed with the in-memory state.
	mirrored := store.State()
	require.NotNil(t, mirrored)
	assert.Len(t, mirrored.Leads, 3)

	// Connecting announces itself.
	assert.Equal(t, "Local Sync Active", engine.State().Notifications[0].Title)
}

func TestMirrorService_ConnectExistingFileTakesOver(t *testing.T) {
	fileState := &domain.State{Leads: []domain.Lead{
		{ID: "f1"}, {ID: "f2"}, {ID: "f3"}, {ID: "f4"}, {ID: "f5"},
	}}
	store := memory.NewMirrorStore("crm.json", fileState)
	picker := &stubPicker{result: driven.PickResult{Path: "crm.json", Existing: true}}
	engine, svc := newMirrorFixture(t, picker, store)

	require.NoError(t, svc.Connect(context.Background()))

	// The file's five leads replace the three seeds wholesale.
	st := engine.State()
	assert.Len(t, st.Leads, 5)
	assert.Nil(t, st.FindLead("1"))
	assert.True(t, svc.Status().Synced)
}

func TestMirrorService_SwitchingFilesKeepsNewStateOutOfOldFile(t *testing.T) {
	engine := newTestEngine(t, memory.NewStateStore())
	oldStore := memory.NewMirrorStore("old.json", nil)
	newStore := memory.NewMirrorStore("new.json", &domain.State{Leads: []domain.Lead{
		{ID: "f1", Name: "From File"},
	}})
	stores := map[string]*memory.MirrorStore{"old.json": oldStore, "new.json": newStore}

	picker := &stubPicker{result: driven.PickResult{Path: "old.json", Existing: false}}
	svc := NewMirrorService(engine, picker, func(path string) (driven.MirrorStore, error) {
		return stores[path], nil
	}, nil)
	svc.limit = rate.Inf
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, svc.Connect(context.Background()))

	// Switch to an existing file; its content takes over.
	picker.result = driven.PickResult{Path: "new.json", Existing: true}
	require.NoError(t, svc.Connect(context.Background()))

	require.Len(t, engine.State().Leads, 1)
	assert.Equal(t, "new.json", svc.Status().FileName)

	// The old file still holds the three seeds it was detached with.
	// The adopted state only ever lands in the new file.
	oldState := oldStore.State()
	require.NotNil(t, oldState)
	assert.Len(t, oldState.Leads, 3)
	assert.Nil(t, oldState.FindLead("f1"))
}

func TestMirrorService_MutationsTrailIntoMirror(t *testing.T) {
	store := memory.NewMirrorStore("crm.json", nil)
	picker := &stubPicker{result: driven.PickResult{Path: "crm.json", Existing: false}}
	engine, svc := newMirrorFixture(t, picker, store)

	require.NoError(t, svc.Connect(context.Background()))

	_, err := engine.AddLead(context.Background(), driving.NewLead{Name: "Trailed"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		st := store.State()
		return st != nil && len(st.Leads) == 4 && st.Leads[0].Name == "Trailed"
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, svc.Status().Synced)
}

func TestMirrorService_WriteFailureFlipsSyncedOnly(t *testing.T) {
	store := memory.NewMirrorStore("crm.json", nil)
	picker := &stubPicker{result: driven.PickResult{Path: "crm.json", Existing: false}}
	engine, svc := newMirrorFixture(t, picker, store)

	require.NoError(t, svc.Connect(context.Background()))
	store.FailWrites(memory.ErrWriteFailed)

	lead, err := engine.AddLead(context.Background(), driving.NewLead{Name: "Kept"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return !svc.Status().Synced
	}, 2*time.Second, 10*time.Millisecond)

	// The mutation survived and the mirror stays attached.
	assert.NotNil(t, engine.State().FindLead(lead.ID))
	assert.True(t, svc.Status().Attached)
}

func TestMirrorService_RecoversAfterWriteFailure(t *testing.T) {
	store := memory.NewMirrorStore("crm.json", nil)
	picker := &stubPicker{result: driven.PickResult{Path: "crm.json", Existing: false}}
	engine, svc := newMirrorFixture(t, picker, store)

	require.NoError(t, svc.Connect(context.Background()))
	store.FailWrites(memory.ErrWriteFailed)

	_, err := engine.AddLead(context.Background(), driving.NewLead{Name: "First"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return !svc.Status().Synced
	}, 2*time.Second, 10*time.Millisecond)

	store.FailWrites(nil)
	_, err = engine.AddLead(context.Background(), driving.NewLead{Name: "Second"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return svc.Status().Synced
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Second", store.State().Leads[0].Name)
}

func TestMirrorService_Disconnect(t *testing.T) {
	store := memory.NewMirrorStore("crm.json", nil)
	picker := &stubPicker{result: driven.PickResult{Path: "crm.json", Existing: false}}
	engine, svc := newMirrorFixture(t, picker, store)

	require.NoError(t, svc.Connect(context.Background()))
	require.NoError(t, svc.Disconnect())

	assert.False(t, svc.Status().Attached)

	// Mutations keep working without the mirror.
	_, err := engine.AddLead(context.Background(), driving.NewLead{Name: "After"})
	require.NoError(t, err)
	assert.Len(t, engine.State().Leads, 4)
}

func TestMirrorService_AttachReusesExistingContent(t *testing.T) {
	fileState := &domain.State{Leads: []domain.Lead{{ID: "remembered"}}}
	store := memory.NewMirrorStore("crm.json", fileState)
	engine, svc := newMirrorFixture(t, &stubPicker{}, store)

	require.NoError(t, svc.Attach(context.Background(), store))

	assert.Len(t, engine.State().Leads, 1)
	assert.True(t, svc.Status().Attached)
	assert.True(t, svc.Status().Synced)
}
