package services

import (
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/store"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/errors"
)

// fakeStore is an in-memory SessionStore with injectable failures.
type fakeStore struct {
	records   map[string]*store.SessionRecord
	loadErr   error
	saveErr   error
	saveCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*store.SessionRecord)}
}

func (f *fakeStore) Load(userID string) (*store.SessionRecord, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.records[userID], nil
}

func (f *fakeStore) Save(userID string, record *store.SessionRecord) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *record
	f.records[userID] = &copied
	return nil
}

func (f *fakeStore) Delete(userID string) error {
	delete(f.records, userID)
	return nil
}

func TestSessionManager_FreshSession(t *testing.T) {
	manager := NewSessionManager(newFakeStore())

	session, err := manager.Get("new-user")
	require.NoError(t, err)

	assert.Equal(t, "new-user", session.UserID)
	assert.Equal(t, "Green Enthusiast", session.Profile.Username)
	assert.Equal(t, 1, session.Profile.Level)
	assert.Empty(t, session.Plants)
	assert.Equal(t, models.ModeExplorer, session.Mode())
	assert.False(t, session.Stale)
}

func TestSessionManager_HydratedSessionIsNotReloaded(t *testing.T) {
	st := newFakeStore()
	manager := NewSessionManager(st)

	session, err := manager.Get("u1")
	require.NoError(t, err)
	_, err = session.CreatePlant("Neem", time.Time{})
	require.NoError(t, err)

	// The durable store still has nothing; a second Get must return the
	// mutated in-memory session, not a fresh hydration.
	again, err := manager.Get("u1")
	require.NoError(t, err)
	assert.Same(t, session, again)
	assert.Equal(t, models.ModeGuardian, again.Mode())
}

func TestSessionManager_SaveAndRehydrate(t *testing.T) {
	st := newFakeStore()
	manager := NewSessionManager(st)

	session, err := manager.Get("u1")
	require.NoError(t, err)
	_, err = session.CreatePlant("Mango", time.Time{})
	require.NoError(t, err)
	require.NoError(t, manager.Save(session))

	manager.Evict("u1")

	rehydrated, err := manager.Get("u1")
	require.NoError(t, err)
	assert.NotSame(t, session, rehydrated)
	require.Len(t, rehydrated.Plants, 1)
	assert.Equal(t, "Mango", rehydrated.Plants[0].Name)
	assert.Equal(t, 1, rehydrated.Profile.TotalPlantsPlanted)
}

func TestSessionManager_SaveRetriesThenDegrades(t *testing.T) {
	st := newFakeStore()
	st.saveErr = stderrors.New("disk on fire")
	manager := NewSessionManager(st)

	session, err := manager.Get("u1")
	require.NoError(t, err)
	_, err = session.CreatePlant("Neem", time.Time{})
	require.NoError(t, err)

	err = manager.Save(session)
	assert.True(t, errors.IsKind(err, errors.KindPersistence))
	assert.Equal(t, saveRetryLimit, st.saveCalls)

	// The in-memory mutation survives the failed write.
	assert.Len(t, session.Plants, 1)
	again, getErr := manager.Get("u1")
	require.NoError(t, getErr)
	assert.Same(t, session, again)
}

func TestSessionManager_LoadFailureWithoutSnapshot(t *testing.T) {
	st := newFakeStore()
	st.loadErr = stderrors.New("connection refused")
	manager := NewSessionManager(st)

	_, err := manager.Get("u1")
	assert.True(t, errors.IsKind(err, errors.KindPersistence))
}

func TestSessionManager_Reset(t *testing.T) {
	st := newFakeStore()
	manager := NewSessionManager(st)

	session, err := manager.Get("u1")
	require.NoError(t, err)
	_, err = session.CreatePlant("Neem", time.Time{})
	require.NoError(t, err)
	require.NoError(t, manager.Save(session))

	require.NoError(t, manager.Reset("u1"))

	fresh, err := manager.Get("u1")
	require.NoError(t, err)
	assert.Empty(t, fresh.Plants)
	assert.Equal(t, models.ModeExplorer, fresh.Mode())
}

func TestSession_Notifications(t *testing.T) {
	s := newTestSession()
	s.Notify("hello")
	s.Notify("world")

	assert.Equal(t, []string{"hello", "world"}, s.TakeNotifications())
	assert.Empty(t, s.TakeNotifications())
}

func TestSession_ConcurrentRequestsSerialized(t *testing.T) {
	manager := NewSessionManager(newFakeStore())
	s, err := manager.Get("u1")
	require.NoError(t, err)

	// Requests for the same user share one Session pointer, so each
	// simulated request holds the session lock across its unit of work,
	// the way the HTTP handlers do.
	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Lock()
			defer s.Unlock()
			_, err := s.CreatePlant("Neem", time.Time{})
			assert.NoError(t, err)
			s.CheckAndAwardBadges()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Plants, workers)
	assert.Equal(t, workers, s.Profile.TotalPlantsPlanted)
	for _, badge := range s.Profile.Badges {
		if badge.Name == "First Sprout" {
			return
		}
	}
	t.Fatal("First Sprout badge missing after concurrent creates")
}
