package services

import (
	"sync"
	"time"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/store"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/errors"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/logger"
)

// Session is the in-memory state for one authenticated identity: the
// profile plus every tracked plant (watering logs embedded). All lifecycle
// and gamification operations mutate a Session; the durable store only ever
// sees whole-session writes. In-memory state is authoritative: a failed
// durable write never rolls a session back.
type Session struct {
	// mu serializes requests working on this session. The manager hands
	// every in-flight request for a user the same pointer, so handlers
	// hold the lock from resolution through response assembly.
	mu sync.Mutex

	UserID  string
	Profile *models.UserProfile
	Plants  []models.TrackedPlant

	// Stale marks a session hydrated from the snapshot cache after the
	// durable store failed to answer; reads still succeed, with a warning.
	Stale bool

	notifications []string
}

// Lock takes the per-session mutex. Lifecycle and gamification methods do
// not lock internally (they nest freely into one another), so the caller
// owning the request holds it around the whole unit of work.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

// Mode derives the session classification from plant ownership. Computed at
// every observation point; never stored.
func (s *Session) Mode() models.SessionMode {
	return models.DeriveMode(len(s.Plants))
}

// FindPlant locates a tracked plant by id.
func (s *Session) FindPlant(plantID string) (*models.TrackedPlant, error) {
	for i := range s.Plants {
		if s.Plants[i].ID == plantID {
			return &s.Plants[i], nil
		}
	}
	return nil, errors.NotFound("plant not found: " + plantID)
}

// Notify queues a user-facing event message (level ups, badges, milestones).
func (s *Session) Notify(message string) {
	s.notifications = append(s.notifications, message)
}

// TakeNotifications drains queued event messages.
func (s *Session) TakeNotifications() []string {
	out := s.notifications
	s.notifications = nil
	return out
}

func (s *Session) record() *store.SessionRecord {
	return &store.SessionRecord{Profile: *s.Profile, Plants: s.Plants}
}

// saveRetryLimit bounds retries of a failed durable write. After
// exhaustion the failure is surfaced as a warning, not an error.
const saveRetryLimit = 3

// SessionManager reconciles in-memory sessions with the durable store.
// One logical session per user; concurrent writers to the same durable
// record follow last-writer-wins at full-session granularity.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    store.SessionStore
}

func NewSessionManager(st store.SessionStore) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		store:    st,
	}
}

// Get returns the hydrated session for a user, loading from the durable
// store on first access. A session that is already hydrated in memory is
// never overwritten by a redundant re-load; the local copy reflects the
// latest local mutations regardless of write completion.
func (m *SessionManager) Get(userID string) (*Session, error) {
	m.mu.RLock()
	if session, ok := m.sessions[userID]; ok {
		m.mu.RUnlock()
		return session, nil
	}
	m.mu.RUnlock()

	session, err := m.load(userID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Lost the race to another request: keep the existing hydration.
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = session
	return session, nil
}

func (m *SessionManager) load(userID string) (*Session, error) {
	record, err := m.store.Load(userID)
	if err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("Durable session read failed, trying snapshot cache")

		// Serve the last known-good snapshot, if recent, with a staleness
		// flag rather than failing the read outright.
		var cached store.SessionRecord
		if cacheErr := database.LoadSessionSnapshot(userID, &cached); cacheErr == nil {
			return &Session{
				UserID:  userID,
				Profile: &cached.Profile,
				Plants:  cached.Plants,
				Stale:   true,
			}, nil
		}
		return nil, errors.Persistence("session load failed: " + err.Error())
	}

	if record == nil {
		// No durable records: fresh Explorer-state session.
		return &Session{
			UserID: userID,
			Profile: &models.UserProfile{
				ID:       userID,
				Username: "Green Enthusiast",
				Level:    1,
				JoinDate: time.Now().Format(models.DateLayout),
			},
		}, nil
	}

	return &Session{
		UserID:  userID,
		Profile: &record.Profile,
		Plants:  record.Plants,
	}, nil
}

// Save writes the session to the durable store, retrying transient
// failures up to the fixed bound. Failure is non-fatal: the in-memory
// mutation stays visible and the caller receives a Persistence warning.
func (m *SessionManager) Save(session *Session) error {
	record := session.record()

	var err error
	for attempt := 1; attempt <= saveRetryLimit; attempt++ {
		if err = m.store.Save(session.UserID, record); err == nil {
			// Refresh the last-known-good snapshot for stale reads.
			if cacheErr := database.CacheSessionSnapshot(session.UserID, record); cacheErr != nil {
				logger.Debug().Err(cacheErr).Msg("Session snapshot cache update failed")
			}
			session.Stale = false
			return nil
		}
		logger.Warn().Err(err).
			Str("user_id", session.UserID).
			Int("attempt", attempt).
			Msg("Durable session write failed")
	}

	return errors.Persistence("session save failed after retries: " + err.Error())
}

// Evict drops the in-memory session, e.g. on logout. Durable records are
// untouched.
func (m *SessionManager) Evict(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Reset deletes the user's durable records and in-memory session.
func (m *SessionManager) Reset(userID string) error {
	m.Evict(userID)
	if err := database.InvalidateSessionSnapshot(userID); err != nil {
		logger.Debug().Err(err).Msg("Session snapshot invalidation failed")
	}
	if err := m.store.Delete(userID); err != nil {
		return errors.Persistence("session reset failed: " + err.Error())
	}
	return nil
}
