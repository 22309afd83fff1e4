package console

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/services"
	"github.com/unicsmcr/hs_members/utils"
	"go.uber.org/zap"
)

type session struct {
	orchestrator *Orchestrator
	lastSeen     time.Time
}

// Sessions keeps one Orchestrator per console session.
// Sessions not used for longer than the configured TTL are discarded.
type Sessions struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	members      services.MemberService
	timeProvider utils.TimeProvider

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessions creates an empty session registry
func NewSessions(logger *zap.Logger, cfg *config.AppConfig, members services.MemberService, timeProvider utils.TimeProvider) *Sessions {
	return &Sessions{
		logger:       logger,
		cfg:          cfg,
		members:      members,
		timeProvider: timeProvider,
		sessions:     map[string]*session{},
	}
}

// Get returns the orchestrator of the session with the given id. When the id is unknown,
// malformed or expired a new session is started and its id is returned instead.
func (s *Sessions) Get(id string) (sessionID string, orchestrator *Orchestrator, created bool) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired(now)

	if _, err := uuid.Parse(id); err == nil {
		if existing, ok := s.sessions[id]; ok {
			existing.lastSeen = now
			return id, existing.orchestrator, false
		}
	}

	sessionID = uuid.New().String()
	orchestrator = NewOrchestrator(s.logger.With(zap.String("session", sessionID)), s.cfg, s.members)
	s.sessions[sessionID] = &session{
		orchestrator: orchestrator,
		lastSeen:     now,
	}
	s.logger.Debug("started console session", zap.String("session", sessionID))

	return sessionID, orchestrator, true
}

// Len returns the number of live sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) evictExpired(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.cfg.Session.TTL {
			delete(s.sessions, id)
			s.logger.Debug("console session expired", zap.String("session", id))
		}
	}
}
