package game

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// idleSessionTTL is how long a stopped countdown is remembered after its last change.
const idleSessionTTL = 30 * time.Minute

type session struct {
	cd      *Countdown
	gen     uint64
	stop    chan struct{}
	touched time.Time
}

// Sessions keeps one in-memory countdown per player, each driven by its own ticker.
// State is lost on restart. Reset forgets a player; stopped countdowns are pruned
// once idle for idleSessionTTL.
type Sessions struct {
	mu       sync.Mutex
	seconds  int
	interval time.Duration
	idleTTL  time.Duration
	now      func() time.Time
	log      *zap.Logger
	byUser   map[string]*session
	wg       sync.WaitGroup
	closed   bool
}

func NewSessions(seconds int, interval time.Duration, log *zap.Logger) *Sessions {
	if interval <= 0 {
		interval = time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sessions{
		seconds:  seconds,
		interval: interval,
		idleTTL:  idleSessionTTL,
		now:      time.Now,
		log:      log.With(zap.String("component", "countdown")),
		byUser:   make(map[string]*session),
	}
}

// Start (re)starts the player's countdown from the full duration.
func (s *Sessions) Start(userID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	s.haltLocked(sess)
	sess.touched = s.now()
	sess.cd.Start()
	if !s.closed && sess.cd.Snapshot().Running {
		sess.stop = make(chan struct{})
		s.wg.Add(1)
		go s.run(userID, sess, sess.gen, sess.stop)
	}
	return sess.cd.Snapshot()
}

func (s *Sessions) Pause(userID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	s.haltLocked(sess)
	sess.touched = s.now()
	sess.cd.Pause()
	return sess.cd.Snapshot()
}

// Reset stops the player's countdown and forgets it; the next Snapshot is a fresh idle one.
func (s *Sessions) Reset(userID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.byUser[userID]; ok {
		s.haltLocked(sess)
		delete(s.byUser, userID)
	}
	return NewCountdown(s.seconds).Snapshot()
}

// Len reports how many players currently have a remembered countdown.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byUser)
}

// Snapshot returns the player's countdown, or an idle full-length one if none exists.
func (s *Sessions) Snapshot(userID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.byUser[userID]; ok {
		return sess.cd.Snapshot()
	}
	return NewCountdown(s.seconds).Snapshot()
}

// Close stops every ticker and waits for the goroutines to exit.
func (s *Sessions) Close() {
	s.mu.Lock()
	s.closed = true
	for _, sess := range s.byUser {
		s.haltLocked(sess)
		sess.cd.Pause()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Sessions) sessionLocked(userID string) *session {
	sess, ok := s.byUser[userID]
	if !ok {
		s.pruneLocked()
		sess = &session{cd: NewCountdown(s.seconds)}
		s.byUser[userID] = sess
	}
	return sess
}

// pruneLocked drops stopped countdowns untouched for longer than idleTTL.
func (s *Sessions) pruneLocked() {
	cutoff := s.now().Add(-s.idleTTL)
	for id, sess := range s.byUser {
		if sess.stop == nil && sess.touched.Before(cutoff) {
			delete(s.byUser, id)
		}
	}
}

// haltLocked retires the running ticker goroutine, if any.
func (s *Sessions) haltLocked(sess *session) {
	sess.gen++
	if sess.stop != nil {
		close(sess.stop)
		sess.stop = nil
	}
}

func (s *Sessions) run(userID string, sess *session, gen uint64, stop <-chan struct{}) {
	defer s.wg.Done()
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.mu.Lock()
			if sess.gen != gen {
				s.mu.Unlock()
				return
			}
			running := sess.cd.Tick()
			if !running {
				sess.stop = nil
				sess.touched = s.now()
			}
			s.mu.Unlock()

			if !running {
				s.log.Info("countdown expired", zap.String("user_id", userID))
				return
			}
		}
	}
}
