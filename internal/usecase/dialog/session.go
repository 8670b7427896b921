package dialog

import (
	"sync"
)

type State string

const (
	StateIdle            State = "idle"
	StateChooseService   State = "choose_service"
	StateChooseDate      State = "choose_date"
	StateChooseTime      State = "choose_time"
	StateEnterName       State = "enter_name"
	StateEnterPhone      State = "enter_phone"
	StateAwaitingPayment State = "awaiting_payment"
)

// Draft collects the answers given so far.
type Draft struct {
	ServiceID     string
	Date          string
	Time          string
	Name          string
	Phone         string
	ReservationID string
}

type Session struct {
	mu      sync.Mutex
	userID  string
	State   State
	history []State
	Draft   Draft
}

func (s *Session) Go(to State) {
	s.history = append(s.history, s.State)
	s.State = to
}

// Back returns to the previous state, or to ChooseService when there is none.
func (s *Session) Back() {
	if n := len(s.history); n > 0 {
		s.State = s.history[n-1]
		s.history = s.history[:n-1]
		return
	}
	s.State = StateChooseService
}

// Rewind pops history until the session is at target.
func (s *Session) Rewind(target State) {
	for s.State != target && len(s.history) > 0 {
		s.Back()
	}
	s.State = target
}

func (s *Session) Reset() {
	s.State = StateIdle
	s.history = s.history[:0]
	s.Draft = Draft{}
}

// Store keeps sessions in memory only; a restart forgets every dialog.
type Store struct {
	mu sync.RWMutex
	m  map[string]*Session
}

func NewStore() *Store {
	return &Store{m: make(map[string]*Session)}
}

func (s *Store) Get(userID string) *Session {
	s.mu.RLock()
	sess, ok := s.m[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.m[userID]; ok {
		return sess
	}
	sess = &Session{userID: userID, State: StateIdle}
	s.m[userID] = sess
	return sess
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
