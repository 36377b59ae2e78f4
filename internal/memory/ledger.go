// Package memory implements the in-process per-user conversation ledger.
//
// The ledger is intentionally ephemeral: it lives for the process lifetime
// only. Durable storage and multi-instance consistency are out of scope.
package memory

import "sync"

// Roles for ledger entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Caps applied by the two write paths.
const (
	// ChatCap bounds history accumulated through /chat.
	ChatCap = 50
	// UpsertCap bounds history written through bulk /memory upserts.
	UpsertCap = 200
)

// Entry is one role-tagged message. Immutable once stored.
type Entry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store is a bounded, user-keyed conversation ledger. All operations are
// total: unknown users read as empty, any string is a valid key.
type Store struct {
	mu      sync.RWMutex
	ledgers map[string][]Entry

	// userMu serializes multi-step read-modify-write sequences (the chat
	// path) per user without serializing unrelated users behind each other.
	userMuMu sync.Mutex
	userMu   map[string]*sync.Mutex
}

// NewStore creates an empty ledger store.
func NewStore() *Store {
	return &Store{
		ledgers: make(map[string][]Entry),
		userMu:  make(map[string]*sync.Mutex),
	}
}

// Append concatenates entries onto user's ledger and retains only the last
// limit entries, discarding the oldest overflow. Returns the new length.
func (s *Store) Append(user string, entries []Entry, limit int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := append(s.ledgers[user], entries...)
	if limit > 0 && len(ledger) > limit {
		ledger = ledger[len(ledger)-limit:]
	}
	s.ledgers[user] = ledger
	return len(ledger)
}

// Read returns a copy of user's current ledger, empty for unseen users.
func (s *Store) Read(user string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.ledgers[user]))
	copy(out, s.ledgers[user])
	return out
}

// Len returns the current ledger length for user.
func (s *Store) Len(user string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ledgers[user])
}

// LockUser acquires the per-user mutex. Callers must pair it with UnlockUser.
// It guards compound sequences (read, generate, append) against concurrent
// chats for the same user; single Append/Read calls do not need it.
func (s *Store) LockUser(user string) {
	s.lockFor(user).Lock()
}

// UnlockUser releases the per-user mutex.
func (s *Store) UnlockUser(user string) {
	s.lockFor(user).Unlock()
}

func (s *Store) lockFor(user string) *sync.Mutex {
	s.userMuMu.Lock()
	defer s.userMuMu.Unlock()

	mu, ok := s.userMu[user]
	if !ok {
		mu = &sync.Mutex{}
		s.userMu[user] = mu
	}
	return mu
}
