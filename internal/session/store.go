package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"foodieframe_client/internal/model"
	"foodieframe_client/internal/util"
	"foodieframe_client/pkg/logger"

	"go.uber.org/zap"
)

// Store persists at most one login session to a single file, the durable
// equivalent of the browser's localStorage "user" entry. Reads are served
// from memory after the first load so Current stays cheap for callers
// outside any request path.
type Store struct {
	path string

	mu      sync.Mutex
	current *model.Session
	loaded  bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists the session, replacing any previous one. The write goes
// through a temp file and rename so a crash never leaves a half-written
// session behind.
func (s *Store) Save(sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "session-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return err
	}

	s.current = &sess
	s.loaded = true
	return nil
}

// Current returns the persisted session, or nil when logged out. Malformed
// session data and expired tokens are both treated as "no session" and the
// file is cleared, matching how the original client recovered from a bad
// localStorage entry.
func (s *Store) Current() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.current
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.current = nil
		return nil
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		if err == nil {
			err = util.ErrSessionCorrupt
		}
		logger.Log.Warn("clearing unreadable session file",
			zap.String("path", s.path),
			zap.Error(err))
		os.Remove(s.path)
		s.current = nil
		return nil
	}

	if util.TokenExpired(sess.Token) {
		logger.Log.Info("stored session expired, logging out")
		os.Remove(s.path)
		s.current = nil
		return nil
	}

	s.current = &sess
	return s.current
}

// Token returns the bearer token of the current session, or "" when logged
// out. Suitable as the API client's token source.
func (s *Store) Token() string {
	if sess := s.Current(); sess != nil {
		return sess.Token
	}
	return ""
}

// Clear removes the persisted session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.loaded = true
	os.Remove(s.path)
}
