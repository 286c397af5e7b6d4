// Package jsonfile implements the repository over Fernet-encrypted JSON
// documents.
//
// Three documents live under the store directory: users.json.enc,
// tickets.json.enc and attendance.json.enc. Every operation re-reads the
// document it touches under a process-wide lock and writes changes back
// atomically (temp file + rename), so a crash never leaves a half-written
// file behind. A missing document reads as empty; an undecryptable one is a
// startup error, not something to silently reset.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/security"

	"go.uber.org/zap"
)

const (
	usersFile      = "users.json.enc"
	ticketsFile    = "tickets.json.enc"
	attendanceFile = "attendance.json.enc"

	dirMode  = 0o700
	fileMode = 0o600
)

// Store wraps the document directory and its encryption key.
type Store struct {
	baseCtx   context.Context
	log       *zap.SugaredLogger
	cfg       config.StoreConfig
	fernetKey string

	mu     sync.RWMutex
	cipher *security.Cipher
}

// New creates a file store instance. The cipher is built in OnStart so a bad
// key surfaces as a startup failure.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		baseCtx:   ctx,
		log:       log.Named("repo.jsonfile"),
		cfg:       cfg.Store,
		fernetKey: cfg.Security.FernetKey,
	}
}

// OnStart prepares the data directory and verifies that every existing
// document decrypts with the configured key.
func (s *Store) OnStart(_ context.Context) error {
	if err := os.MkdirAll(s.cfg.Dir, dirMode); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	cipher, err := security.NewCipher(s.fernetKey)
	if err != nil {
		return err
	}
	s.cipher = cipher

	var (
		users      usersDoc
		tickets    ticketsDoc
		attendance attendanceDoc
	)
	if err := s.readDoc(usersFile, &users); err != nil {
		return err
	}
	if err := s.readDoc(ticketsFile, &tickets); err != nil {
		return err
	}
	if err := s.readDoc(attendanceFile, &attendance); err != nil {
		return err
	}

	s.log.Infow("file store ready", "dir", s.cfg.Dir,
		"users", len(users.Users), "tickets", len(tickets.Tickets), "records", len(attendance.Records))
	return nil
}

// OnStop is a no-op; every write is already flushed and renamed in place.
func (s *Store) OnStop(_ context.Context) error {
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.cfg.Dir, name)
}

// readDoc loads and decrypts one document. A missing file leaves out at its
// zero value.
func (s *Store) readDoc(name string, out any) error {
	raw, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	plain, err := s.cipher.Decrypt(raw)
	if err != nil {
		return fmt.Errorf("decrypt %s: %w", name, err)
	}
	if err := json.Unmarshal(plain, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeDoc encrypts and atomically replaces one document.
func (s *Store) writeDoc(name string, in any) error {
	plain, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	token, err := s.cipher.Encrypt(plain)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.cfg.Dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(token); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
