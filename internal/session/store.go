package session

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"backoffice/internal/domain"
)

// Store хранилище сессий: токен -> учётная запись. Записи только целиком
// заменяются или удаляются, частичных мутаций нет.
type Store interface {
	Put(token string, p domain.Principal) error
	Get(token string) (domain.Principal, bool)
	Delete(token string) error
}

// MemoryStore in-memory реализация для тестов
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Principal
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Principal)}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Put(token string, p domain.Principal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = p
	return nil
}

func (m *MemoryStore) Get(token string) (domain.Principal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.sessions[token]
	return p, ok
}

func (m *MemoryStore) Delete(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// FileStore хранит таблицу сессий одним JSON-документом на диске, чтобы
// активные сессии переживали перезапуск. Файл читается один раз при открытии;
// срок жизни записей не проверяется.
type FileStore struct {
	mu       sync.RWMutex
	file     *os.File
	sessions map[string]domain.Principal
}

func OpenFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	fs := &FileStore{file: f, sessions: make(map[string]domain.Principal)}
	if err := fs.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return fs, nil
}

var _ Store = (*FileStore)(nil)

func (fs *FileStore) Close() error { return fs.file.Close() }

func (fs *FileStore) load() error {
	info, err := fs.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fs.flushLocked()
	}
	dec := json.NewDecoder(fs.file)
	return dec.Decode(&fs.sessions)
}

func (fs *FileStore) flushLocked() error {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(fs.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fs.sessions); err != nil {
		return err
	}
	// truncate in case new content is shorter
	pos, err := fs.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if err := fs.file.Truncate(pos); err != nil {
		return err
	}
	return fs.file.Sync()
}

func (fs *FileStore) Put(token string, p domain.Principal) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.sessions[token] = p
	return fs.flushLocked()
}

func (fs *FileStore) Get(token string) (domain.Principal, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	p, ok := fs.sessions[token]
	return p, ok
}

func (fs *FileStore) Delete(token string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.sessions[token]; !ok {
		return nil
	}
	delete(fs.sessions, token)
	return fs.flushLocked()
}
