package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/zaqqye/restroom_monitor/internal/models"
	"github.com/zaqqye/restroom_monitor/internal/utils"
)

// MemoryStore keeps rooms in memory and, when a path is set, rewrites a JSON
// snapshot (id -> room) after every mutation so data survives restarts.
// Rooms are listed in insertion order, which the snapshot keeps as key order.
type MemoryStore struct {
	mu     sync.RWMutex
	rooms  map[string]models.Room
	order  []string
	path   string
	logger *zap.Logger
}

// NewMemoryStore loads the snapshot at path if it exists. An empty path keeps
// everything in memory only.
func NewMemoryStore(path string, logger *zap.Logger) (*MemoryStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MemoryStore{rooms: map[string]models.Room{}, path: path, logger: logger}
	entries, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		r := e.room
		if r.ID == "" {
			r.ID = e.key
		}
		if _, dup := s.rooms[r.ID]; !dup {
			s.order = append(s.order, r.ID)
		}
		s.rooms[r.ID] = r
	}
	logger.Info("memory store loaded", zap.Int("rooms", len(s.rooms)), zap.String("path", path))
	return s, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rooms[id].Clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	return r.Clone(), nil
}

func (s *MemoryStore) Create(_ context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room.ID == "" {
		room.ID = utils.NewRoomID()
		for _, taken := s.rooms[room.ID]; taken; _, taken = s.rooms[room.ID] {
			room.ID = utils.NewRoomID()
		}
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = models.Now()
	}
	if _, exists := s.rooms[room.ID]; !exists {
		s.order = append(s.order, room.ID)
	}
	s.rooms[room.ID] = room.Clone()
	s.persistLocked()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id string, patch RoomPatch) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	patch.apply(&r)
	s.rooms[id] = r
	s.persistLocked()
	return r.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	delete(s.rooms, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.persistLocked()
	return r, nil
}

func (s *MemoryStore) SetSupplyStatus(_ context.Context, id, key string, status models.SupplyStatus) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	sup, ok := r.Supplies[key]
	if !ok {
		return models.Room{}, ErrSupplyNotFound
	}
	r = r.Clone()
	sup.Status = status
	r.Supplies[key] = sup
	s.rooms[id] = r
	s.persistLocked()
	return r.Clone(), nil
}

// persistLocked writes the snapshot; failures are logged and the in-memory
// state stays authoritative.
func (s *MemoryStore) persistLocked() {
	if s.path == "" {
		return
	}
	if err := writeSnapshot(s.path, s.order, s.rooms); err != nil {
		s.logger.Error("memory store: snapshot write failed", zap.String("path", s.path), zap.Error(err))
	}
}

type snapshotEntry struct {
	key  string
	room models.Room
}

// readSnapshot decodes the id -> room object token by token so the file's key
// order is kept.
func readSnapshot(path string) ([]snapshotEntry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return nil, err
	} else if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("memory store: snapshot %s is not a JSON object", path)
	}
	var entries []snapshotEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var room models.Room
		if err := dec.Decode(&room); err != nil {
			return nil, fmt.Errorf("memory store: room %q: %w", key, err)
		}
		entries = append(entries, snapshotEntry{key: key, room: room})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

// writeSnapshot writes rooms as one JSON object with keys in order.
func writeSnapshot(path string, order []string, rooms map[string]models.Room) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, id := range order {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(id)
		if err != nil {
			return err
		}
		room, err := json.MarshalIndent(rooms[id], "  ", "  ")
		if err != nil {
			return err
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(room)
	}
	buf.WriteString("\n}\n")
	temp := path + ".tmp"
	if err := os.WriteFile(temp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(temp, path)
}
