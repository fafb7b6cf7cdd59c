package task

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"taskpad/internal/storage"
)

// TasksKey is the slot the serialized task collection lives under.
const TasksKey = "tasks"

// Store owns the authoritative task collection. All mutation goes through
// its methods; every successful mutation rewrites the persisted collection.
// Persistence failures are logged and swallowed, the in-memory state stays
// authoritative for the session.
type Store struct {
	kv     storage.KV
	logger *log.Logger
	tasks  []Task
	nextID int
	now    func() time.Time
}

func NewStore(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(os.Stderr, "taskpad: ", log.LstdFlags)
	}
	return &Store{
		kv:     kv,
		logger: logger,
		nextID: 1,
		now:    time.Now,
	}
}

// Load reads the persisted collection. Missing data means a fresh start;
// unreadable or corrupt data is logged and treated the same way.
func (s *Store) Load() {
	s.tasks = nil
	s.nextID = 1

	data, ok, err := s.kv.Get(TasksKey)
	if err != nil {
		s.logger.Printf("load tasks: %v", err)
		return
	}
	if !ok {
		return
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Printf("load tasks: corrupt data: %v", err)
		return
	}
	s.tasks = tasks
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

// Counts reports the totals the presentation layer shows after each mutation.
func (s *Store) Counts() (total, active, completed int) {
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return len(s.tasks), active, completed
}

// Add appends a new task. The text is trimmed first; an empty result is
// rejected with ErrEmptyText and nothing is stored or written.
func (s *Store) Add(text string, due *Date) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}
	t := Task{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: s.now().Format(time.RFC3339),
		Due:       due,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.persist()
	return t, nil
}

// Toggle flips the completed flag. Unknown ids are a no-op.
func (s *Store) Toggle(id int) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist()
			return
		}
	}
}

// Remove deletes the task with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id int) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return
		}
	}
}

// ClearCompleted removes every completed task. When nothing is completed it
// does not touch the persisted state.
func (s *Store) ClearCompleted() {
	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.tasks) {
		return
	}
	s.tasks = kept
	s.persist()
}

func (s *Store) persist() {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Printf("persist tasks: %v", err)
		return
	}
	if s.tasks == nil {
		data = []byte("[]")
	}
	if err := s.kv.Set(TasksKey, data); err != nil {
		s.logger.Printf("persist tasks: %v", err)
	}
}
