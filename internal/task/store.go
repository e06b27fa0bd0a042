package task

import "time"

// Store is an in-memory task collection. It is not safe for concurrent use;
// a single session owns it.
type Store struct {
	tasks  []Task
	nextID int64
}

// NewStore returns an empty store whose first task gets ID 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add appends a new incomplete task and returns it. The store does no
// validation; callers check the title and deadline first.
func (s *Store) Add(title string, priority Priority, deadline time.Time) Task {
	if s.nextID == 0 {
		s.nextID = 1
	}
	t := Task{
		ID:       s.nextID,
		Title:    title,
		Priority: priority,
		Deadline: deadline,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Delete removes the task with the given ID, if any, and returns the
// remaining tasks.
func (s *Store) Delete(id int64) []Task {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	// Clear the tail so removed tasks are not retained by the backing array.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = Task{}
	}
	s.tasks = kept
	return s.Tasks()
}

// Complete marks the task with the given ID as completed. Every other task
// is left untouched. It reports whether a task changed state.
func (s *Store) Complete(id int64) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Completed {
			return false
		}
		s.tasks[i].Completed = true
		return true
	}
	return false
}

// Get returns the task with the given ID.
func (s *Store) Get(id int64) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Active returns incomplete tasks in insertion order.
func (s *Store) Active() []Task {
	return s.filter(false)
}

// Completed returns completed tasks in insertion order.
func (s *Store) Completed() []Task {
	return s.filter(true)
}

func (s *Store) filter(completed bool) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}
