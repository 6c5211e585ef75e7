package store

import "sync"

// Transition — состояние до и после Dispatch
type Transition struct {
	Before  State
	After   State
	Changed bool
}

// Store — наблюдаемый контейнер состояния. Все изменения проходят через Dispatch.
type Store struct {
	mu      sync.Mutex
	reducer Reducer
	state   State
	subs    map[int]chan State
	nextSub int
}

func New(initial State, reducer Reducer) *Store {
	return &Store{
		reducer: reducer,
		state:   initial,
		subs:    make(map[int]chan State),
	}
}

// State — текущий снимок
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch применяет действия атомарно и один раз уведомляет подписчиков, если что-то изменилось.
func (s *Store) Dispatch(actions ...Action) Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr := Transition{Before: s.state}
	next := s.state
	for _, a := range actions {
		var changed bool
		next, changed = s.reducer.Reduce(next, a)
		tr.Changed = tr.Changed || changed
	}
	tr.After = next
	if !tr.Changed {
		return tr
	}
	s.state = next
	for _, ch := range s.subs {
		publish(ch, next)
	}
	return tr
}

// Subscribe — канал новых состояний. Медленный подписчик получает только последнее.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish — вызывается под мьютексом, старое непрочитанное значение заменяется новым
func publish(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- st:
	default:
	}
}
