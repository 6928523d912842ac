package arena

import (
	"context"
	"errors"
	"sync"

	"github.com/kawertyff-source/Simungboxing-128/internal/engine"
	"github.com/kawertyff-source/Simungboxing-128/internal/service"
)

// Manager holds one arena per profile owner. Arenas are created on first
// join and removed when the last connection leaves.
type Manager struct {
	mu     sync.Mutex
	arenas map[string]*Arena

	profiles *service.Profiles
	tuning   engine.Tuning
	tickHz   int

	// NewRand supplies the telegraph source for each new arena.
	NewRand func() engine.Rand
}

func NewManager(profiles *service.Profiles, tuning engine.Tuning, tickHz int) *Manager {
	return &Manager{
		arenas:   make(map[string]*Arena),
		profiles: profiles,
		tuning:   tuning,
		tickHz:   tickHz,
		NewRand:  func() engine.Rand { return service.SharedRand{} },
	}
}

// GetOrCreate returns the running arena for owner, starting one if needed.
func (m *Manager) GetOrCreate(ctx context.Context, owner string) (*Arena, error) {
	prof, err := m.profiles.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.arenas[prof.Owner()]; ok {
		return a, nil
	}
	a := New(prof, m.tuning, m.tickHz, m.NewRand(), func(fight uint64, won bool) {
		_ = service.FlushAfterFight(context.Background(), m.profiles, prof, fight, won)
	})
	a.OnEmpty = func(string) { m.remove(a) }
	m.arenas[prof.Owner()] = a
	go a.Run()
	return a, nil
}

// Join attaches conn to the owner's arena. An arena that stopped between
// lookup and join is replaced once.
func (m *Manager) Join(ctx context.Context, owner string, conn Conn) (*Arena, JoinResult, error) {
	for attempt := 0; attempt < 2; attempt++ {
		a, err := m.GetOrCreate(ctx, owner)
		if err != nil {
			return nil, JoinResult{}, err
		}
		res, err := a.Join(conn)
		if errors.Is(err, ErrClosed) {
			continue
		}
		return a, res, err
	}
	return nil, JoinResult{}, ErrClosed
}

func (m *Manager) remove(a *Arena) {
	m.mu.Lock()
	if cur, ok := m.arenas[a.Owner]; ok && cur == a {
		delete(m.arenas, a.Owner)
	}
	m.mu.Unlock()
	a.Stop()
	// counter rewards earned after the last fight end are only saved here
	go func() {
		_ = m.profiles.Save(context.Background(), a.profile)
	}()
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.arenas)
}

// Shutdown stops every arena and flushes their profiles.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	arenas := make([]*Arena, 0, len(m.arenas))
	for owner, a := range m.arenas {
		arenas = append(arenas, a)
		delete(m.arenas, owner)
	}
	m.mu.Unlock()
	for _, a := range arenas {
		a.Stop()
		_ = m.profiles.Save(ctx, a.profile)
	}
}
