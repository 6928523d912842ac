package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

type mockStore struct {
	mu       sync.Mutex
	stats    map[string]game.Stats
	skills   map[string]game.Skills
	loads    int32
	saves    int
	saveErr  error
	loadWait time.Duration
}

func newMockStore() *mockStore {
	return &mockStore{stats: map[string]game.Stats{}, skills: map[string]game.Skills{}}
}

func (m *mockStore) LoadStats(ctx context.Context, owner string) (game.Stats, bool, error) {
	atomic.AddInt32(&m.loads, 1)
	if m.loadWait > 0 {
		time.Sleep(m.loadWait)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stats[owner]
	return s, ok, nil
}

func (m *mockStore) LoadSkills(ctx context.Context, owner string) (game.Skills, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.skills[owner], nil
}

func (m *mockStore) SaveProfile(ctx context.Context, owner string, stats game.Stats, skills game.Skills) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.stats[owner] = stats
	m.skills[owner] = skills
	return nil
}

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestGetAppliesDefaultsWhenAbsent(t *testing.T) {
	profiles := NewProfiles(newMockStore())
	prof, err := profiles.Get(context.Background(), "New@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.Stats() != game.DefaultStats() {
		t.Fatalf("expected defaults, got %+v", prof.Stats())
	}
	if prof.Owner() != "new@example.com" {
		t.Fatalf("owner not canonical: %q", prof.Owner())
	}
}

func TestGetReturnsSharedInstance(t *testing.T) {
	store := newMockStore()
	store.loadWait = 20 * time.Millisecond
	profiles := NewProfiles(store)

	var wg sync.WaitGroup
	got := make([]*progression.Profile, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := profiles.Get(context.Background(), "a@b.c")
			if err != nil {
				t.Errorf("get: %v", err)
				return
			}
			got[i] = p
		}(i)
	}
	wg.Wait()
	for i := range got {
		if got[i] != got[0] {
			t.Fatalf("profile %d is a different instance", i)
		}
	}
	if n := atomic.LoadInt32(&store.loads); n != 1 {
		t.Fatalf("store loaded %d times, want 1", n)
	}
}

func TestGetRejectsEmptyOwner(t *testing.T) {
	profiles := NewProfiles(newMockStore())
	if _, err := profiles.Get(context.Background(), "  "); !errors.Is(err, ErrProfileUnavailable) {
		t.Fatalf("expected ErrProfileUnavailable, got %v", err)
	}
}

func TestRollLootPersists(t *testing.T) {
	store := newMockStore()
	store.stats["a@b.c"] = game.Stats{Strength: 10, Agility: 10, Cash: 1000}
	profiles := NewProfiles(store)

	res, stats, err := RollLoot(context.Background(), profiles, "a@b.c", progression.DefaultLootTable(), fixedRand(0.96))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tier != game.TierSuperRare || stats.Cash != 500 || stats.Strength != 60 {
		t.Fatalf("unexpected result %v %+v", res.Tier, stats)
	}
	if store.saves != 1 || store.stats["a@b.c"] != stats {
		t.Fatalf("roll not persisted: saves=%d stored=%+v", store.saves, store.stats["a@b.c"])
	}
}

func TestRollLootRejectedWritesNothing(t *testing.T) {
	store := newMockStore()
	store.stats["a@b.c"] = game.Stats{Strength: 10, Agility: 10, Cash: 499}
	profiles := NewProfiles(store)

	_, _, err := RollLoot(context.Background(), profiles, "a@b.c", progression.DefaultLootTable(), fixedRand(0.5))
	if !errors.Is(err, progression.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("rejected roll was saved")
	}
}

func TestFlushAfterFightSaveError(t *testing.T) {
	store := newMockStore()
	store.saveErr = errors.New("disk full")
	profiles := NewProfiles(store)
	prof, _ := profiles.Get(context.Background(), "a@b.c")
	if err := FlushAfterFight(context.Background(), profiles, prof, 1, true); !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}

// stallingStore holds its first SaveProfile call until release is closed.
type stallingStore struct {
	*mockStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (s *stallingStore) SaveProfile(ctx context.Context, owner string, stats game.Stats, skills game.Skills) error {
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.entered)
		<-s.release
	}
	return s.mockStore.SaveProfile(ctx, owner, stats, skills)
}

func TestStalledFlushDoesNotOverwriteLootRoll(t *testing.T) {
	store := &stallingStore{mockStore: newMockStore(), entered: make(chan struct{}), release: make(chan struct{})}
	store.stats["a@b.c"] = game.Stats{Strength: 10, Agility: 10, Cash: 1000}
	profiles := NewProfiles(store)
	prof, err := profiles.Get(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	flushed := make(chan error, 1)
	go func() { flushed <- FlushAfterFight(context.Background(), profiles, prof, 1, true) }()
	<-store.entered

	rolled := make(chan error, 1)
	go func() {
		_, _, err := RollLoot(context.Background(), profiles, "a@b.c", progression.DefaultLootTable(), fixedRand(0.96))
		rolled <- err
	}()
	deadline := time.Now().Add(time.Second)
	for prof.Stats().Cash != 500 {
		if time.Now().After(deadline) {
			t.Fatalf("loot roll never applied in memory")
		}
		time.Sleep(time.Millisecond)
	}

	close(store.release)
	if err := <-flushed; err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := <-rolled; err != nil {
		t.Fatalf("roll: %v", err)
	}

	want := game.Stats{Strength: 60, Agility: 10, Cash: 500}
	store.mu.Lock()
	got := store.stats["a@b.c"]
	store.mu.Unlock()
	if got != want {
		t.Fatalf("persisted %+v, want %+v", got, want)
	}
}
