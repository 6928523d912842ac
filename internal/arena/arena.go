package arena

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/engine"
	"github.com/kawertyff-source/Simungboxing-128/internal/game"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
	"github.com/kawertyff-source/Simungboxing-128/internal/protocol"
)

var ErrClosed = errors.New("arena closed")

// FlushFunc persists the profile after a fight ends. It runs off the arena
// goroutine.
type FlushFunc func(fight uint64, won bool)

// Arena runs one engine.Session for one profile. The session is touched only
// by the Run goroutine; everything else talks to it through Inbox.
type Arena struct {
	Inbox   chan any
	tickHz  int
	session *engine.Session
	profile *progression.Profile
	flush   FlushFunc
	clients map[string]Conn
	nextID  int
	quit    chan struct{}
	stop    sync.Once

	Owner   string
	OnEmpty func(owner string) // called when last connection leaves
}

func New(prof *progression.Profile, tuning engine.Tuning, tickHz int, rng engine.Rand, flush FlushFunc) *Arena {
	if tickHz <= 0 {
		tickHz = 60
	}
	return &Arena{
		Inbox:   make(chan any, 256),
		tickHz:  tickHz,
		session: engine.NewSession(tuning, prof, rng),
		profile: prof,
		flush:   flush,
		clients: make(map[string]Conn),
		nextID:  1,
		quit:    make(chan struct{}),
		Owner:   prof.Owner(),
	}
}

func (a *Arena) Stop() {
	a.stop.Do(func() { close(a.quit) })
}

// Submit queues a command unless the arena has stopped.
func (a *Arena) Submit(cmd any) error {
	select {
	case <-a.quit:
		return ErrClosed
	default:
	}
	select {
	case <-a.quit:
		return ErrClosed
	case a.Inbox <- cmd:
		return nil
	}
}

// Join registers conn and waits for its id.
func (a *Arena) Join(conn Conn) (JoinResult, error) {
	reply := make(chan JoinResult, 1)
	if err := a.Submit(Join{Conn: conn, Reply: reply}); err != nil {
		return JoinResult{}, err
	}
	select {
	case <-a.quit:
		return JoinResult{}, ErrClosed
	case res := <-reply:
		return res, nil
	}
}

func (a *Arena) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.tickHz))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-a.quit:
			return
		default:
		}
		select {
		case <-a.quit:
			return
		case cmd := <-a.Inbox:
			a.handleCommand(cmd)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.dispatch(a.session.Tick(dt))
		}
	}
}

func (a *Arena) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		connID := fmt.Sprintf("c%d", a.nextID)
		a.nextID++
		a.clients[connID] = c.Conn
		a.sendWelcome(c.Conn)
		c.Reply <- JoinResult{ConnID: connID}
	case Attack:
		if _, ok := a.clients[c.ConnID]; !ok {
			return
		}
		evs, err := a.session.Attack(game.NewAttackIntent(c.Technique))
		if err != nil {
			// stamina or lock rejections are dropped without feedback
			return
		}
		a.dispatch(evs)
	case Leave:
		a.handleLeave(c.ConnID)
	}
}

func (a *Arena) handleLeave(connID string) {
	c, ok := a.clients[connID]
	if !ok {
		return
	}
	_ = c.Close()
	delete(a.clients, connID)
	if len(a.clients) == 0 && a.OnEmpty != nil {
		a.OnEmpty(a.Owner)
	}
}

// dispatch broadcasts events in order. Only the last resource update of a
// batch is sent since each one supersedes the previous.
func (a *Arena) dispatch(evs []engine.Event) {
	var resources *engine.ResourceChanged
	for _, e := range evs {
		switch ev := e.(type) {
		case engine.ResourceChanged:
			rc := ev
			resources = &rc
			continue
		case engine.FightConcluded:
			a.finishFight(ev.Fight, true)
		case engine.FightLost:
			a.finishFight(ev.Fight, false)
		}
		a.broadcastEvent(e)
	}
	if resources != nil {
		a.broadcastEvent(*resources)
	}
}

func (a *Arena) finishFight(fight uint64, won bool) {
	if a.flush != nil {
		go a.flush(fight, won)
	}
}

func (a *Arena) broadcastEvent(e engine.Event) {
	t, payload := eventMessage(e)
	if t == "" {
		return
	}
	b, err := protocol.Encode(t, payload)
	if err != nil {
		logging.Error("failed to encode event", err, logging.Fields{constants.LogFieldOwner: a.Owner})
		return
	}
	a.broadcast(b)
}

func (a *Arena) broadcast(b []byte) {
	var failed []string
	for id, c := range a.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		logging.Warn("dropping connection after failed send", logging.Fields{constants.LogFieldOwner: a.Owner, constants.LogFieldConn: id})
		a.handleLeave(id)
	}
}

func (a *Arena) sendWelcome(c Conn) {
	snap := a.session.Snapshot()
	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		TickHz:         a.tickHz,
		Stats:          statsPayload(a.profile.Stats()),
		Health:         snap.Health,
		Stamina:        snap.Stamina,
		OpponentHealth: snap.OpponentHealth,
		OpponentState:  snap.OpponentState.String(),
	})
	if err != nil {
		return
	}
	_ = c.Send(b)
}
