package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mabhi256/dsaviz/internal/playback"
)

// eventMsg carries a controller event into the bubbletea loop.
type eventMsg playback.Event

// mailbox holds the newest controller event until the program reads it.
// put never blocks; a newer event replaces an unread one.
type mailbox struct {
	mu     sync.Mutex
	latest playback.Event
	ready  chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newMailbox() *mailbox {
	return &mailbox{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

func (b *mailbox) put(ev playback.Event) {
	b.mu.Lock()
	b.latest = ev
	b.mu.Unlock()

	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// wait is a command that blocks until the next event or close.
func (b *mailbox) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.ready:
			b.mu.Lock()
			defer b.mu.Unlock()
			return eventMsg(b.latest)
		case <-b.done:
			return nil
		}
	}
}

func (b *mailbox) close() {
	b.once.Do(func() { close(b.done) })
}
