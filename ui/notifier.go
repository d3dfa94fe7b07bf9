package ui

import (
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// UpdateMsg asks the scaffold to re-render. It carries no payload; the
// render reads whatever state is current when it runs.
type UpdateMsg struct{}

// Notifier carries work from outside goroutines onto the Bubble Tea
// loop. Two delivery paths:
//
//   - queued: Notify and UpdateStatusItem enqueue onto a buffered channel
//     that Listen drains. Works before the program exists, so setup-time
//     setters and early status writes are safe.
//   - direct: Send hands a message to tea.Program.Send, unbounded and
//     goroutine-safe. It blocks until AttachProgram has run, so nothing
//     is lost while the program is still being constructed.
type Notifier struct {
	mu        sync.Mutex
	queue     chan tea.Msg
	listening bool

	ready   chan struct{} // closed by AttachProgram
	once    sync.Once
	program *tea.Program
}

func newNotifier() *Notifier {
	return &Notifier{
		queue: make(chan tea.Msg, 256),
		ready: make(chan struct{}),
	}
}

// AttachProgram hands the notifier its running tea.Program, unblocking
// any Send callers. Call once, between tea.NewProgram and Run.
func (n *Notifier) AttachProgram(p *tea.Program) {
	n.program = p
	n.once.Do(func() { close(n.ready) })
}

// Listen returns a command that blocks until the next queued message.
// Only one listener is armed at a time; the scaffold re-arms it from
// Update after each delivery.
func (n *Notifier) Listen() tea.Cmd {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listening {
		return nil
	}
	n.listening = true

	return func() tea.Msg {
		msg := <-n.queue
		n.mu.Lock()
		n.listening = false
		n.mu.Unlock()
		return msg
	}
}

// Notify requests a re-render. A full queue drops the request, which is
// harmless: the previously queued one renders the same current state.
func (n *Notifier) Notify() {
	n.enqueue(UpdateMsg{})
}

// UpdateStatusItem queues a status bar value change for the scaffold to
// apply on its own goroutine. Usable before AttachProgram; the change
// lands once the listener drains the queue.
func (n *Notifier) UpdateStatusItem(key, value string) {
	n.enqueue(StatusItemUpdateMsg{Key: key, Value: value})
}

func (n *Notifier) enqueue(msg tea.Msg) {
	select {
	case n.queue <- msg:
		return
	default:
	}
	if _, ok := msg.(UpdateMsg); !ok {
		log.Printf("notifier: queue full, dropped %T", msg)
	}
}

// Send delivers an arbitrary message through tea.Program.Send. Blocks
// until AttachProgram has been called.
func (n *Notifier) Send(msg tea.Msg) {
	<-n.ready
	n.program.Send(msg)
}
