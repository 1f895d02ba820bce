package ui

import (
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"vselect/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ForwardEvents delivers bus events of the given types to send as EventMsg
// values. Events are queued so a slow program never blocks the bus
// dispatcher. The returned function stops forwarding.
func ForwardEvents(bus eventbus.EventBus, send func(tea.Msg), types ...eventbus.EventType) func() {
	events := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})

	unsubs := make([]func(), 0, len(types))
	for _, t := range types {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case events <- e:
			default:
				// Channel full, drop event
				log.Println("Event channel full, dropping event")
			}
		}))
	}

	go func() {
		for {
			select {
			case e := <-events:
				send(EventMsg{Event: e})
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, unsub := range unsubs {
				unsub()
			}
			close(done)
		})
	}
}
