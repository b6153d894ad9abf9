package ecs

// Command is a deferred world mutation.
type Command func(w *World)

// CommandQueue is a FIFO of deferred world mutations, applied after
// the system pass so structural changes never race an iteration.
type CommandQueue struct {
	items []Command
}

// Defer queues a command.
func (q *CommandQueue) Defer(cmd Command) {
	if q == nil || cmd == nil {
		return
	}
	q.items = append(q.items, cmd)
}

func (q *CommandQueue) apply(w *World) {
	if q == nil {
		return
	}
	for len(q.items) > 0 {
		items := q.items
		q.items = nil
		for _, cmd := range items {
			cmd(w)
		}
	}
}

// Apply drains the queue immediately. Exposed for callers driving a
// world without the scheduler.
func (q *CommandQueue) Apply(w *World) {
	q.apply(w)
}
