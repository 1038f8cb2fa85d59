package connectfour

// View is the read-only side of a Board handed to observers and renderers.
type View interface {
	Rows() int
	Cols() int
	ContentsAt(row, col int) Cell
	CurrentPlayer() PlayerID
	MovesMade() int
	Status() Status
	LastMove() (Position, bool)
	WinningLine() []Position
	History() []int
}

var (
	_ View = (*Board)(nil)
	_ View = readOnly{}
)

// readOnly is the View passed to observers. It hides ApplyMove and the
// subscription methods of the underlying board.
type readOnly struct {
	b *Board
}

func (v readOnly) Rows() int { return v.b.Rows() }
func (v readOnly) Cols() int { return v.b.Cols() }
func (v readOnly) ContentsAt(row, col int) Cell { return v.b.ContentsAt(row, col) }
func (v readOnly) CurrentPlayer() PlayerID { return v.b.CurrentPlayer() }
func (v readOnly) MovesMade() int { return v.b.MovesMade() }
func (v readOnly) Status() Status { return v.b.Status() }
func (v readOnly) LastMove() (Position, bool) { return v.b.LastMove() }
func (v readOnly) WinningLine() []Position { return v.b.WinningLine() }
func (v readOnly) History() []int { return v.b.History() }

// Observer is called with the board's view after a state change.
type Observer func(View)

// Subscription identifies a registered observer.
type Subscription uint64

type subscriber struct {
	id       Subscription
	observer Observer
}

// Notifier delivers change notifications to observers synchronously,
// in registration order. The zero value is ready to use.
type Notifier struct {
	lastID      Subscription
	subscribers []subscriber
}

// Subscribe registers o and returns its handle. It panics if o is nil.
func (n *Notifier) Subscribe(o Observer) Subscription {
	if o == nil {
		panic("connectfour: nil observer")
	}
	n.lastID++
	n.subscribers = append(n.subscribers, subscriber{id: n.lastID, observer: o})
	return n.lastID
}

// Unsubscribe removes the observer registered under s. Called during a
// notification, it also stops delivery of that notification to s if s has
// not been called yet.
func (n *Notifier) Unsubscribe(s Subscription) bool {
	for i, sub := range n.subscribers {
		if sub.id == s {
			n.subscribers = append(n.subscribers[:i:i], n.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (n *Notifier) Len() int {
	return len(n.subscribers)
}

// Notify calls every observer with v. Observers subscribed during the call
// are first notified on the next call.
func (n *Notifier) Notify(v View) {
	subs := append([]subscriber(nil), n.subscribers...)
	for _, sub := range subs {
		if !n.registered(sub.id) {
			continue
		}
		sub.observer(v)
	}
}

func (n *Notifier) registered(s Subscription) bool {
	for _, sub := range n.subscribers {
		if sub.id == s {
			return true
		}
	}
	return false
}
