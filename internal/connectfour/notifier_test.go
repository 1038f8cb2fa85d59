package connectfour

import (
	"reflect"
	"testing"
)

func TestObserversCalledInRegistrationOrder(t *testing.T) {
	b := New()
	var calls []string
	b.Subscribe(func(View) { calls = append(calls, "first") })
	b.Subscribe(func(View) { calls = append(calls, "second") })
	b.Subscribe(func(View) { calls = append(calls, "third") })

	playMoves(t, b, "3")

	expected := []string{"first", "second", "third"}
	if !reflect.DeepEqual(calls, expected) {
		t.Errorf("call order = %v, expected %v", calls, expected)
	}
}

func TestObserverNotifiedOncePerSuccessfulMove(t *testing.T) {
	b := New()
	count := 0
	b.Subscribe(func(View) { count++ })

	playMoves(t, b, "000000")
	_ = b.ApplyMove(0)  // full
	_ = b.ApplyMove(-1) // invalid
	_ = b.ApplyMove(7)  // invalid
	playMoves(t, b, "1")

	if count != 7 {
		t.Errorf("observer called %d times, expected 7", count)
	}
}

func TestNoNotificationAfterGameOver(t *testing.T) {
	b := New()
	count := 0
	b.Subscribe(func(View) { count++ })

	playMoves(t, b, "3232323")
	_ = b.ApplyMove(0)

	if count != 7 {
		t.Errorf("observer called %d times, expected 7", count)
	}
}

func TestObserverSeesPostMoveState(t *testing.T) {
	b := New()

	type seen struct {
		moves   int
		current PlayerID
		status  Status
		cell    Cell
	}
	var got []seen
	b.Subscribe(func(v View) {
		last, ok := v.LastMove()
		if !ok {
			t.Error("LastMove() reported no move inside a notification")
		}
		got = append(got, seen{
			moves:   v.MovesMade(),
			current: v.CurrentPlayer(),
			status:  v.Status(),
			cell:    v.ContentsAt(last.Row, last.Col),
		})
	})

	playMoves(t, b, "3232323")

	if len(got) != 7 {
		t.Fatalf("observer called %d times, expected 7", len(got))
	}

	first := got[0]
	if first.moves != 1 || first.current != PlayerTwo || first.status.IsOver() || first.cell != OccupiedBy(PlayerOne) {
		t.Errorf("first notification = %+v, expected 1 move, Player Two to move, disc of Player One", first)
	}

	final := got[6]
	if final.moves != 7 {
		t.Errorf("final notification moves = %d, expected 7", final.moves)
	}
	if final.status != WonBy(PlayerOne) {
		t.Errorf("final notification status = %v, expected won by Player One", final.status)
	}
	if final.current != PlayerOne {
		t.Errorf("final notification current = %v, expected %v", final.current, PlayerOne)
	}
}

func TestObserverSeesDraw(t *testing.T) {
	b := New()
	var last Status
	b.Subscribe(func(v View) { last = v.Status() })

	playMoves(t, b, drawnGame)

	if last != Drawn() {
		t.Errorf("last notified status = %v, expected draw", last)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	a, c := 0, 0
	subA := b.Subscribe(func(View) { a++ })
	b.Subscribe(func(View) { c++ })

	playMoves(t, b, "0")
	if !b.Unsubscribe(subA) {
		t.Fatal("Unsubscribe() should report a registered subscription")
	}
	if b.Unsubscribe(subA) {
		t.Error("second Unsubscribe() should report false")
	}
	playMoves(t, b, "1")

	if a != 1 {
		t.Errorf("unsubscribed observer called %d times, expected 1", a)
	}
	if c != 2 {
		t.Errorf("remaining observer called %d times, expected 2", c)
	}
}

func TestSubscribeDuringNotify(t *testing.T) {
	b := New()
	late := 0
	registered := false
	b.Subscribe(func(View) {
		if !registered {
			registered = true
			b.Subscribe(func(View) { late++ })
		}
	})

	playMoves(t, b, "0")
	if late != 0 {
		t.Errorf("observer added during notification was called %d times for the same move", late)
	}

	playMoves(t, b, "1")
	if late != 1 {
		t.Errorf("late observer called %d times, expected 1", late)
	}
}

func TestObserverViewIsReadOnly(t *testing.T) {
	b := New()
	var isBoard bool
	b.Subscribe(func(v View) {
		_, isBoard = v.(*Board)
	})

	playMoves(t, b, "0")

	if isBoard {
		t.Error("observer received the mutable *Board, expected a read-only view")
	}
}

func TestApplyMoveFromObserverPanics(t *testing.T) {
	b := New()
	var secondSaw []int
	nested := b.Subscribe(func(View) { _ = b.ApplyMove(0) })
	b.Subscribe(func(v View) { secondSaw = append(secondSaw, v.MovesMade()) })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("ApplyMove inside an observer should panic")
			}
		}()
		_ = b.ApplyMove(3)
	}()

	if b.MovesMade() != 1 {
		t.Errorf("MovesMade() = %d, expected 1", b.MovesMade())
	}
	if len(secondSaw) != 0 {
		t.Errorf("second observer saw %v after the first one panicked", secondSaw)
	}

	b.Unsubscribe(nested)
	playMoves(t, b, "2")
	if b.MovesMade() != 2 || len(secondSaw) != 1 || secondSaw[0] != 2 {
		t.Errorf("after removing the nested observer: MovesMade=%d, second saw %v", b.MovesMade(), secondSaw)
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	b := New()
	calls := 0
	var second Subscription
	b.Subscribe(func(View) { b.Unsubscribe(second) })
	second = b.Subscribe(func(View) { calls++ })

	playMoves(t, b, "01")

	if calls != 0 {
		t.Errorf("observer removed by an earlier observer was called %d times, expected 0", calls)
	}
}

func TestSubscribeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Subscribe(nil) should panic")
		}
	}()
	New().Subscribe(nil)
}

func TestNotifierZeroValue(t *testing.T) {
	var n Notifier
	if n.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", n.Len())
	}

	n.Notify(New())

	var views []View
	s1 := n.Subscribe(func(v View) { views = append(views, v) })
	s2 := n.Subscribe(func(View) {})
	if s1 == s2 {
		t.Error("subscriptions should have distinct handles")
	}
	if n.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", n.Len())
	}

	b := New()
	n.Notify(b)
	if len(views) != 1 || views[0] != View(b) {
		t.Errorf("observer received %v, expected the notified board", views)
	}
}
