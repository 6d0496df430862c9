package network

import (
	"testing"
	"time"

	"gloomdelve-server/pkg/api"
)

func TestBroadcaster_DeliversToRegisteredChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := make(chan api.Snapshot, 4)
	b.Register("c1", ch)

	b.Broadcast(api.Snapshot{Type: "UPDATE", Turn: 1})

	select {
	case got := <-ch:
		if got.Turn != 1 {
			t.Errorf("unexpected frame: %+v", got)
		}
	default:
		t.Fatal("broadcast must deliver into the subscriber's own channel")
	}
}

func TestBroadcaster_FullChannelDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	ch := make(chan api.Snapshot, 1)
	b.Register("slow", ch)

	// Буфер зависшего клиента полон; дальнейшие рассылки обязаны
	// отбрасывать кадры, а не блокировать цикл симуляции.
	b.Broadcast(api.Snapshot{Turn: 1})

	done := make(chan struct{})
	go func() {
		b.Broadcast(api.Snapshot{Turn: 2})
		b.Broadcast(api.Snapshot{Turn: 3})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast into a full channel must not block")
	}

	if got := <-ch; got.Turn != 1 {
		t.Errorf("expected the buffered frame, got %+v", got)
	}
	select {
	case extra := <-ch:
		t.Errorf("dropped frames must not arrive later: %+v", extra)
	default:
	}
}

func TestBroadcaster_UnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := make(chan api.Snapshot, 1)
	b.Register("c1", ch)

	b.Unregister("c1")

	if _, ok := <-ch; ok {
		t.Error("unregister must close the subscriber's channel")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", b.SubscriberCount())
	}
}

func TestBroadcaster_ReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := make(chan api.Snapshot, 1)
	b.Register("c1", old)

	fresh := make(chan api.Snapshot, 1)
	b.Register("c1", fresh)

	if _, ok := <-old; ok {
		t.Error("re-registration must close the previous channel")
	}

	b.Broadcast(api.Snapshot{Turn: 5})
	if got := <-fresh; got.Turn != 5 {
		t.Errorf("broadcast must reach the fresh channel, got %+v", got)
	}
}

func TestBroadcaster_PreQueuedFrameKeepsOrder(t *testing.T) {
	// Клиент кладет INIT в свой канал ДО регистрации; после нее пишет
	// только хаб, так что порядок кадров в канале общий и UPDATE не
	// может обогнать INIT.
	ch := make(chan api.Snapshot, 4)
	ch <- api.Snapshot{Type: "INIT"}

	b := NewBroadcaster()
	b.Register("c1", ch)
	b.Broadcast(api.Snapshot{Type: "UPDATE"})

	if first := <-ch; first.Type != "INIT" {
		t.Fatalf("first frame must be INIT, got %s", first.Type)
	}
	if second := <-ch; second.Type != "UPDATE" {
		t.Errorf("second frame must be UPDATE, got %s", second.Type)
	}
}
