package relay

import (
	"encoding/json"
	"io"
	"testing"
	"time"
)

// fakeConn is a Conn whose reads are fed from a channel and whose writes are
// collected on another.
type fakeConn struct {
	in  chan Event
	out chan Event
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:  make(chan Event, 8),
		out: make(chan Event, 8),
	}
}

func (f *fakeConn) ReadJSON(v interface{}) error {
	ev, ok := <-f.in
	if !ok {
		return io.EOF
	}
	*(v.(*Event)) = ev
	return nil
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.out <- v.(Event)
	return nil
}

func (f *fakeConn) Close() error { return nil }

func mustRaw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return b
}

func joinEvent(t *testing.T, room string) Event {
	return Event{Event: EventJoinRoom, Data: mustRaw(t, room)}
}

func expectNoEvent(t *testing.T, conn *fakeConn, context string) {
	t.Helper()
	select {
	case ev := <-conn.out:
		t.Errorf("%s: unexpected delivery %+v", context, ev)
	default:
	}
}

func TestSendMessage_DeliveredOnlyToRoomMembers(t *testing.T) {
	h := NewHub()
	sender := newFakeConn()
	member := newFakeConn()
	outsider := newFakeConn()

	cs := h.register(sender)
	cm := h.register(member)
	co := h.register(outsider)

	h.dispatch(cs, joinEvent(t, "roomX"))
	h.dispatch(cm, joinEvent(t, "roomX"))
	h.dispatch(co, joinEvent(t, "roomY"))

	payload := mustRaw(t, map[string]string{"roomName": "roomX", "text": "hi"})
	h.dispatch(cs, Event{Event: EventSendMessage, Data: payload})

	select {
	case ev := <-member.out:
		if ev.Event != EventReceiveMessage {
			t.Errorf("member got event %q, want %q", ev.Event, EventReceiveMessage)
		}
		var body map[string]string
		if err := json.Unmarshal(ev.Data, &body); err != nil {
			t.Fatalf("unmarshal delivery: %v", err)
		}
		if body["text"] != "hi" {
			t.Errorf("delivered text = %q, want %q", body["text"], "hi")
		}
	default:
		t.Fatal("room member received nothing")
	}

	expectNoEvent(t, outsider, "client in roomY")
	expectNoEvent(t, sender, "sender echo")
}

func TestTyping_IsRoomScoped(t *testing.T) {
	h := NewHub()
	sender := newFakeConn()
	member := newFakeConn()
	outsider := newFakeConn()

	cs := h.register(sender)
	cm := h.register(member)
	co := h.register(outsider)

	h.dispatch(cs, joinEvent(t, "roomX"))
	h.dispatch(cm, joinEvent(t, "roomX"))
	h.dispatch(co, joinEvent(t, "roomY"))

	payload := mustRaw(t, map[string]string{"roomName": "roomX", "sender": "alice"})
	h.dispatch(cs, Event{Event: EventTyping, Data: payload})

	select {
	case ev := <-member.out:
		if ev.Event != EventTypingRes {
			t.Errorf("member got event %q, want %q", ev.Event, EventTypingRes)
		}
	default:
		t.Fatal("room member received no typing indicator")
	}

	expectNoEvent(t, outsider, "typing leak into roomY")
}

func TestRelay_IgnoresPayloadWithoutRoom(t *testing.T) {
	h := NewHub()
	sender := newFakeConn()
	member := newFakeConn()

	cs := h.register(sender)
	cm := h.register(member)
	h.dispatch(cm, joinEvent(t, "roomX"))

	h.dispatch(cs, Event{Event: EventSendMessage, Data: mustRaw(t, map[string]string{"text": "hi"})})

	expectNoEvent(t, member, "delivery without roomName")
}

func TestJoiningMultipleRooms(t *testing.T) {
	h := NewHub()
	sender := newFakeConn()
	member := newFakeConn()

	cs := h.register(sender)
	cm := h.register(member)

	h.dispatch(cm, joinEvent(t, "roomX"))
	h.dispatch(cm, joinEvent(t, "roomY"))

	for _, room := range []string{"roomX", "roomY"} {
		payload := mustRaw(t, map[string]string{"roomName": room})
		h.dispatch(cs, Event{Event: EventSendMessage, Data: payload})

		select {
		case ev := <-member.out:
			if ev.Event != EventReceiveMessage {
				t.Errorf("got event %q, want %q", ev.Event, EventReceiveMessage)
			}
		default:
			t.Fatalf("no delivery for %s", room)
		}
	}
}

func TestServe_UnregistersOnDisconnect(t *testing.T) {
	h := NewHub()
	conn := newFakeConn()

	done := make(chan struct{})
	go func() {
		h.Serve(conn)
		close(done)
	}()

	conn.in <- joinEvent(t, "roomX")
	close(conn.in)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after the read loop ended")
	}

	if n := h.ClientCount(); n != 0 {
		t.Errorf("ClientCount() = %d after disconnect, want 0", n)
	}
}
