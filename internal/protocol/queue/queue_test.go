package queue

import (
	"fmt"
	"testing"

	"github.com/danmuck/bridgectl/internal/protocol"
	"github.com/danmuck/bridgectl/internal/testutil/testlog"
)

type fakeReceiver struct {
	buffered [][][]byte
	errs     []error
}

func (f *fakeReceiver) Pending() (bool, error) {
	return len(f.buffered) > 0 || len(f.errs) > 0, nil
}

func (f *fakeReceiver) Recv() ([][]byte, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	parts := f.buffered[0]
	f.buffered = f.buffered[1:]
	return parts, nil
}

func reply(tag string, kv ...string) [][]byte {
	parts := [][]byte{{}, []byte(tag), []byte("OK")}
	for _, segment := range kv {
		parts = append(parts, []byte(segment))
	}
	return parts
}

func TestDrainDispatchesDecodedArguments(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{buffered: [][][]byte{reply("join", "game", `"abc-123"`)}}
	var got string
	q := New(receiver, "control", protocol.ValidateControlReply, map[string]Handler{
		"join": func(args protocol.Args) error {
			_, err := args.Get("game", &got)
			return err
		},
	})
	if !q.Drain() {
		t.Fatalf("drain reported failure")
	}
	if got != "abc-123" {
		t.Fatalf("handler argument: got %q", got)
	}
}

func TestDrainContinuesPastMalformedMessage(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{buffered: [][][]byte{
		reply("ping", "n", "1"),
		{[]byte("no-delimiter"), []byte("ping"), []byte("OK")},
		reply("ping", "n", "3"),
		reply("ping", "n", "4"),
	}}
	var handled []int
	q := New(receiver, "control", protocol.ValidateControlReply, map[string]Handler{
		"ping": func(args protocol.Args) error {
			var n int
			if _, err := args.Get("n", &n); err != nil {
				return err
			}
			handled = append(handled, n)
			return nil
		},
	})
	if q.Drain() {
		t.Fatalf("drain must report failure for the malformed message")
	}
	if len(handled) != 3 || handled[0] != 1 || handled[1] != 3 || handled[2] != 4 {
		t.Fatalf("messages after the malformed one must still be handled: %v", handled)
	}
}

func TestDrainRejectsOddArgumentCount(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{buffered: [][][]byte{reply("join", "game", `"abc"`, "dangling")}}
	invoked := false
	q := New(receiver, "control", protocol.ValidateControlReply, map[string]Handler{
		"join": func(protocol.Args) error {
			invoked = true
			return nil
		},
	})
	if q.Drain() {
		t.Fatalf("drain must report failure")
	}
	if invoked {
		t.Fatalf("handler must not see a message with odd argument segments")
	}
}

func TestDrainRejectsUnknownTag(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{buffered: [][][]byte{reply("mystery")}}
	q := New(receiver, "control", protocol.ValidateControlReply, nil)
	if q.Drain() {
		t.Fatalf("drain must report failure for unrecognized tag")
	}
}

func TestDrainRejectsUnparseableValue(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{buffered: [][][]byte{reply("join", "game", "{broken")}}
	invoked := false
	q := New(receiver, "control", protocol.ValidateControlReply, map[string]Handler{
		"join": func(protocol.Args) error {
			invoked = true
			return nil
		},
	})
	if q.Drain() {
		t.Fatalf("drain must report failure")
	}
	if invoked {
		t.Fatalf("handler must not run on decode failure")
	}
}

func TestDrainToleratesClosedChannel(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{errs: []error{fmt.Errorf("%w: context terminated", protocol.ErrChannelClosed)}}
	q := New(receiver, "control", protocol.ValidateControlReply, nil)
	if !q.Drain() {
		t.Fatalf("shutdown-time receive failure must count as success")
	}
}

func TestDrainReportsTransportError(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{
		errs:     []error{fmt.Errorf("interrupted")},
		buffered: [][][]byte{reply("ping")},
	}
	handled := false
	q := New(receiver, "control", protocol.ValidateControlReply, map[string]Handler{
		"ping": func(protocol.Args) error {
			handled = true
			return nil
		},
	})
	if q.Drain() {
		t.Fatalf("transport error must fail the drain call")
	}
	if !handled {
		t.Fatalf("remaining buffered messages must still be drained")
	}
}

func TestDrainEventMessages(t *testing.T) {
	testlog.Start(t)
	receiver := &fakeReceiver{buffered: [][][]byte{
		{[]byte("abc:trick"), []byte("winner"), []byte(`"north"`), []byte("counter"), []byte("5")},
	}}
	var winner string
	q := New(receiver, "event", protocol.ValidateEventMessage, map[string]Handler{
		"abc:trick": func(args protocol.Args) error {
			_, err := args.Get("winner", &winner)
			return err
		},
	})
	if !q.Drain() {
		t.Fatalf("drain reported failure")
	}
	if winner != "north" {
		t.Fatalf("winner: got %q", winner)
	}
}
