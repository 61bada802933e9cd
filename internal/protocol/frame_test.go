package protocol

import (
	"testing"

	"github.com/danmuck/bridgectl/internal/testutil/testlog"
)

func TestCommandEncodeLayout(t *testing.T) {
	testlog.Start(t)
	cmd := Command{
		Name: "join",
		Args: []Arg{
			{Key: "position", Value: "north"},
			{Key: "game", Value: "abc-123"},
		},
	}
	parts, err := cmd.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []string{"", "join", "join", "position", `"north"`, "game", `"abc-123"`}
	if len(parts) != len(want) {
		t.Fatalf("segment count: got %d want %d", len(parts), len(want))
	}
	for i, segment := range want {
		if string(parts[i]) != segment {
			t.Fatalf("segment %d: got %q want %q", i, parts[i], segment)
		}
	}
}

func TestCommandEncodeTagOverride(t *testing.T) {
	testlog.Start(t)
	cmd := Command{Name: "get", Tag: "initget"}
	parts, err := cmd.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(parts[1]) != "initget" || string(parts[2]) != "get" {
		t.Fatalf("tag/command segments: %q %q", parts[1], parts[2])
	}
}

func TestValidateControlReplyAcceptsSuccess(t *testing.T) {
	testlog.Start(t)
	parts := [][]byte{{}, []byte("join"), []byte("OK"), []byte("game"), []byte(`"abc-123"`)}
	tag, args, ok := ValidateControlReply(parts)
	if !ok {
		t.Fatalf("expected valid reply")
	}
	if tag != "join" {
		t.Fatalf("tag: got %q", tag)
	}
	if len(args) != 2 || string(args[0]) != "game" {
		t.Fatalf("args: %q", args)
	}
}

func TestValidateControlReplyAcceptsStatusWithSuffix(t *testing.T) {
	testlog.Start(t)
	parts := [][]byte{{}, []byte("call"), []byte("OK:accepted")}
	if _, _, ok := ValidateControlReply(parts); !ok {
		t.Fatalf("OK-prefixed status must be accepted")
	}
}

func TestValidateControlReplyRejects(t *testing.T) {
	testlog.Start(t)
	cases := map[string][][]byte{
		"too short":           {{}, []byte("join")},
		"missing delimiter":   {[]byte("x"), []byte("join"), []byte("OK")},
		"failed status":       {{}, []byte("join"), []byte("ERR")},
		"truncated status":    {{}, []byte("join"), []byte("O")},
		"empty":               {},
	}
	for name, parts := range cases {
		if _, _, ok := ValidateControlReply(parts); ok {
			t.Fatalf("%s: expected invalid", name)
		}
	}
}

func TestValidateEventMessage(t *testing.T) {
	testlog.Start(t)
	tag, args, ok := ValidateEventMessage([][]byte{[]byte("abc:deal"), []byte("opener"), []byte(`"north"`)})
	if !ok || tag != "abc:deal" || len(args) != 2 {
		t.Fatalf("event validation: tag=%q args=%d ok=%v", tag, len(args), ok)
	}
	if _, _, ok := ValidateEventMessage(nil); ok {
		t.Fatalf("empty event frame must be invalid")
	}
}
