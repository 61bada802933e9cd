package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/bridgectl/internal/client"
	"github.com/danmuck/bridgectl/internal/game"
)

var ErrBadInput = errors.New("ui: cannot parse input")

// Reader turns typed lines into session intents:
//
//	pass | double | redouble
//	bid <level> <strain>
//	play <rank> <suit>
type Reader struct {
	input   io.Reader
	intents chan<- client.Intent
}

func NewReader(input io.Reader, intents chan<- client.Intent) *Reader {
	return &Reader{input: input, intents: intents}
}

// Run reads lines until EOF or cancellation. Unparseable lines are reported
// and skipped.
func (r *Reader) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		intent, err := ParseIntent(line)
		if err != nil {
			fmt.Printf("%v\n", err)
			continue
		}
		select {
		case r.intents <- intent:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// ParseIntent parses one input line into an intent.
func ParseIntent(line string) (client.Intent, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return client.Intent{}, fmt.Errorf("%w: empty line", ErrBadInput)
	}
	switch fields[0] {
	case game.CallPass, game.CallDouble, game.CallRedouble:
		if len(fields) != 1 {
			return client.Intent{}, fmt.Errorf("%w: %q", ErrBadInput, line)
		}
		return client.Intent{Call: &game.Call{Type: fields[0]}}, nil
	case game.CallBid:
		if len(fields) != 3 {
			return client.Intent{}, fmt.Errorf("%w: %q", ErrBadInput, line)
		}
		level, err := strconv.Atoi(fields[1])
		if err != nil || level < 1 || level > 7 {
			return client.Intent{}, fmt.Errorf("%w: bid level %q", ErrBadInput, fields[1])
		}
		return client.Intent{Call: &game.Call{
			Type: game.CallBid,
			Bid:  &game.Bid{Level: level, Strain: fields[2]},
		}}, nil
	case "play":
		if len(fields) != 3 {
			return client.Intent{}, fmt.Errorf("%w: %q", ErrBadInput, line)
		}
		return client.Intent{Card: &game.Card{Rank: fields[1], Suit: fields[2]}}, nil
	}
	return client.Intent{}, fmt.Errorf("%w: %q", ErrBadInput, line)
}
