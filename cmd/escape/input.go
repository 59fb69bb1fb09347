package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/cbodonnell/greatescape/pkg/log"
	"github.com/cbodonnell/greatescape/pkg/queue"
)

var keyInputs = map[rune]types.Input{
	'w': types.MoveInput{Direction: types.DirectionUp},
	'a': types.MoveInput{Direction: types.DirectionLeft},
	's': types.MoveInput{Direction: types.DirectionDown},
	'd': types.MoveInput{Direction: types.DirectionRight},
	'f': types.InteractInput{},
	'1': types.PanelButtonInput{Button: 1},
	'2': types.PanelButtonInput{Button: 2},
	'3': types.PanelButtonInput{Button: 3},
}

// parseLine turns one line of console input into engine inputs. Every
// character is a key; moves in a line end with a stop, like releasing
// the key.
func parseLine(line string) (inputs []types.Input, quit bool, err error) {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "":
		return nil, false, nil
	case "q", "quit", "exit":
		return nil, true, nil
	case "save":
		return []types.Input{types.SaveInput{}}, false, nil
	}

	moved := false
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		input, ok := keyInputs[r]
		if !ok {
			return nil, false, fmt.Errorf("unknown key %q", r)
		}
		if _, ok := input.(types.MoveInput); ok {
			moved = true
		}
		inputs = append(inputs, input)
	}
	if moved {
		inputs = append(inputs, types.StopInput{})
	}
	return inputs, false, nil
}

// readInputs enqueues console input until quit or end of input. At end
// of input it waits for the queue to drain before quitting.
func readInputs(ctx context.Context, r io.Reader, inputs queue.Queue, quit context.CancelFunc) {
	defer quit()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parsed, stop, err := parseLine(scanner.Text())
		if err != nil {
			log.Warn("Ignoring input: %v", err)
			continue
		}
		if stop {
			return
		}
		for _, input := range parsed {
			if err := inputs.Enqueue(input); err != nil {
				log.Warn("Dropped input %T: %v", input, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("Failed to read input: %v", err)
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for inputs.Size() > 0 {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
