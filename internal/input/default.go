package input

import (
	"context"
	"errors"
	"fmt"
	"log"
	"unicode"

	"git.lost.host/meutraa/ledhero/internal/game"
	"github.com/eiannone/keyboard"
)

type Action int

const (
	Trigger Action = iota
	ToggleManual
	Step
	Start
	Quit
)

type Event struct {
	Action Action
	Lane   uint8 // Logical lane for Trigger
}

var ErrKeys = errors.New("invalid lane keys")

// Keymap turns key presses into events. Lane keys are given in raw button
// order, the first key being the lowest note; raw index i triggers logical
// lane NLanes-1-i. Lane keys take precedence over control keys.
type Keymap struct {
	lanes []rune
}

func NewKeymap(keys string) (*Keymap, error) {
	lanes := []rune(keys)
	if len(lanes) != game.NLanes {
		return nil, fmt.Errorf("%w: need %v keys, got %q", ErrKeys, game.NLanes, keys)
	}
	for i, r := range lanes {
		lanes[i] = unicode.ToLower(r)
		for _, c := range lanes[:i] {
			if c == lanes[i] {
				return nil, fmt.Errorf("%w: %q repeated", ErrKeys, r)
			}
		}
	}
	return &Keymap{lanes: lanes}, nil
}

// Lane maps a raw button index to its logical lane.
func Lane(raw int) uint8 {
	return uint8(game.NLanes - 1 - raw)
}

func (k *Keymap) Map(r rune, key keyboard.Key) (Event, bool) {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Action: Quit}, true
	case keyboard.KeyEnter:
		return Event{Action: Start}, true
	}

	r = unicode.ToLower(r)
	for i, c := range k.lanes {
		if r == c {
			return Event{Action: Trigger, Lane: Lane(i)}, true
		}
	}
	if action, ok := controls[r]; ok {
		return Event{Action: action}, true
	}
	return Event{}, false
}

var controls = map[rune]Action{
	'm': ToggleManual,
	'n': Step,
	's': Start,
	'q': Quit,
}

// Read forwards mapped key presses to events until ctx is done or the
// keyboard is closed. The returned func closes the keyboard.
func Read(ctx context.Context, k *Keymap, events chan<- Event) (func() error, error) {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case key, ok := <-keys:
				if !ok {
					return
				}
				if nil != key.Err {
					log.Println("unable to read keyboard input", key.Err)
					return
				}
				ev, ok := k.Map(key.Rune, key.Key)
				if !ok {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return keyboard.Close, nil
}
