package pkg

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
)

var ErrUnknownAction = errors.New("unknown pointer action")

func Encode(ev PointerEvent) ([]byte, error) {
	return json.Marshal(ev)
}

func Decode(data []byte, ev *PointerEvent) error {
	if err := json.Unmarshal(data, ev); err != nil {
		return err
	}
	if !ev.Action.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
	if ev.Action == ActionGeometry && ev.Geometry == nil {
		return fmt.Errorf("%w: geometry event without a geometry", ErrUnknownAction)
	}
	return nil
}

// Journal writes pointer events as newline-delimited JSON so a session can
// be replayed later.
type Journal struct {
	w io.Writer
}

func NewJournal(w io.Writer) *Journal {
	return &Journal{w: w}
}

func (j *Journal) Record(ev PointerEvent) error {
	b, err := Encode(ev)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = j.w.Write(b)
	return err
}

// Replay feeds every journaled event to s in order. It stops at the first
// line that cannot be decoded and returns the number of events handled.
func Replay(r io.Reader, s *Session) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		var ev PointerEvent
		if err := Decode(data, &ev); err != nil {
			return n, fmt.Errorf("journal line %d: %w", line, err)
		}
		if _, err := s.HandleEvent(ev); err != nil {
			log.Printf("Replay line %d: %v", line, err)
		}
		n++
	}
	return n, scanner.Err()
}
