package board

import (
	"errors"
	"fmt"
)

// StartingPlacement is the standard initial position.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

const rankDelimiter = '/'

var ErrMalformedPlacement = errors.New("malformed placement")

// ParsePlacement decodes a placement string. Ranks are listed from rank 7
// down to rank 0. The decoder never fails: unknown characters are skipped
// without consuming a file and writes that fall off the board are dropped.
func ParsePlacement(s string) Position {
	var pos Position
	rank, file := Size-1, 0
	for _, r := range s {
		switch {
		case r == rankDelimiter:
			rank--
			file = 0
		case r >= '0' && r <= '9':
			file += int(r - '0')
		default:
			piece, ok := PieceFromLetter(r)
			if !ok {
				continue
			}
			c := Coord{File: file, Rank: rank}
			if c.Valid() {
				pos.Set(c, Occupied(piece))
				file++
			}
		}
	}
	return pos
}

// ValidatePlacement reports every problem ParsePlacement would silently
// recover from. It returns nil for well-formed input.
func ValidatePlacement(s string) error {
	var errs []error
	rank, file := Size-1, 0
	endRank := func() {
		if rank >= 0 && rank < Size && file != Size {
			errs = append(errs, fmt.Errorf("rank %d covers %d files", rank+1, file))
		}
	}
	for i, r := range s {
		switch {
		case r == rankDelimiter:
			endRank()
			rank--
			file = 0
		case r >= '0' && r <= '9':
			file += int(r - '0')
		default:
			if _, ok := PieceFromLetter(r); !ok {
				errs = append(errs, fmt.Errorf("unknown character %q at offset %d", r, i))
				continue
			}
			if rank < 0 {
				errs = append(errs, fmt.Errorf("piece %q at offset %d is below rank 1", r, i))
			} else if file >= Size {
				errs = append(errs, fmt.Errorf("piece %q at offset %d is past file h", r, i))
			}
			file++
		}
	}
	endRank()
	if rank != 0 {
		errs = append(errs, fmt.Errorf("expected %d ranks, got %d", Size, Size-rank))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformedPlacement, errors.Join(errs...))
}
