package todo

import (
	"errors"
	"fmt"

	"github.com/tdo-app/tdo/internal/validation"
)

var (
	// ErrInvalidSortMode is returned when an unknown sort mode is requested.
	ErrInvalidSortMode = errors.New("invalid sort mode")

	// ErrInvalidDueBucket is returned when an unknown due bucket is requested.
	ErrInvalidDueBucket = errors.New("invalid due filter")

	// ErrNoSuchItem is returned when a position is out of range for the store.
	ErrNoSuchItem = errors.New("no todo at that position")
)

func formatInvalidSortModeError(mode SortMode) error {
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortMode, mode, validation.FormatValidValues(ValidSortModes()))
}

func formatInvalidDueBucketError(bucket DueBucket) error {
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidDueBucket, bucket, validation.FormatValidValues(ValidDueBuckets()))
}
