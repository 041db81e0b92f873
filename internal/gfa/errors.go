package gfa

import "errors"

var (
	// ErrNoInput is returned when Read is asked to parse an empty stream.
	ErrNoInput = errors.New("empty GFA file")

	// ErrKMismatch is returned when an E/L record's overlap length
	// disagrees with the k already derived from an earlier record.
	ErrKMismatch = errors.New("inconsistent overlap length across edge records")

	// ErrMalformed is returned for a record that cannot be tokenized
	// according to its own kind (too few fields, unparsable integer).
	ErrMalformed = errors.New("malformed GFA record")
)
