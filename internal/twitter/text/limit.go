package text

import (
	"fmt"

	"github.com/pkg/errors"
)

const DefaultCharacterLimit = 280

var ErrStatusTooLong = errors.New("status is too long")

type LengthError struct {
	Length int
	Limit  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("text must be less than or equal to %d characters, estimated %d", e.Limit, e.Length)
}

func (e *LengthError) Unwrap() error {
	return ErrStatusTooLong
}

// CheckLength returns the estimated length of status, or a *LengthError when
// it does not fit in limit.
func CheckLength(status string, shortURLLength int, limit int) (int, error) {
	length := EstimateLength(status, shortURLLength)
	if length > limit {
		return length, &LengthError{Length: length, Limit: limit}
	}
	return length, nil
}
