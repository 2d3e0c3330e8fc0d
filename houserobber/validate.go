package houserobber

import "fmt"

// Validate reports the first negative house value, if any.
// Nil and empty inputs are valid.
func Validate(values []int) error {
	for i, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: values[%d]=%d", ErrNegativeValue, i, v)
		}
	}

	return nil
}
