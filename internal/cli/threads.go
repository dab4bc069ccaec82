// Package cli holds the interactive helpers of the dicol command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/dicol/errs"
)

// ValidateThreadCount checks that n is within [1, maxThreads].
func ValidateThreadCount(n, maxThreads int) error {
	if n < 1 || n > maxThreads {
		return fmt.Errorf("%w: %d is outside [1, %d]", errs.ErrInvalidThreadCount, n, maxThreads)
	}

	return nil
}

// PromptThreadCount asks on out for a thread count in [1, maxThreads] and
// reads the answer from in, asking again until a valid count is entered.
//
// It returns errs.ErrIOFailure when in is exhausted before a valid answer.
func PromptThreadCount(in io.Reader, out io.Writer, maxThreads int) (int, error) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintf(out, "Enter the number of threads (1-%d): ", maxThreads)

		line, err := reader.ReadString('\n')
		answer := strings.TrimSpace(line)

		if answer != "" {
			n, convErr := strconv.Atoi(answer)
			if convErr == nil {
				convErr = ValidateThreadCount(n, maxThreads)
			}
			if convErr == nil {
				return n, nil
			}
			fmt.Fprintf(out, "Invalid input. Please enter a number between 1 and %d.\n", maxThreads)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: no valid thread count entered", errs.ErrIOFailure)
			}

			return 0, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
		}
	}
}
