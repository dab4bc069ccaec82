// Package persist writes an encoding session to disk and reads it back.
//
// Three artifacts are produced:
//
//   - dictionary.txt: one "<key> : <code>" line per key, in code order
//   - encoded_data.txt: one decimal code per line, in row order
//   - column.dcl: the binary column blob built by package blob
package persist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/ingest"
)

const separator = " : "

// WriteDictionary writes one "<key> : <code>" line per key in code order.
func WriteDictionary(w io.Writer, dict *column.Dictionary) error {
	bw := bufio.NewWriter(w)

	var line []byte
	for key, code := range dict.All() {
		line = append(line[:0], key...)
		line = append(line, separator...)
		line = strconv.AppendUint(line, uint64(code), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadDictionary parses the output of WriteDictionary.
//
// Each line is split on its last " : ", so keys may themselves contain the
// separator. Codes must be dense and listed in ascending order.
func ReadDictionary(r io.Reader) (*column.Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), ingest.MaxLineSize+64)

	var keys []string
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		idx := strings.LastIndex(line, separator)
		if idx < 0 {
			return nil, fmt.Errorf("%w: line %d: missing %q", errs.ErrInvalidDictionaryLine, lineNo, separator)
		}

		code, err := strconv.ParseUint(line[idx+len(separator):], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errs.ErrInvalidDictionaryLine, lineNo, err)
		}

		if code != uint64(len(keys)) {
			return nil, fmt.Errorf("%w: line %d: code %d, expected %d", errs.ErrInvalidDictionaryLine, lineNo, code, len(keys))
		}

		keys = append(keys, line[:idx])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	dict, ok := column.NewDictionary(keys)
	if !ok {
		return nil, fmt.Errorf("%w: duplicate key", errs.ErrInvalidDictionaryLine)
	}

	return dict, nil
}

// WriteCodes writes one decimal code per line in row order.
func WriteCodes(w io.Writer, codes column.Encoded) error {
	bw := bufio.NewWriter(w)

	var buf [16]byte
	for _, code := range codes {
		line := strconv.AppendUint(buf[:0], uint64(code), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadCodes parses the output of WriteCodes.
func ReadCodes(r io.Reader) (column.Encoded, error) {
	scanner := bufio.NewScanner(r)

	codes := column.Encoded{}
	for lineNo := 1; scanner.Scan(); lineNo++ {
		code, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errs.ErrInvalidCodeLine, lineNo, err)
		}
		codes = append(codes, uint32(code))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	return codes, nil
}
