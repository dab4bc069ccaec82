package persist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/encoder"
	"github.com/arloliu/dicol/errs"
)

// Artifact file names written by SaveSession.
const (
	DictionaryFile = "dictionary.txt"
	CodesFile      = "encoded_data.txt"
	BlobFile       = "column.dcl"
)

// Paths lists the files written by SaveSession.
type Paths struct {
	Dictionary string
	Codes      string
	Blob       string
}

// SaveSession writes the dictionary and encoded column of session as text
// files, and blob (when not nil) as the binary column file, into dir.
// dir is created if it does not exist.
func SaveSession(dir string, session *encoder.Session, blob []byte) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	paths := Paths{
		Dictionary: filepath.Join(dir, DictionaryFile),
		Codes:      filepath.Join(dir, CodesFile),
	}

	dict := session.Dictionary()
	if err := writeFile(paths.Dictionary, func(w io.Writer) error { return WriteDictionary(w, dict) }); err != nil {
		return Paths{}, err
	}

	codes := session.Column()
	if err := writeFile(paths.Codes, func(w io.Writer) error { return WriteCodes(w, codes) }); err != nil {
		return Paths{}, err
	}

	if blob != nil {
		paths.Blob = filepath.Join(dir, BlobFile)
		if err := os.WriteFile(paths.Blob, blob, 0o644); err != nil { //nolint: gosec
			return Paths{}, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
		}
	}

	return paths, nil
}

// LoadSession reads the text artifacts written by SaveSession from dir.
func LoadSession(dir string) (*encoder.Session, error) {
	var dict *column.Dictionary
	err := readFile(filepath.Join(dir, DictionaryFile), func(r io.Reader) (err error) {
		dict, err = ReadDictionary(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	var codes column.Encoded
	err = readFile(filepath.Join(dir, CodesFile), func(r io.Reader) (err error) {
		codes, err = ReadCodes(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	return encoder.Restore(dict, codes)
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	if err := fn(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %w", errs.ErrIOFailure, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	return nil
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
