// Package vocafile reads and writes the vocabulary data file.
//
// The file is a run of records, each five fields long:
//
//	word%meaning%explanation%experience%level$
//
// Whitespace between records is ignored when reading. There is no
// escaping, so fields never contain '%', '$' or whitespace.
package vocafile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

const (
	fieldSep  = '%'
	recordEnd = '$'

	fieldsPerRecord = 5
)

// ErrCorruptData is returned when the data file does not follow the record grammar.
var ErrCorruptData = errors.New("corrupt data file")

var fieldNames = [fieldsPerRecord]string{"word", "meaning", "explanation", "experience", "level"}

// Decode reads a whole repository. Any malformed record aborts the decode;
// no partial repository is returned. Empty input yields an empty repository.
func Decode(r io.Reader) (*vocab.Repository, error) {
	br := bufio.NewReader(r)
	repo := vocab.NewRepository()

	for record := 1; ; record++ {
		if err := skipSpace(br); err != nil {
			if errors.Is(err, io.EOF) {
				return repo, nil
			}
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptData, record, err)
		}

		var f [fieldsPerRecord]string
		for i := range f {
			want := byte(fieldSep)
			if i == fieldsPerRecord-1 {
				want = recordEnd
			}
			val, got, err := readField(br)
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: record %d, %s: %v", ErrCorruptData, record, fieldNames[i], err)
			}
			if err != nil || got != want {
				return nil, fmt.Errorf("%w: record %d, %s: expected %q, found %s",
					ErrCorruptData, record, fieldNames[i], want, describe(got, err))
			}
			f[i] = val
		}

		e, err := parseEntry(f)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptData, record, err)
		}
		if err := repo.Restore(e); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrCorruptData, record, err)
		}
	}
}

// Encode writes every entry in order, with nothing between records.
func Encode(w io.Writer, repo *vocab.Repository) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < repo.Len(); i++ {
		e, err := repo.Get(i)
		if err != nil {
			return err
		}
		bw.WriteString(e.Word())
		bw.WriteByte(fieldSep)
		bw.WriteString(e.Meaning())
		bw.WriteByte(fieldSep)
		bw.WriteString(e.Explanation())
		bw.WriteByte(fieldSep)
		bw.WriteString(strconv.Itoa(e.Experience()))
		bw.WriteByte(fieldSep)
		bw.WriteString(strconv.Itoa(e.Level()))
		bw.WriteByte(recordEnd)
	}
	return bw.Flush()
}

// readField consumes bytes up to and including the next delimiter.
// It returns the field text and the delimiter that ended it.
func readField(br *bufio.Reader) (string, byte, error) {
	var buf []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			return string(buf), 0, err
		}
		if c == fieldSep || c == recordEnd {
			return string(buf), c, nil
		}
		buf = append(buf, c)
	}
}

func skipSpace(br *bufio.Reader) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return br.UnreadByte()
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func describe(got byte, err error) string {
	if err != nil {
		return "end of file"
	}
	return strconv.QuoteRune(rune(got))
}

func parseEntry(f [fieldsPerRecord]string) (vocab.Entry, error) {
	if f[0] == "" {
		return vocab.Entry{}, errors.New("empty word")
	}
	if f[1] == "" {
		return vocab.Entry{}, errors.New("empty meaning")
	}
	exp, err := parseCount(f[3])
	if err != nil {
		return vocab.Entry{}, fmt.Errorf("experience: %w", err)
	}
	level, err := parseCount(f[4])
	if err != nil {
		return vocab.Entry{}, fmt.Errorf("level: %w", err)
	}
	return vocab.RestoreEntry(f[0], f[1], f[2], exp, level)
}

// parseCount accepts unsigned decimal with no leading zeros, except "0".
func parseCount(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("leading zero: %q", s)
	}
	return strconv.Atoi(s)
}
