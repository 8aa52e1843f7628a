package vocafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocamaster/vocamaster/internal/vocab"
)

func TestDecode_TwoRecords(t *testing.T) {
	repo, err := Decode(strings.NewReader("cat%gato%%0%1$dog%perro%%0%1$"))
	require.NoError(t, err)
	require.Equal(t, 2, repo.Len())

	for i, want := range []struct{ word, meaning string }{{"cat", "gato"}, {"dog", "perro"}} {
		e, err := repo.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want.word, e.Word())
		assert.Equal(t, want.meaning, e.Meaning())
		assert.Empty(t, e.Explanation())
		assert.Equal(t, 0, e.Experience())
		assert.Equal(t, 1, e.Level())
	}
	assert.False(t, repo.Dirty(), "decoding must not mark dirty")
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "  \n\t\n"} {
		repo, err := Decode(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, 0, repo.Len())
	}
}

func TestDecode_SkipsWhitespaceBetweenRecords(t *testing.T) {
	in := "cat%gato%feline%30%2$\n\n  dog%perro%%0%1$\r\n\tbird%pajaro%%100%5$\n"
	repo, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, repo.Len())

	e, _ := repo.Get(0)
	assert.Equal(t, "feline", e.Explanation())
	assert.Equal(t, 30, e.Experience())
	assert.Equal(t, 2, e.Level())

	e, _ = repo.Get(2)
	assert.Equal(t, "bird", e.Word())
	assert.Equal(t, 100, e.Experience())
	assert.Equal(t, 5, e.Level())
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"terminator instead of separator", "word$"},
		{"eof after word", "word"},
		{"eof inside record", "cat%gato%%0"},
		{"separator instead of terminator", "cat%gato%%0%1%"},
		{"missing terminator at eof", "cat%gato%%0%1"},
		{"second record truncated", "cat%gato%%0%1$dog%"},
		{"non-numeric experience", "cat%gato%%x%1$"},
		{"leading zero", "cat%gato%%05%1$"},
		{"signed level", "cat%gato%%0%+1$"},
		{"level out of range", "cat%gato%%0%6$"},
		{"experience out of range", "cat%gato%%101%1$"},
		{"empty word", "%gato%%0%1$"},
		{"empty meaning", "cat%%%0%1$"},
		{"duplicate word", "cat%gato%%0%1$cat%felino%%0%1$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Decode(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, ErrCorruptData)
			assert.Nil(t, repo, "no partial repository on corruption")
		})
	}
}

func TestDecode_ReadErrorIsCorrupt(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("cat%gato%%0%1$dog%per"),
		iotest.ErrReader(errors.New("device error")),
	)
	repo, err := Decode(r)
	assert.ErrorIs(t, err, ErrCorruptData)
	assert.Nil(t, repo)
}

func TestDecode_ErrorNamesPosition(t *testing.T) {
	_, err := Decode(strings.NewReader("cat%gato%%0%1$dog$"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 2")
	assert.Contains(t, err.Error(), "word")
}

func TestEncode_Format(t *testing.T) {
	repo := vocab.NewRepository()
	require.NoError(t, repo.Add("cat", "gato", "feline"))
	require.NoError(t, repo.Add("dog", "perro", ""))
	e, _ := repo.Get(0)
	e.GainScore()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, repo))
	assert.Equal(t, "cat%gato%feline%50%1$dog%perro%%0%1$", buf.String())
}

func TestRoundTrip(t *testing.T) {
	repo := vocab.NewRepository()
	for i := 0; i < 30; i++ {
		exp := (i * 37) % 101
		level := i%vocab.MaxLevel + 1
		expl := ""
		if i%3 == 0 {
			expl = fmt.Sprintf("note-%d", i)
		}
		e, err := vocab.RestoreEntry(fmt.Sprintf("word%d", i), fmt.Sprintf("meaning%d", i), expl, exp, level)
		require.NoError(t, err)
		require.NoError(t, repo.Restore(e))
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, repo))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, repo.Entries(), decoded.Entries())
}

func TestEncode_WriteError(t *testing.T) {
	repo := vocab.NewRepository()
	require.NoError(t, repo.Add("cat", "gato", ""))
	err := Encode(failingWriter{}, repo)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
