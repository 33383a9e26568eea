package eventlog_test

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/retrolog/pkg/csvline"
	"github.com/yaklabco/retrolog/pkg/eventlog"
)

func decodeAll(t *testing.T, text string, opts ...eventlog.Option) []*eventlog.Game {
	t.Helper()

	dec := eventlog.NewReaderDecoder(strings.NewReader(text), opts...)
	var games []*eventlog.Game
	for game, err := range dec.Games() {
		require.NoError(t, err)
		games = append(games, game)
	}
	return games
}

func decodeErr(t *testing.T, text string) error {
	t.Helper()

	dec := eventlog.NewReaderDecoder(strings.NewReader(text))
	for {
		_, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func TestDecoder_ConsecutiveIDs(t *testing.T) {
	t.Parallel()

	games := decodeAll(t, "id,A\nid,B\n")

	require.Len(t, games, 2)
	assert.Equal(t, "A", games[0].ID)
	assert.Equal(t, "B", games[1].ID)
	for _, game := range games {
		assert.Empty(t, game.Info)
		assert.Empty(t, game.Records)
	}
}

func TestDecoder_SingleGame(t *testing.T) {
	t.Parallel()

	games := decodeAll(t, "id,TEST01\ninfo,visteam,ANA\n")

	require.Len(t, games, 1)
	game := games[0]
	assert.Equal(t, "TEST01", game.ID)
	assert.Equal(t, 1, game.Line)
	require.Len(t, game.Info, 1)
	assert.Equal(t, "visteam", game.Info[0].Key())
	assert.Equal(t, "ANA", game.Info[0].Value())
	assert.Equal(t, 2, game.Info[0].LineNumber())
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "\n\n", "version,2\ncom,\"before any game\"\n"} {
		dec := eventlog.NewReaderDecoder(strings.NewReader(text))
		game, err := dec.Next()
		require.ErrorIs(t, err, io.EOF, "input %q", text)
		assert.Nil(t, game)
	}
}

func TestDecoder_EOFIsSticky(t *testing.T) {
	t.Parallel()

	dec := eventlog.NewReaderDecoder(strings.NewReader("id,A\n"))

	game, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", game.ID)

	for range 3 {
		_, err = dec.Next()
		require.ErrorIs(t, err, io.EOF)
	}
}

func TestDecoder_FormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		line    int
		message string
	}{
		{
			name:    "unknown record kind",
			text:    "id,A\nbogus,1\n",
			line:    2,
			message: `value "bogus" cannot be converted to RecordKind`,
		},
		{
			name:    "data record that is not earned runs",
			text:    "id,A\ndata,xx,foo,1\n",
			line:    2,
			message: `data kind "xx" is not "er"`,
		},
		{
			name:    "data record without kind",
			text:    "id,A\ndata\n",
			line:    2,
			message: "missing data kind column",
		},
		{
			name:    "unterminated quote",
			text:    "id,A\n\nstart,x,\"Name,0,1,1\n",
			line:    3,
			message: "unterminated quoted field",
		},
		{
			name:    "play before first id",
			text:    "version,2\nplay,1,0,x,00,,S8\n",
			line:    2,
			message: "play record before the first id record",
		},
		{
			name:    "id without value",
			text:    "id\n",
			line:    1,
			message: "missing game id column",
		},
		{
			name:    "empty id",
			text:    "id,\"\"\n",
			line:    1,
			message: "empty game id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := decodeErr(t, tt.text)
			require.Error(t, err)
			require.ErrorIs(t, err, eventlog.ErrFormat)

			var formatErr *eventlog.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.line, formatErr.Line)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDecoder_ErrorIsSticky(t *testing.T) {
	t.Parallel()

	dec := eventlog.NewReaderDecoder(strings.NewReader("id,A\nbogus\nid,B\n"))

	_, first := dec.Next()
	require.ErrorIs(t, first, eventlog.ErrFormat)

	_, second := dec.Next()
	assert.Equal(t, first, second)
}

func TestDecoder_ScannerErrorUnwraps(t *testing.T) {
	t.Parallel()

	err := decodeErr(t, "id,A\nplay,1,0,\"x\"y,00,,S8\n")

	require.ErrorIs(t, err, eventlog.ErrFormat)
	require.ErrorIs(t, err, csvline.ErrFormat)

	var lineErr *csvline.FormatError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 12, lineErr.Offset)
}

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	dec := eventlog.NewReaderDecoder(io.MultiReader(strings.NewReader("id,A\n"), iotest.ErrReader(boom)))

	_, err := dec.Next()
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, eventlog.ErrFormat)
}

func TestDecoder_WithSource(t *testing.T) {
	t.Parallel()

	dec := eventlog.NewReaderDecoder(strings.NewReader("id,A\nbogus\n"), eventlog.WithSource("2018NYA.EVA"))

	_, err := dec.Next()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "2018NYA.EVA:2: "), err.Error())
}

func TestDecoder_IgnoredRecords(t *testing.T) {
	t.Parallel()

	text := "id,A\nversion,2\ncom,\"rain delay\"\nbadj,x,R\npadj,y,L\nladj,0,3\nplay,1,0,x,00,,S8\n"

	dropped := decodeAll(t, text)
	require.Len(t, dropped, 1)
	require.Len(t, dropped[0].Records, 1)
	assert.Equal(t, eventlog.KindPlay, dropped[0].Records[0].Kind())

	kept := decodeAll(t, text, eventlog.WithRetainIgnored())
	require.Len(t, kept, 1)
	require.Len(t, kept[0].Records, 6)

	commentary, ok := kept[0].Records[1].(*eventlog.IgnoredRecord)
	require.True(t, ok)
	assert.Equal(t, eventlog.KindCommentary, commentary.Kind())
	assert.Equal(t, []string{"rain delay"}, commentary.Line().Columns())
}

func TestDecoder_WideLine(t *testing.T) {
	t.Parallel()

	values := make([]string, 40)
	for idx := range values {
		values[idx] = string(rune('a' + idx%26))
	}
	games := decodeAll(t, "id,A\ninfo,wide,"+strings.Join(values, ",")+"\ninfo,next,1\n")

	require.Len(t, games, 1)
	require.Len(t, games[0].Info, 2)
	assert.Equal(t, values, games[0].Info[0].Values())
	assert.Equal(t, "1", games[0].Info[1].Value())
}

func TestDecoder_File(t *testing.T) {
	t.Parallel()

	file, err := os.Open("testdata/NYA201804050.EVA")
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	dec := eventlog.NewReaderDecoder(file, eventlog.WithSource(file.Name()))
	var ids []string
	var first *eventlog.Game
	for game, err := range dec.Games() {
		require.NoError(t, err)
		if first == nil {
			first = game
		}
		ids = append(ids, game.ID)
	}

	assert.Equal(t, []string{"NYA201804050", "NYA201804060"}, ids)
	require.NotNil(t, first)
	assert.Equal(t, "testdata/NYA201804050.EVA", first.Source)
	assert.Len(t, first.Info, 4)
	assert.Equal(t, 5, first.Count(eventlog.KindStartingLineup)+first.Count(eventlog.KindSubstitution))
	assert.Equal(t, 4, first.Count(eventlog.KindPlay))
	assert.Equal(t, 2, first.Count(eventlog.KindData))

	home, ok := first.InfoValue("hometeam")
	assert.True(t, ok)
	assert.Equal(t, "NYA", home)

	_, ok = first.InfoValue("umphome")
	assert.False(t, ok)
}

func TestDecoder_GamesStopsEarly(t *testing.T) {
	t.Parallel()

	dec := eventlog.NewReaderDecoder(strings.NewReader("id,A\nid,B\nid,C\n"))
	for game, err := range dec.Games() {
		require.NoError(t, err)
		assert.Equal(t, "A", game.ID)
		break
	}

	game, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "B", game.ID)
}

func TestDecoder_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	kinds := make([]eventlog.RecordKind, workers)

	for idx := range workers {
		wg.Go(func() {
			dec := eventlog.NewReaderDecoder(strings.NewReader("id,A\nstart,x,\"X\",0,1,1\n"))
			game, err := dec.Next()
			errs[idx] = err
			if err == nil && len(game.Records) == 1 {
				kinds[idx] = game.Records[0].Kind()
			}
		})
	}
	wg.Wait()

	for idx := range workers {
		require.NoError(t, errs[idx])
		assert.Equal(t, eventlog.KindStartingLineup, kinds[idx])
	}
}

func BenchmarkDecoder(b *testing.B) {
	data, err := os.ReadFile("testdata/NYA201804050.EVA")
	require.NoError(b, err)
	text := strings.Repeat(string(data), 100)

	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	for b.Loop() {
		dec := eventlog.NewReaderDecoder(strings.NewReader(text))
		for _, err := range dec.Games() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
