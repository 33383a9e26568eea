package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/retrolog/pkg/eventlog"
	"github.com/yaklabco/retrolog/pkg/identity"
	"github.com/yaklabco/retrolog/pkg/runner"
)

type player struct {
	id   string
	name string
}

type team struct {
	id string
}

func newSession(created *atomic.Int32) *eventlog.Session[*player, *team] {
	return eventlog.NewSession[*player, *team](
		func(id, name string) (*player, error) {
			if created != nil {
				created.Add(1)
			}
			return &player{id: id, name: name}, nil
		},
		func(id string) (*team, error) {
			return &team{id: id}, nil
		},
	)
}

const nyaFile = `id,NYA201804050
info,visteam,TBA
info,hometeam,NYA
info,date,2018/04/05
start,ruthb101,"Babe Ruth",1,3,9
start,smitm004,"Mallex Smith",0,1,8
play,1,0,smitm004,00,X,63/G
play,1,1,ruthb101,32,BBCFBX,HR/F9
data,er,smitm004,1
`

const bosFile = `id,BOS201804060
info,visteam,NYA
info,hometeam,BOS
start,ruthb101,"Babe Ruth",0,3,9
com,"visiting again"
play,1,0,ruthb101,00,X,S7
id,BOS201804070
info,visteam,NYA
info,hometeam,BOS
start,ruthb101,"Babe Ruth",0,3,9
`

func writeEvents(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := runner.New(newSession(nil)).Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.False(t, result.HasErrors())
}

func TestRunner_Run_SharesSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{
		"2018NYA.EVA": nyaFile,
		"2018BOS.EVA": bosFile,
	})

	var created atomic.Int32
	session := newSession(&created)

	result, err := runner.New(session).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(dir, "2018BOS.EVA"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "2018NYA.EVA"), result.Files[1].Path)

	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 3, result.Stats.Games)
	assert.Equal(t, 2, result.Stats.Players)
	assert.Equal(t, 3, result.Stats.Teams)
	assert.Equal(t, int32(2), created.Load())

	ruth, ok := session.Players.Get(identityKey("ruthb101"))
	require.True(t, ok)
	assert.Equal(t, "Babe Ruth", ruth.name)

	nya := result.Files[1].Games[0]
	assert.Equal(t, "NYA201804050", nya.ID)
	assert.Equal(t, "2018/04/05", nya.Date)
	assert.Equal(t, "TBA", nya.Visitor)
	assert.Equal(t, "NYA", nya.Home)
	assert.Equal(t, 3, nya.Info)
	assert.Equal(t, 2, nya.Lineups)
	assert.Equal(t, 2, nya.Plays)
	assert.Equal(t, 1, nya.EarnedRuns)
	assert.Equal(t, 8, nya.Records())
	assert.Equal(t, 8+7, result.Stats.Records)
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{
		"2018NYA.EVA": nyaFile,
		"2018BOS.EVA": bosFile,
		"2018TBA.EVA": "id,TBA201804010\ninfo,hometeam,TBA\n",
	})

	serial, err := runner.New(newSession(nil)).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := runner.New(newSession(nil)).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, serial.Stats, parallel.Stats)
	assert.Equal(t, serial.Files, parallel.Files)
}

func TestRunner_Run_StopsOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{
		"2018AAA.EVA": "id,A\nbogus,1\n",
		"2018NYA.EVA": nyaFile,
	})

	result, err := runner.New(newSession(nil)).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.ErrorIs(t, err, eventlog.ErrFormat)
	require.NotNil(t, result)
	assert.True(t, result.HasErrors())

	require.Len(t, result.Files, 1)
	assert.Contains(t, result.Files[0].Error.Error(), "2018AAA.EVA:2:")
}

func TestRunner_Run_ContinueOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{
		"2018AAA.EVA": "id,A\nid,B\ndata,xx\n",
		"2018NYA.EVA": nyaFile,
	})

	result, err := runner.New(newSession(nil)).Run(context.Background(), runner.Options{
		WorkingDir:      dir,
		ContinueOnError: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	require.Len(t, result.Errors(), 1)
	require.ErrorIs(t, result.Errors()[0], eventlog.ErrFormat)

	// Games before the malformed line are still reported.
	require.Len(t, result.Files[0].Games, 1)
	assert.Equal(t, "A", result.Files[0].Games[0].ID)
}

func TestRunner_Run_Latin1(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// "Vizcaíno" in ISO-8859-1: í is the single byte 0xED. 0xA0 is a
	// no-break space and is trimmed like any other space.
	content := []byte("id,LAN199904050\nstart,vizcj001,\"Vizca\xedno\",0,2,6\nstart,\xa0hollt001\xa0,\"Todd Hollandsworth\",0,3,7\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1999LAN.EVN"), content, 0o644))

	session := newSession(nil)
	_, err := runner.New(session).Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Encoding:   runner.EncodingLatin1,
	})
	require.NoError(t, err)

	vizcaino, ok := session.Players.Get(identityKey("vizcj001"))
	require.True(t, ok)
	assert.Equal(t, "Vizcaíno", vizcaino.name)

	_, ok = session.Players.Get(identityKey("hollt001"))
	assert.True(t, ok)
}

func TestRunner_Run_OnGame(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{"2018BOS.EVA": bosFile, "2018NYA.EVA": nyaFile})

	var mu sync.Mutex
	var ids []string
	run := runner.New(newSession(nil))
	run.OnGame = func(_ string, game *eventlog.Game) error {
		mu.Lock()
		defer mu.Unlock()
		ids = append(ids, game.ID)
		return nil
	}

	_, err := run.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"BOS201804060", "BOS201804070", "NYA201804050"}, ids)

	boom := errors.New("stop")
	run.OnGame = func(string, *eventlog.Game) error { return boom }
	_, err = run.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, boom)
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{"2018NYA.EVA": nyaFile})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New(newSession(nil)).Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_Run_RetainIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEvents(t, dir, map[string]string{"2018BOS.EVA": bosFile})

	result, err := runner.New[*player, *team](nil).Run(context.Background(), runner.Options{
		WorkingDir:    dir,
		RetainIgnored: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Files[0].Games[0].Ignored)
	assert.Equal(t, 0, result.Stats.Players)
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]runner.Encoding{
		"":           runner.EncodingUTF8,
		"UTF-8":      runner.EncodingUTF8,
		"latin1":     runner.EncodingLatin1,
		"ISO-8859-1": runner.EncodingLatin1,
	} {
		got, err := runner.ParseEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := runner.ParseEncoding("cp1252")
	require.Error(t, err)
}

func identityKey(id string) identity.Key {
	return identity.KeyOf(id)
}
