package save

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"lifepath/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dataDir := filepath.Join(t.TempDir(), "data")
	repo, err := NewFileRepo(dataDir, nil)
	require.NoError(t, err)

	s := model.NewGameState()
	s.Character = &model.Character{ID: "c1", Name: "Ada Lane", Age: 30, IsAlive: true}
	s.IsPlaying = true
	require.NoError(t, repo.Save(ctx, "alice", s))
	require.NoError(t, repo.Save(ctx, "bob", model.NewGameState()))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "alice.123.tmp"), []byte("partial"), 0o644))

	archive := filepath.Join(t.TempDir(), "backups", "saves.tar.gz")
	stored, err := Backup(dataDir, archive)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	target := filepath.Join(t.TempDir(), "restored")
	restored, err := Restore(archive, target)
	require.NoError(t, err)
	assert.Equal(t, 2, restored)
	assert.NoFileExists(t, filepath.Join(target, "alice.123.tmp"))

	want, err := Digest(dataDir)
	require.NoError(t, err)
	got, err := Digest(target)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	back, err := NewFileRepo(target, nil)
	require.NoError(t, err)
	loaded, ok, err := back.Load(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ada Lane", loaded.Character.Name)
}

func TestBackup_RequiresDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
	_, err := Backup(file, filepath.Join(t.TempDir(), "out.tar.gz"))
	assert.Error(t, err)
}

func TestRestore_RejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	f, err := os.Create(archive)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../escape.json",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len("bad")),
	}))
	_, err = tw.Write([]byte("bad"))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	_, err = Restore(archive, filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}
