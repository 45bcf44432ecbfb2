//go:build unix

package lock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/flowpomo/internal/domain"
)

func TestFileLocker_SecondAcquireFails(t *testing.T) {
	locker := NewFileLocker(t.TempDir())

	release, err := locker.Acquire("alice")
	require.NoError(t, err)

	_, err = locker.Acquire("alice")
	assert.ErrorIs(t, err, domain.ErrInstanceLocked)

	require.NoError(t, release())

	again, err := locker.Acquire("alice")
	require.NoError(t, err)
	require.NoError(t, again())
}

func TestFileLocker_UsersDoNotShareLocks(t *testing.T) {
	locker := NewFileLocker(t.TempDir())

	releaseAlice, err := locker.Acquire("alice")
	require.NoError(t, err)
	defer releaseAlice()

	releaseBob, err := locker.Acquire("bob")
	require.NoError(t, err)
	defer releaseBob()
}

func TestFileLocker_Path(t *testing.T) {
	dir := t.TempDir()
	locker := NewFileLocker(dir)

	assert.Equal(t, filepath.Join(dir, "alice.lock"), locker.Path("alice"))
	assert.Equal(t, filepath.Join(dir, "a_b_c.lock"), locker.Path("a/b c"))
	assert.Equal(t, filepath.Join(dir, "anonymous.lock"), locker.Path(""))
}
