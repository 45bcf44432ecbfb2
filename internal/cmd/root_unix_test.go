//go:build unix

package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/flowpomo/internal/adapters/lock"
	"github.com/renato0307/flowpomo/internal/domain"
)

func TestAcquireInstanceLock_SecondTimerFails(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	release, err := acquireInstanceLock(locker, "alice")
	require.NoError(t, err)
	defer release()

	_, err = acquireInstanceLock(locker, "alice")
	require.ErrorIs(t, err, domain.ErrInstanceLocked)
	assert.Equal(t, 1, strings.Count(err.Error(), locker.Path("alice")), "lock path is reported once")
}

func TestAcquireInstanceLock_ReleaseAllowsNextTimer(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	release, err := acquireInstanceLock(locker, "alice")
	require.NoError(t, err)
	release()

	release, err = acquireInstanceLock(locker, "alice")
	require.NoError(t, err)
	release()
}
