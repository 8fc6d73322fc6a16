package convert_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hicdata/httable/convert"
)

func TestExecRunner_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	err := convert.ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 0")
	require.NoError(t, err)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	err := convert.ExecRunner{}.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.ErrorIs(t, err, convert.ErrSubprocess)

	var ee *convert.ExitError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 3, ee.Code)
	require.Contains(t, ee.Cmd, "sh -c")
	require.Contains(t, ee.Stderr, "boom")
	require.Contains(t, ee.Error(), "code 3")
}

func TestExecRunner_StartFailure(t *testing.T) {
	err := convert.ExecRunner{}.Run(context.Background(), "/nonexistent/httable-test-binary")
	require.ErrorIs(t, err, convert.ErrSubprocess)

	var ee *convert.ExitError
	require.False(t, errors.As(err, &ee), "start failures carry no exit code")
}
