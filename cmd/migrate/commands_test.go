package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, use := range []string{"up", "down", "step-up", "drop", "version", "force"} {
		cmd, _, err := root.Find([]string{use})

		require.NoError(t, err)
		assert.Equal(t, use, cmd.Name())
	}
}

func TestRootCommandRejectsUnknownDirection(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"sideways"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestMigrationCommandRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"up", "extra"})

	err := root.Execute()

	require.Error(t, err)
}

func TestForceRequiresVersion(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"force"})

	err := root.Execute()

	require.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "5", want: 5},
		{raw: "-1", want: -1},
		{raw: "-2", wantErr: true},
		{raw: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseVersion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
