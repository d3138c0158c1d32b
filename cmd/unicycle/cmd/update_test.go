package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRequiresNTDURL(t *testing.T) {
	// A missing NTD URL is a usage error, not a silent continue; cobra
	// reports it before RunE and Execute exits non-zero.
	err := updateCmd.Args(updateCmd, []string{})
	require.Error(t, err)

	assert.NoError(t, updateCmd.Args(updateCmd, []string{"https://example.com/ntd.xlsx"}))
	assert.Error(t, updateCmd.Args(updateCmd, []string{"one", "two"}))
}
