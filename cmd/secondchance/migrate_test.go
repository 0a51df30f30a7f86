// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secondchance/secondchance/pkg/errutil"
)

func TestMigrateCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cmd := NewMigrateCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
}

func TestMigrateCommand_HasDownFlag(t *testing.T) {
	cmd := NewMigrateCmd()
	require.NotNil(t, cmd.Flags().Lookup("down"))
}
