// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secondchance/secondchance/internal/tls"
)

func TestCertGenCommand_WritesCertAndKey(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "server.crt")
	keyPath := filepath.Join(dir, "server.key")

	cmd := NewCertGenCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"--cert-file", certPath,
		"--key-file", keyPath,
		"--host", "api.example.com",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "server.crt")

	cert, err := tls.Load(certPath, keyPath)
	require.NoError(t, err)
	assert.Contains(t, cert.Certificate.DNSNames, "api.example.com")
}
