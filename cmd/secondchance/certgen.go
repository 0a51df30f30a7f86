// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/secondchance/secondchance/internal/tls"
)

// NewCertGenCmd creates the certgen subcommand.
func NewCertGenCmd() *cobra.Command {
	var (
		certFile string
		keyFile  string
		hosts    []string
	)

	cmd := &cobra.Command{
		Use:   "certgen",
		Short: "Generate a self-signed TLS certificate",
		Long: `Generate a self-signed TLS certificate and private key for serving
the API over HTTPS in development. Pass the generated files to serve
via --tls-cert and --tls-key.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cert, err := tls.GenerateSelfSigned(hosts...)
			if err != nil {
				return err
			}
			if err := cert.Save(certFile, keyFile); err != nil {
				return err
			}
			cmd.Printf("Wrote %s and %s (valid until %s)\n",
				certFile, keyFile, cert.Certificate.NotAfter.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&certFile, "cert-file", "server.crt", "output certificate path")
	cmd.Flags().StringVar(&keyFile, "key-file", "server.key", "output private key path")
	cmd.Flags().StringSliceVar(&hosts, "host", nil, "DNS name or IP SAN (repeatable; default localhost,127.0.0.1)")

	return cmd
}
