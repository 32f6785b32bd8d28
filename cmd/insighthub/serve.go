package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(s *session) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				s.app.Config.HTTPServer.Port = port
			}
			srv, err := s.app.HTTPServer()
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "override http_server.port")
	return cmd
}
