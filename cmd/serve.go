package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/api"
)

var serveAddr string // Listen address for the HTTP API

// serveCmd starts the REST server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	Long: `Start the JSON API: POST /api/v1/simulate runs a workload and returns
the full Result, GET /api/v1/policies lists resolvable policies.`,
	Run: func(cmd *cobra.Command, args []string) {
		srv := api.NewServer()
		if err := srv.ListenAndServe(serveAddr); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address for the HTTP API")

	rootCmd.AddCommand(serveCmd)
}
