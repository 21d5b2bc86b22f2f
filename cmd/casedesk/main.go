package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adviceworks/casedesk/api"
	"github.com/adviceworks/casedesk/clients"
	"github.com/adviceworks/casedesk/pkg/caseapp"
	"github.com/adviceworks/casedesk/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL   string
		openLink string
		offline  bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "casedesk",
		Short: "Terminal workspace for advisory case files",
		Long: "casedesk is a keyboard-driven workspace for client case files:\n" +
			"browse clients, run the Critical Yield Calculation form, and review\n" +
			"the document checklist for each case.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := buildSource(apiURL, offline)
			if err != nil {
				return err
			}

			app, err := caseapp.New(
				caseapp.WithSource(source),
				caseapp.WithPageSize(pageSize),
				caseapp.WithOpenQuery(openLink),
			)
			if err != nil {
				return err
			}
			return app.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://127.0.0.1:8087", "base URL of the casedeskd client API")
	cmd.Flags().StringVar(&openLink, "open", "", "share-link query to open on startup, e.g. \"client=tom-brierley&case=cyc\"")
	cmd.Flags().BoolVar(&offline, "offline", false, "run against an in-memory demo store instead of the API")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "clients fetched per page")

	return cmd
}

// buildSource picks the client backend: the HTTP API by default, or a seeded
// in-memory store when running offline.
func buildSource(apiURL string, offline bool) (tui.ClientSource, error) {
	if offline {
		store := clients.NewMemoryStore()
		if err := clients.SeedDemo(context.Background(), store); err != nil {
			return nil, err
		}
		return tui.StoreSource{Store: store}, nil
	}
	return api.NewClient(apiURL), nil
}
