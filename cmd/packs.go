package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	tomlregistry "github.com/bnema/serverpacks/internal/adapters/registry/toml"
	packsrender "github.com/bnema/serverpacks/internal/adapters/render/packs"
	"github.com/bnema/serverpacks/internal/application"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/spf13/cobra"
)

type packJSON struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"mod_time"`
	Active    bool      `json:"active"`
	State     string    `json:"state"`
	AddedAt   time.Time `json:"added_at,omitzero"`
	Resources int       `json:"resources,omitempty"`
}

func newPacksCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packs",
		Short: "Inspect local server packs",
	}

	cmd.AddCommand(newPacksListCmd(app), newPacksFindCmd(app))

	return cmd
}

func newPacksListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List packs in the packs directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.catalog(nil).List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writePacksJSON(cmd, statuses)
			}

			output := app.packsRenderer(statuses, packsrender.RenderOptions{Now: app.now(), Dir: app.store.Root()})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPacksFindCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <resource>",
		Short: "Show which local pack provides a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := tomlregistry.NewRegistry("", ports.SystemClock{})
			if err != nil {
				return err
			}

			id, err := app.catalog(index).FindResource(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is provided by %s\n", args[0], id)
			return err
		},
	}
}

func writePacksJSON(cmd *cobra.Command, statuses []application.PackStatus) error {
	packs := make([]packJSON, 0, len(statuses))
	for _, status := range statuses {
		packs = append(packs, packJSON{
			ID:        string(status.Pack.ID),
			Path:      status.Pack.Path,
			Size:      status.Pack.Size,
			ModTime:   status.Pack.ModTime,
			Active:    status.Pack.Active,
			State:     string(status.State),
			AddedAt:   status.AddedAt,
			Resources: status.Resources,
		})
	}

	encoded, err := json.MarshalIndent(packs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode packs: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}
