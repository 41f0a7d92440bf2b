package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/skillpilot/internal/catalog"
	"github.com/alexanderramin/skillpilot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect, export and validate curriculum catalogs",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogExportCmd(app),
		newCatalogValidateCmd(),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the curricula of the active catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogList(app.Catalog))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show the categories and topics of a curriculum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, ok := app.Catalog.Curriculum(args[0])
			if !ok {
				return fmt.Errorf("unknown curriculum %q (see: skillpilot catalog list)", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCurriculum(args[0], entries))
			return nil
		},
	}
}

func newCatalogExportCmd(app *App) *cobra.Command {
	var out, id, name, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as JSON, YAML or TOML",
		Long: `Write the active catalog as JSON, YAML or TOML.

The format defaults to the extension of --out, or JSON when writing to stdout.
Edit the file and point SKILLPILOT_CATALOG at it to generate roadmaps from it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exportFormat(format, out)
			if err != nil {
				return err
			}
			data, err := catalog.ExportAs(f, id, name, app.Catalog)
			if err != nil {
				return err
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d curricula to %s\n", len(app.Catalog.Keys()), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or toml")
	cmd.Flags().StringVar(&id, "id", "skillpilot", "Catalog ID")
	cmd.Flags().StringVar(&name, "name", "SkillPilot catalog", "Catalog name")
	return cmd
}

// exportFormat resolves an explicit --format first, then the --out extension.
func exportFormat(format, out string) (catalog.Format, error) {
	if format != "" {
		return catalog.ParseFormat(format)
	}
	if out == "" {
		return catalog.FormatJSON, nil
	}
	return catalog.FormatOf(out)
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file for structural errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := catalog.LoadSchema(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if errs := catalog.ValidateSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(out, "  %s %v\n", formatter.StyleRed.Render("✗"), e)
				}
				return fmt.Errorf("%s has %d problem(s)", args[0], len(errs))
			}
			fmt.Fprintf(out, "%s %s is valid (%d curricula)\n",
				formatter.StyleGreen.Render("✔"), args[0], len(schema.Curricula))
			return nil
		},
	}
}
