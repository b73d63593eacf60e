package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/akyairhashvil/aulaplan/internal/export"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/selection"
	"github.com/akyairhashvil/aulaplan/internal/util"
	"github.com/akyairhashvil/aulaplan/internal/weeks"
	"github.com/spf13/cobra"
)

func newGroupsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the groups (turmas) known to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			groups, err := a.api.ListGroups(cmd.Context())
			if err != nil {
				return err
			}
			remembered, _ := selection.NewStore(a.settings).RememberedGroupID(cmd.Context())
			printGroups(cmd.OutOrStdout(), groups, remembered)
			return nil
		},
	}
}

func newWeeksCmd(flags *rootFlags) *cobra.Command {
	var groupRef, search, unit, resource string
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Print the weeks of a group, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := resolveGroup(cmd.Context(), a, groupRef)
			if err != nil {
				return err
			}
			list, err := a.api.ListWeeks(cmd.Context(), g.ID)
			if err != nil {
				return err
			}
			f := util.ParseSearchQuery(search).Filter(models.FilterState{UnitFilter: unit, ResourceFilter: resource})
			all := weeks.NewCollection(list).All()
			printWeeks(cmd.OutOrStdout(), weeks.Apply(all, f), len(all))
			return nil
		},
	}
	cmd.Flags().StringVarP(&groupRef, "group", "g", "", "group id or name (default: remembered group)")
	cmd.Flags().StringVarP(&search, "search", "s", "", `search text; accepts uc:<unit> and recurso:<resource>`)
	cmd.Flags().StringVar(&unit, "unit", "", "exact curricular unit")
	cmd.Flags().StringVar(&resource, "resource", "", "resource substring")
	return cmd
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	var groupRef, format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a group's weeks to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), flags.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := resolveGroup(cmd.Context(), a, groupRef)
			if err != nil {
				return err
			}
			var list []models.Week
			if _, remote := f.Remote(); !remote {
				if list, err = a.api.ListWeeks(cmd.Context(), g.ID); err != nil {
					return err
				}
				list = weeks.NewCollection(list).All()
			}
			path, err := a.exporter().WriteFile(cmd.Context(), f, g, list, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(&groupRef, "group", "g", "", "group id or name (default: remembered group)")
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPDF), "one of "+strings.Join(names, ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: generated name in export.dir)")
	return cmd
}

// resolveGroup finds ref by id, then by case-insensitive name. An empty ref
// means the remembered group.
func resolveGroup(ctx context.Context, a *app, ref string) (models.Group, error) {
	groups, err := a.api.ListGroups(ctx)
	if err != nil {
		return models.Group{}, err
	}
	if ref == "" {
		if g, ok := selection.NewStore(a.settings).ResolveInitialGroup(ctx, groups); ok {
			return g, nil
		}
		return models.Group{}, fmt.Errorf("no group selected; pass --group")
	}
	for _, g := range groups {
		if g.ID == models.ID(ref) {
			return g, nil
		}
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, ref) {
			return g, nil
		}
	}
	return models.Group{}, fmt.Errorf("group %q not found", ref)
}

func printGroups(w io.Writer, groups []models.Group, remembered models.ID) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTURMA\tSITUAÇÃO")
	for _, g := range groups {
		status := "ativa"
		if g.Closed {
			status = "encerrada"
		}
		mark := ""
		if g.ID == remembered {
			mark = " *"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\n", g.ID, g.Name, mark, status)
	}
	_ = tw.Flush()
}

func printWeeks(w io.Writer, list []models.Week, total int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEMANA\tUNIDADE CURRICULAR\tRECURSOS\tCONCLUÍDA")
	for _, wk := range list {
		done := ""
		if wk.Completed {
			done = "✓"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", wk.WeekNumber, wk.CurricularUnit, strings.Join(weeks.SplitResources(wk.Resources), ", "), done)
	}
	_ = tw.Flush()
	if len(list) == total {
		fmt.Fprintf(w, "%d semanas\n", total)
	} else {
		fmt.Fprintf(w, "%d/%d semanas\n", len(list), total)
	}
}
