package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"colorant-og/app"
	"colorant-og/service"
	"colorant-og/utils"
)

var catalogList bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch the dye catalog and report what it contains",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		source, err := app.NewCatalogSource(ctx, cfg)
		if err != nil {
			return fmt.Errorf("creating catalog source: %w", err)
		}

		data, err := source.FetchCatalog(ctx)
		if err != nil {
			return err
		}
		index, err := service.ParseCatalog(data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d dyes\n", source.Name(), len(index))
		if catalogList {
			ids := make([]string, 0, len(index))
			for id := range index {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				dye := index[id]
				fmt.Fprintf(out, "%-12s %s  %s\n", id, utils.RGBToHex(dye.RGB.R, dye.RGB.G, dye.RGB.B), dye.DisplayName)
			}
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogList, "list", false, "print every dye")
	rootCmd.AddCommand(catalogCmd)
}
