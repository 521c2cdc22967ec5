package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/flexrate/app"
)

var gridPrice string

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the indexed flex rate grid",
	RunE:  runGrid,
}

func init() {
	gridCmd.Flags().StringVar(&gridPrice, "price", "", "print only the flex rate matched for this row price")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	m, err := app.LoadGrid(filepath.Join(dir, cfg.Input.GridFile), cfg.Rules.TargetRatio)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if gridPrice != "" {
		label := m.Rate(gridPrice)
		if label == "" {
			return fmt.Errorf("price %q is not numeric", gridPrice)
		}
		_, err := fmt.Fprintln(out, label)
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "PRICE\tROW\tCOLUMN\tRATE"); err != nil {
		return err
	}
	for _, e := range m.Entries() {
		price := strconv.FormatFloat(e.Price, 'f', -1, 64)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", price, e.RowHeader, e.ColHeader, e.Label()); err != nil {
			return err
		}
	}
	return tw.Flush()
}
