package main

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vselect/internal/domain"
)

var selectedColor = color.New(color.FgGreen, color.Bold)

func runList(cmd *cobra.Command, args []string, fl flags) error {
	defer setupLogging()()
	cat, err := loadCatalogue(cmd.Context(), args, fl)
	if err != nil {
		return err
	}
	renderTable(cmd.OutOrStdout(), cat)
	return nil
}

// renderTable prints one row per option; the GROUP column only when grouped
func renderTable(w io.Writer, cat *domain.Catalogue) {
	grouped := cat.HasGroups()

	header := []string{"VALUE", "LABEL"}
	if grouped {
		header = append(header, "GROUP")
	}
	header = append(header, "DISABLED")

	var data [][]string
	for _, o := range cat.Options {
		row := []string{o.Value, o.DisplayLabel()}
		if grouped {
			row = append(row, o.Group)
		}
		row = append(row, strconv.FormatBool(o.Disabled))
		data = append(data, row)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
