package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/use-agent/vindecoder/extractor"
	"github.com/use-agent/vindecoder/models"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}
	switch format {
	case outputTable, outputJSON, outputMarkdown:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or markdown)", format)
	}
}

// printResult writes data to w in the requested format. vin is empty for
// pages parsed from disk.
func printResult(w io.Writer, format, vin string, data *models.ExtractionResult) error {
	switch format {
	case outputJSON:
		out, err := json.MarshalIndent(jsonBody(vin, data), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case outputMarkdown:
		md, err := extractor.RenderMarkdown(data)
		if err != nil {
			return err
		}
		if vin != "" {
			md = fmt.Sprintf("# VIN %s\n\n%s", vin, md)
		}
		_, err = fmt.Fprintln(w, md)
		return err
	default:
		t := newTable(w)
		if vin != "" {
			t.SetTitle("VIN " + vin)
		}
		t.AppendHeader(table.Row{"Field", "Value"})
		data.Each(func(key, value string) {
			t.AppendRow(table.Row{key, value})
		})
		t.Render()
		return nil
	}
}

// jsonBody is the lookup response for a VIN, or the bare extraction for a
// page read from disk.
func jsonBody(vin string, data *models.ExtractionResult) any {
	if vin == "" {
		return models.ExtractResponse{Status: models.StatusOK, Data: data}
	}
	return models.VinResponse{Status: models.StatusOK, VIN: vin, Data: data}
}
