package extractor

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"

	"github.com/use-agent/vindecoder/models"
)

// mdConverter is goroutine-safe and shared by all RenderMarkdown calls.
var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(
			table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
		),
	),
)

// RenderMarkdown renders the fields as a two-column Markdown table.
func RenderMarkdown(result *models.ExtractionResult) (string, error) {
	var b strings.Builder
	b.WriteString("<table><thead><tr><th>Field</th><th>Value</th></tr></thead><tbody>")
	result.Each(func(key, value string) {
		b.WriteString("<tr><td>")
		b.WriteString(html.EscapeString(key))
		b.WriteString("</td><td>")
		b.WriteString(html.EscapeString(value))
		b.WriteString("</td></tr>")
	})
	b.WriteString("</tbody></table>")

	return mdConverter.ConvertString(b.String())
}
