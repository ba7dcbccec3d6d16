// Package extractor turns a rendered lookup page into a flat field mapping.
package extractor

import (
	"strings"

	"github.com/use-agent/vindecoder/htmldoc"
	"github.com/use-agent/vindecoder/models"
)

// Table class markers on the lookup page.
const (
	MainTableClass       = "table-hover"
	BuildSheetTableClass = "table-striped"
)

// Keys that get special treatment in the main table.
const (
	keyIdentifierSections = "WMI/VDS/VIS"
	keyMileage            = "Mileage"
	keyMileageReportURL   = "MileageReportURL"
)

// buildSheetSelector skips the main table in case it carries both markers.
const buildSheetSelector = "table." + BuildSheetTableClass + ":not(." + MainTableClass + ")"

// Extract parses rawHTML and returns the fields of the main vehicle table
// followed by those of the optional build-sheet table. Build-sheet values
// overwrite main-table values with the same key.
//
// Extraction is all-or-nothing: any missing required table, cell or anchor
// yields a *models.ParseError and no data.
func Extract(rawHTML string) (*models.ExtractionResult, error) {
	doc, err := htmldoc.Parse(rawHTML)
	if err != nil {
		return nil, models.NewParseError("%v", err)
	}

	result := models.NewExtractionResult()

	main, ok := doc.FindFirstByClass("table", MainTableClass)
	if !ok {
		return nil, models.NewParseError("main table not found")
	}
	if err := extractMainTable(main, result); err != nil {
		return nil, err
	}

	buildSheet, ok, err := doc.FindFirst(buildSheetSelector)
	if err != nil {
		return nil, models.NewParseError("%v", err)
	}
	if ok {
		if err := extractBuildSheet(buildSheet, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func extractMainTable(table htmldoc.Node, result *models.ExtractionResult) error {
	for i, row := range table.FindAllByTag("tr") {
		cells, err := rowCells(row, "main", i)
		if err != nil {
			return err
		}

		key := strings.TrimRight(cells[0].Text(), ":")
		value := cells[1]

		switch key {
		case keyIdentifierSections:
			if err := extractIdentifierSections(value, i, result); err != nil {
				return err
			}
		case keyMileage:
			a, ok := value.FindFirstByTag("a")
			if !ok {
				return models.NewParseError("main table row %d: %s has no report link", i, keyMileage)
			}
			href, ok := a.Attr("href")
			if !ok {
				return models.NewParseError("main table row %d: %s link has no href", i, keyMileage)
			}
			result.Set(keyMileageReportURL, href)
		default:
			result.Set(key, value.Text())
		}
	}
	return nil
}

// extractIdentifierSections flattens the WMI/VDS/VIS cell: each anchor's
// title names the section ("World Manufacturer Identifier - ...") and its
// text holds the code.
func extractIdentifierSections(cell htmldoc.Node, row int, result *models.ExtractionResult) error {
	for _, a := range cell.FindAllByTag("a") {
		title, ok := a.Attr("title")
		if !ok {
			return models.NewParseError("main table row %d: %s link has no title", row, keyIdentifierSections)
		}
		name, _, _ := strings.Cut(title, " - ")
		result.Set(strings.TrimSpace(name), a.Text())
	}
	return nil
}

func extractBuildSheet(table htmldoc.Node, result *models.ExtractionResult) error {
	for i, row := range table.FindAllByTag("tr") {
		cells, err := rowCells(row, "build sheet", i)
		if err != nil {
			return err
		}
		result.Set(cells[0].Text(), cells[1].Text())
	}
	return nil
}

func rowCells(row htmldoc.Node, table string, i int) ([]htmldoc.Node, error) {
	cells := row.FindAllByTag("td")
	if len(cells) < 2 {
		return nil, models.NewParseError("%s table row %d: expected 2 cells, got %d", table, i, len(cells))
	}
	return cells, nil
}
