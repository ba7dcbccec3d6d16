package htmldoc

import (
	"testing"
)

const fixture = `<html><body>
<table class="table table-striped"><tr><td>Trim</td><td>LE</td></tr></table>
<table class="table table-hover" id="main">
  <tr><td> <b>Make</b>: </td><td>  Toyota  </td></tr>
  <tr><td>Mileage:</td><td><a href="http://x/report" title="Report - full">12345 <span>mi</span></a></td></tr>
  <tr><td>Script</td><td>visible<script>var hidden = 1;</script></td></tr>
</table>
</body></html>`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestFindFirstByClass(t *testing.T) {
	doc := mustParse(t, fixture)

	main, ok := doc.FindFirstByClass("table", "table-hover")
	if !ok {
		t.Fatal("expected table-hover table to be found")
	}
	if id, _ := main.Attr("id"); id != "main" {
		t.Errorf("found table id = %q, want main", id)
	}

	// "table" alone matches both tables; the first in document order wins.
	firstTable, ok := doc.FindFirstByClass("table", "table")
	if !ok {
		t.Fatal("expected a table with class table")
	}
	if firstTable.Is(main) {
		t.Error("first table should be the striped one, not the main table")
	}
}

func TestFindFirstByClass_Absent(t *testing.T) {
	doc := mustParse(t, fixture)

	if _, ok := doc.FindFirstByClass("table", "table-bordered"); ok {
		t.Error("table-bordered should not be found")
	}
	// Class must match a whole token, not a substring.
	if _, ok := doc.FindFirstByClass("table", "hover"); ok {
		t.Error("partial class token should not match")
	}
}

func TestFindFirst_Selector(t *testing.T) {
	doc := mustParse(t, fixture)

	n, ok, err := doc.FindFirst("table.table-striped:not(.table-hover)")
	if err != nil {
		t.Fatalf("FindFirst: %v", err)
	}
	if !ok {
		t.Fatal("expected striped table")
	}
	if got := n.Text(); got != "TrimLE" {
		t.Errorf("Text() = %q, want TrimLE", got)
	}

	if _, _, err := doc.FindFirst("table[[["); err == nil {
		t.Error("expected error for invalid selector")
	}
}

func TestNode_FindAllByTagAndText(t *testing.T) {
	doc := mustParse(t, fixture)
	main, _ := doc.FindFirstByClass("table", "table-hover")

	rows := main.FindAllByTag("tr")
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	tests := []struct {
		name string
		row  int
		cell int
		want string
	}{
		{"nested markup joined", 0, 0, "Make:"},
		{"surrounding space trimmed", 0, 1, "Toyota"},
		{"fragments joined without separator", 1, 1, "12345mi"},
		{"script content skipped", 2, 1, "visible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := rows[tt.row].FindAllByTag("td")
			if got := cells[tt.cell].Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_Attr(t *testing.T) {
	doc := mustParse(t, fixture)
	main, _ := doc.FindFirstByClass("table", "table-hover")

	a, ok := main.FindFirstByTag("a")
	if !ok {
		t.Fatal("expected anchor")
	}
	if href, ok := a.Attr("href"); !ok || href != "http://x/report" {
		t.Errorf("Attr(href) = %q, %v", href, ok)
	}
	if _, ok := a.Attr("rel"); ok {
		t.Error("Attr(rel) should be absent")
	}

	if _, ok := main.FindFirstByTag("img"); ok {
		t.Error("no img expected")
	}
}

func TestNode_OuterHTML(t *testing.T) {
	doc := mustParse(t, `<div><p class="x">hi</p></div>`)
	p, ok := doc.FindFirstByClass("p", "x")
	if !ok {
		t.Fatal("expected p.x")
	}
	got, err := p.OuterHTML()
	if err != nil {
		t.Fatalf("OuterHTML: %v", err)
	}
	if got != `<p class="x">hi</p>` {
		t.Errorf("OuterHTML() = %q", got)
	}
}
