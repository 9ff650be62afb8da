package render

import (
	"strings"
	"testing"
	"time"

	"github.com/jinjiao007/meme-catalog/internal/meme"
)

func dated(name string, y int, m time.Month, d int) Entry {
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Entry{Module: meme.Module{Name: name, Info: meme.Info{DateCreated: &date}}}
}

func TestSortByDate_DescendingUndatedLast(t *testing.T) {
	entries := []Entry{
		{Module: meme.Module{Name: "undated"}},
		dated("older", 2023, 6, 15),
		dated("newer", 2024, 1, 1),
	}
	SortByDate(entries)

	want := []string{"newer", "older", "undated"}
	for i, name := range want {
		if entries[i].Module.Name != name {
			t.Errorf("position %d: got %s, want %s", i, entries[i].Module.Name, name)
		}
	}
}

func TestSortByDate_StableForTies(t *testing.T) {
	entries := []Entry{
		dated("first", 2024, 1, 1),
		dated("second", 2024, 1, 1),
	}
	SortByDate(entries)

	if entries[0].Module.Name != "first" || entries[1].Module.Name != "second" {
		t.Errorf("tie order changed: %s, %s", entries[0].Module.Name, entries[1].Module.Name)
	}
}

func TestDocument_ZeroEntries(t *testing.T) {
	doc := Document(nil, Options{})

	if !strings.Contains(doc, "**Total memes: 0**") {
		t.Error("missing zero count")
	}
	rows := 0
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "|") {
			rows++
		}
	}
	// Header row and separator row only
	if rows != 2 {
		t.Errorf("expected 2 table lines, got %d", rows)
	}
	if !strings.Contains(doc, "<style>") {
		t.Error("missing style block")
	}
}

func TestTable_RowContent(t *testing.T) {
	one := 1
	zero := 0
	date := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	entries := []Entry{{
		Module: meme.Module{
			Name: "petpet",
			Info: meme.Info{
				Keywords:     []string{"petpet", "pat"},
				MinImages:    &one,
				MinTexts:     &zero,
				DefaultTexts: []string{"hello\nworld"},
				DateCreated:  &date,
			},
		},
		Preview: "https://raw.githubusercontent.com/o/r/master/memes/petpet/images/a.jpg",
		Link:    "https://github.com/o/r/tree/master/memes/petpet",
	}}

	table := Table(entries, Options{ImageHeight: 50})
	lines := strings.Split(table, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 table lines, got %d", len(lines))
	}
	row := lines[2]

	for _, want := range []string{
		"| 1 |",
		"petpet</br>pat",
		"| 1 | 0 |",
		"hello</br>world",
		"[petpet](https://github.com/o/r/tree/master/memes/petpet)",
		`<img src="https://raw.githubusercontent.com/o/r/master/memes/petpet/images/a.jpg" height="50">`,
		"| 2023-06-15 |",
	} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q:\n%s", want, row)
		}
	}
}

func TestTable_PlaceholdersForMissingValues(t *testing.T) {
	entries := []Entry{{Module: meme.Module{Name: "bare"}, Link: "https://example.com/bare"}}

	table := Table(entries, Options{})
	row := strings.Split(table, "\n")[2]

	// Preview, keywords, both counts, default texts, and date are all absent.
	if got := strings.Count(row, "&nbsp;"); got != 6 {
		t.Errorf("expected 6 placeholder cells, got %d:\n%s", got, row)
	}
}

func TestDocument_Deterministic(t *testing.T) {
	entries := []Entry{
		{Module: meme.Module{Name: "undated", Info: meme.Info{Keywords: []string{"x"}}}},
		dated("dated", 2024, 2, 29),
	}
	first := Document(entries, Options{})
	second := Document(entries, Options{})
	if first != second {
		t.Error("rendering the same input twice produced different output")
	}
}

func TestHTML_RendersTable(t *testing.T) {
	entries := []Entry{{
		Module:  meme.Module{Name: "petpet", Info: meme.Info{Keywords: []string{"pat"}}},
		Preview: "https://raw.githubusercontent.com/o/r/master/memes/petpet/images/a.jpg",
		Link:    "https://github.com/o/r/tree/master/memes/petpet",
	}}
	doc := Document(entries, Options{})

	page, err := HTML([]byte(doc))
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	html := string(page)
	for _, want := range []string{"<!DOCTYPE html>", "<table>", "<img src="} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML preview missing %q", want)
		}
	}
}
