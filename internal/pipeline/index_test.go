package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

var testPage = IndexPage{
	SiteTitle:             "Elm Lake Labs Reports",
	Period:                "February 2026",
	Author:                "Henry Clawson",
	AuthorTitle:           "Executive Assistant",
	Date:                  "February 14, 2026",
	Copyright:             "2026 Elm Lake Labs",
	PrimaryHeading:        "Elm Lake Labs",
	SecondaryHeading:      "Partner Reports",
	SecondaryOrganization: "Partner Co",
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size int64
		want string
	}{
		{size: 0, want: "N/A"},
		{size: -1, want: "N/A"},
		{size: 1048576, want: "1.0 MB"},
		{size: 1572864, want: "1.5 MB"},
		{size: 52429, want: "0.1 MB"},
		{size: 1, want: "0.0 MB"},
		{size: 10 * 1048576, want: "10.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestPartitionEntries(t *testing.T) {
	t.Parallel()

	entries := []IndexEntry{
		{Title: "A", Organization: "Elm Lake Labs"},
		{Title: "B", Organization: "Partner Co"},
		{Title: "C", Organization: "Elm Lake Labs"},
		{Title: "D", Organization: "partner co"},
		{Title: "E", Organization: "Partner Co"},
	}

	primary, secondary := PartitionEntries(entries, "Partner Co")

	titles := func(es []IndexEntry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Title)
		}
		return out
	}

	if got, want := titles(primary), []string{"A", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("primary = %v, want %v", got, want)
	}
	if got, want := titles(secondary), []string{"B", "E"}; !reflect.DeepEqual(got, want) {
		t.Errorf("secondary = %v, want %v", got, want)
	}
}

func TestIndexBuilder_Build(t *testing.T) {
	t.Parallel()

	ts := loadDefaultSet(t)
	b, err := NewIndexBuilder(ts.Index, "", testPage)
	if err != nil {
		t.Fatalf("NewIndexBuilder() unexpected error: %v", err)
	}

	got, err := b.Build([]IndexEntry{
		{Title: "One", Description: "first", Organization: "Elm Lake Labs", Artifact: "one.pdf", Size: 1048576},
		{Title: "Two", Description: "second", Organization: "Partner Co", Artifact: "two.pdf", Size: 0},
		{Title: "Three", Description: "third", Organization: "Elm Lake Labs", Artifact: "three.pdf", Size: 2 * 1048576},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	doc := parseDoc(t, got)

	sections := doc.Find(".section-title")
	if sections.Length() != 2 {
		t.Fatalf("sections = %d, want 2", sections.Length())
	}
	if sections.Eq(0).Text() != "Elm Lake Labs" || sections.Eq(1).Text() != "Partner Reports" {
		t.Errorf("section order = [%q %q]", sections.Eq(0).Text(), sections.Eq(1).Text())
	}

	cards := doc.Find(".card")
	if cards.Length() != 3 {
		t.Fatalf("cards = %d, want 3", cards.Length())
	}

	wantCards := []struct {
		title, href, size string
	}{
		{"One", "one.pdf", "1.0 MB"},
		{"Three", "three.pdf", "2.0 MB"},
		{"Two", "two.pdf", "N/A"},
	}
	for i, want := range wantCards {
		card := cards.Eq(i)
		if got := card.Find("h3").Text(); got != want.title {
			t.Errorf("card %d title = %q, want %q", i, got, want.title)
		}
		if href, _ := card.Find("a.download-btn").Attr("href"); href != want.href {
			t.Errorf("card %d href = %q, want %q", i, href, want.href)
		}
		if got := card.Find(".file-size").Text(); got != want.size {
			t.Errorf("card %d size = %q, want %q", i, got, want.size)
		}
	}

	header := doc.Find("header .subtitle").Text()
	if !strings.Contains(header, "Henry Clawson, Executive Assistant") {
		t.Errorf("subtitle = %q, want author with title", header)
	}
	if footer := doc.Find("footer").Text(); !strings.Contains(footer, "2026 Elm Lake Labs") || !strings.Contains(footer, "February 14, 2026") {
		t.Errorf("footer = %q", footer)
	}
}

func TestIndexBuilder_Build_EmptySecondarySection(t *testing.T) {
	t.Parallel()

	ts := loadDefaultSet(t)
	b, err := NewIndexBuilder(ts.Index, "", testPage)
	if err != nil {
		t.Fatalf("NewIndexBuilder() unexpected error: %v", err)
	}

	got, err := b.Build([]IndexEntry{{Title: "Only", Organization: "Elm Lake Labs", Artifact: "only.pdf"}})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	doc := parseDoc(t, got)
	if n := doc.Find(".section-title").Length(); n != 2 {
		t.Errorf("sections = %d, want 2 (headings always rendered)", n)
	}
	if n := doc.Find(".card").Length(); n != 1 {
		t.Errorf("cards = %d, want 1", n)
	}
}

func TestIndexBuilder_Build_EscapesText(t *testing.T) {
	t.Parallel()

	ts := loadDefaultSet(t)
	b, err := NewIndexBuilder(ts.Index, "", testPage)
	if err != nil {
		t.Fatalf("NewIndexBuilder() unexpected error: %v", err)
	}

	got, err := b.Build([]IndexEntry{
		{Title: "R&D <Plans>", Description: "a < b & c", Organization: "Elm Lake Labs", Artifact: "r.pdf"},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	for _, want := range []string{"R&amp;D &lt;Plans&gt;", "a &lt; b &amp; c"} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q", want)
		}
	}
	if strings.Contains(got, "<Plans>") {
		t.Error("output should not contain raw markup from titles")
	}
}

func TestNewIndexBuilder_InvalidTemplate(t *testing.T) {
	t.Parallel()

	if _, err := NewIndexBuilder("{{range .Sections}}", "", testPage); err == nil {
		t.Error("NewIndexBuilder() expected error for malformed template")
	}
}
