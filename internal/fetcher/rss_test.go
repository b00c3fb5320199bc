package fetcher

import (
	"testing"
)

const twoItemFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Eksempelblogg</title>
<item>
  <title><![CDATA[Første artikkel]]></title>
  <link>https://example.com/a</link>
  <description><![CDATA[<p>Hei   på <b>deg</b></p>]]></description>
  <pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
</item>
<item>
  <title>Andre artikkel</title>
  <link>https://example.com/b</link>
</item>
</channel>
</rss>`

func TestParseRSSRoundTrip(t *testing.T) {
	articles := ParseRSS(twoItemFeed, 5)
	if len(articles) != 2 {
		t.Fatalf("forventet 2 artikler, fikk %d", len(articles))
	}

	first := articles[0]
	if first.Title != "Første artikkel" {
		t.Errorf("CDATA-tittelen ble %q", first.Title)
	}
	if first.Link != "https://example.com/a" {
		t.Errorf("lenken ble %q", first.Link)
	}
	if first.Description != "Hei på deg" {
		t.Errorf("beskrivelsen ble %q", first.Description)
	}
	if first.PubDate != "2006-01-02" {
		t.Errorf("datoen ble %q", first.PubDate)
	}

	second := articles[1]
	if second.Title != "Andre artikkel" {
		t.Errorf("vanlig tittel ble %q", second.Title)
	}
	if second.PubDate != "" {
		t.Errorf("manglende pubDate skal gi tom streng, fikk %q", second.PubDate)
	}
}

func TestParseRSSRespectsCount(t *testing.T) {
	articles := ParseRSS(twoItemFeed, 1)
	if len(articles) != 1 {
		t.Fatalf("forventet 1 artikkel, fikk %d", len(articles))
	}
}

func TestParseRSSSkipsItemsWithoutTitleOrLink(t *testing.T) {
	xml := `<rss><channel>
<item><title>Bare tittel</title></item>
<item><link>https://example.com/bare-lenke</link></item>
<item><title>Komplett</title><link>https://example.com/ok</link></item>
</channel></rss>`

	articles := ParseRSS(xml, 5)
	if len(articles) != 1 {
		t.Fatalf("forventet 1 artikkel, fikk %d", len(articles))
	}
	if articles[0].Title != "Komplett" {
		t.Errorf("feil artikkel overlevde: %q", articles[0].Title)
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mon, 02 Jan 2006 15:04:05 +0000", "2006-01-02"},
		{"Mon, 02 Jan 2006 15:04:05 GMT", "2006-01-02"},
		{"2019-07-30T10:00:00Z", "2019-07-30"},
		{"2019-07-30", "2019-07-30"},
		{"ikke en dato", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormalizeDate(c.in); got != c.want {
			t.Errorf("NormalizeDate(%q) = %q, forventet %q", c.in, got, c.want)
		}
	}
}

func TestTruncateDescription(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"kort", 100, "kort"},
		{"akkurat ti", 10, "akkurat ti"},
		{"dette er en lang beskrivelse", 8, "dette er..."},
		{"blåbærsyltetøy", 6, "blåbær..."},
		{"uten grense", 0, "uten grense"},
	}

	for _, c := range cases {
		if got := TruncateDescription(c.in, c.maxLen); got != c.want {
			t.Errorf("TruncateDescription(%q, %d) = %q, forventet %q", c.in, c.maxLen, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{1280, "1.3k"},
		{2000, "2k"},
		{12345, "12.3k"},
	}

	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, forventet %q", c.in, got, c.want)
		}
	}
}
