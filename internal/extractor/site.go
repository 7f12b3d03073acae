package extractor

import (
	"fmt"
	"sort"

	"github.com/heartmarshall/dict-crawler/internal/htmldoc"
	"github.com/heartmarshall/dict-crawler/internal/wordtype"
)

// Site holds everything that differs between source dictionaries: selector
// strings, the reserved noise block ids and the header label table.
type Site struct {
	Name             string
	Headword         htmldoc.Selector
	Pronunciation    htmldoc.Selector
	Blocks           htmldoc.Selector
	ExcludedBlockIDs []string
	Markers          Markers
	Labels           wordtype.Labels
}

// LacViet is the tratu.coviet.vn English→Vietnamese dictionary.
// Every page carries a boilerplate block with id partofspeech_100.
func LacViet() Site {
	return Site{
		Name:             "lacviet",
		Headword:         htmldoc.CSS("div.w.fl"),
		Pronunciation:    htmldoc.CSS("div.p5l.fl.cB"),
		Blocks:           htmldoc.CSS("[id^=partofspeech]"),
		ExcludedBlockIDs: []string{"partofspeech_100"},
		Markers: Markers{
			Elements:    htmldoc.CSS("div"),
			Header:      "ub",
			Meaning:     "m",
			Example:     "e",
			Translation: "em",
		},
		Labels: wordtype.VietnameseLabels,
	}
}

// Cambridge is the dictionary.cambridge.org English dictionary.
func Cambridge() Site {
	return Site{
		Name:          "cambridge",
		Headword:      htmldoc.XPath(`//div[contains(@class,'di-title')]//span[contains(@class,'hw')]`),
		Pronunciation: htmldoc.XPath(`//span[contains(@class,'pron')]/span[contains(@class,'ipa')]`),
		Blocks:        htmldoc.CSS("div.pr.entry-body__el"),
		Markers: Markers{
			Elements:    htmldoc.CSS(".pos, .def, .eg, .trans"),
			Header:      "pos",
			Meaning:     "def",
			Example:     "eg",
			Translation: "trans",
		},
		Labels: wordtype.EnglishLabels,
	}
}

var sites = map[string]func() Site{
	"lacviet":   LacViet,
	"cambridge": Cambridge,
}

// SiteByName returns the built-in site profile registered under name.
func SiteByName(name string) (Site, error) {
	newSite, ok := sites[name]
	if !ok {
		return Site{}, fmt.Errorf("extractor: unknown site %q (known: %v)", name, SiteNames())
	}
	return newSite(), nil
}

// SiteNames lists the built-in site names in sorted order.
func SiteNames() []string {
	names := make([]string, 0, len(sites))
	for name := range sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Site) excluded(block htmldoc.Element) bool {
	for _, id := range s.ExcludedBlockIDs {
		if block.HasIDExact(id) {
			return true
		}
	}
	return false
}
