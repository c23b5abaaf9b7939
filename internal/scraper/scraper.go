// internal/scraper/scraper.go
package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/soumik-d/magicbricks-scraper/internal/config"
	"github.com/soumik-d/magicbricks-scraper/internal/domain"
	"github.com/soumik-d/magicbricks-scraper/pkg/logger"
)

// Extractor turns a results page into property records using the configured
// selector set.
type Extractor struct {
	sel config.Selectors
	log *logger.Logger
}

func New(sel config.Selectors, log *logger.Logger) *Extractor {
	return &Extractor{sel: sel, log: log}
}

// Extract parses markup and returns one record per listing block, in document
// order. A listing whose markup deviates badly enough to panic the field
// extraction is logged and skipped; the others are unaffected. Zero matching
// blocks yields an empty slice, not an error.
func (e *Extractor) Extract(markup string) ([]domain.Property, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	properties := []domain.Property{}
	doc.Find(e.sel.Listing).Each(func(i int, s *goquery.Selection) {
		prop, err := e.extractListing(s)
		if err != nil {
			e.log.Error(fmt.Sprintf("failed to parse listing %d:", i), err)
			return
		}
		properties = append(properties, prop)
	})

	return properties, nil
}

func (e *Extractor) extractListing(s *goquery.Selection) (prop domain.Property, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected listing structure: %v", r)
		}
	}()

	title := e.titleText(s)

	location, locOK := parseLocation(title, e.sel.LocationSep)
	propertyType, typeOK := parsePropertyType(title, e.sel.TypeStartMark, e.sel.TypeEndMark)
	bedrooms, bedOK := parseBedrooms(title)
	price, priceOK := directText(s, e.sel.Price)
	size, sizeOK := e.carpetArea(s)
	soldBy, soldOK := directText(s, e.sel.Seller)

	prop = domain.Property{
		Location:     orSentinel(location, locOK, domain.NoLocation),
		PropertyType: orSentinel(propertyType, typeOK, domain.NoPropertyType),
		Price:        orSentinel(price, priceOK, domain.NoPrice),
		Size:         orSentinel(size, sizeOK, domain.NoSize),
		Bedrooms:     orSentinel(bedrooms, bedOK, domain.NoBedrooms),
		SoldBy:       orSentinel(soldBy, soldOK, domain.NoSoldBy),
	}
	return prop, nil
}

// titleText returns the title attribute of the card title element, or "" when
// either the element or the attribute is missing.
func (e *Extractor) titleText(s *goquery.Selection) string {
	title, _ := s.Find(e.sel.Title).First().Attr(e.sel.TitleAttr)
	return title
}

// parseLocation returns everything after the first occurrence of sep.
func parseLocation(title, sep string) (string, bool) {
	idx := strings.Index(title, sep)
	if idx < 0 {
		return "", false
	}
	return title[idx+len(sep):], true
}

// parsePropertyType returns the substring strictly between the first startMark
// (offset by its length) and the first endMark, trimmed. Both marks must be
// present. A title where endMark precedes startMark produces an empty or
// nonsensical value; that matches the site's current title shape assumption
// and is deliberately left as-is.
func parsePropertyType(title, startMark, endMark string) (string, bool) {
	start := strings.Index(title, startMark)
	end := strings.Index(title, endMark)
	if start < 0 || end < 0 {
		return "", false
	}
	start += len(startMark)
	if start > end {
		return "", true
	}
	return strings.TrimSpace(title[start:end]), true
}

// parseBedrooms returns the first whitespace-delimited token of the title.
func parseBedrooms(title string) (string, bool) {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

func directText(s *goquery.Selection, selector string) (string, bool) {
	el := s.Find(selector)
	if el.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(el.First().Text()), true
}

// carpetArea locates the summary item whose data attribute marks it as the
// carpet-area entry and returns its nested value text.
func (e *Extractor) carpetArea(s *goquery.Selection) (string, bool) {
	item := s.Find(e.sel.SummaryItem).FilterFunction(func(_ int, it *goquery.Selection) bool {
		v, ok := it.Attr(e.sel.SummaryAttr)
		return ok && v == e.sel.CarpetArea
	})
	if item.Length() == 0 {
		return "", false
	}

	value := item.First().Find(e.sel.SummaryValue)
	if value.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(value.First().Text()), true
}

func orSentinel(v string, ok bool, sentinel string) string {
	if !ok {
		return sentinel
	}
	return v
}
