package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a CurrencyCatalog entry: a currency code and the per-day base
// price of a campaign in that currency.
type Currency struct {
	Code            string          `json:"code"`
	BasePricePerDay decimal.Decimal `json:"basePricePerDay"`
}

// CurrencyCatalog is the read-only set of currencies loaded for a session.
type CurrencyCatalog struct {
	entries []Currency
	byCode  map[string]Currency
}

// NewCurrencyCatalog builds a catalog. Codes are upper-cased; a later
// duplicate replaces an earlier one.
func NewCurrencyCatalog(entries []Currency) CurrencyCatalog {
	c := CurrencyCatalog{byCode: make(map[string]Currency, len(entries))}
	for _, e := range entries {
		e.Code = NormalizeCurrency(e.Code)
		if _, ok := c.byCode[e.Code]; !ok {
			c.entries = append(c.entries, e)
		} else {
			i := slices.IndexFunc(c.entries, func(x Currency) bool { return x.Code == e.Code })
			c.entries[i] = e
		}
		c.byCode[e.Code] = e
	}
	return c
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c CurrencyCatalog) Lookup(code string) (Currency, bool) {
	e, ok := c.byCode[NormalizeCurrency(code)]
	return e, ok
}

func (c CurrencyCatalog) Entries() []Currency { return slices.Clone(c.entries) }

func (c CurrencyCatalog) Len() int { return len(c.entries) }

// Convert converts amount between currencies using the ratio of their
// per-day base prices. The result is rounded to two decimal places.
func (c CurrencyCatalog) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if NormalizeCurrency(from) == NormalizeCurrency(to) {
		return amount, nil
	}
	src, ok := c.Lookup(from)
	if !ok || src.BasePricePerDay.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	dst, ok := c.Lookup(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}
	return amount.Mul(dst.BasePricePerDay).Div(src.BasePricePerDay).Round(2), nil
}

// ServiceRef is a snapshot of one of the operator's sellable services,
// taken when it is selected for a campaign.
type ServiceRef struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// BundledTotal sums the prices of services converted into currency.
func BundledTotal(services []ServiceRef, catalog CurrencyCatalog, currency string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range services {
		price, err := catalog.Convert(s.Price, s.Currency, currency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("service %d: %w", s.ID, err)
		}
		total = total.Add(price)
	}
	return total, nil
}

// ServiceCatalog is the operator's own set of sellable services.
type ServiceCatalog struct {
	entries []ServiceRef
	byID    map[int64]ServiceRef
}

func NewServiceCatalog(entries []ServiceRef) ServiceCatalog {
	c := ServiceCatalog{byID: make(map[int64]ServiceRef, len(entries))}
	for _, e := range entries {
		if _, ok := c.byID[e.ID]; ok {
			continue
		}
		e.Currency = NormalizeCurrency(e.Currency)
		c.entries = append(c.entries, e)
		c.byID[e.ID] = e
	}
	return c
}

func (c ServiceCatalog) Lookup(id int64) (ServiceRef, bool) {
	e, ok := c.byID[id]
	return e, ok
}

func (c ServiceCatalog) Entries() []ServiceRef { return slices.Clone(c.entries) }

// City is an entry of the city selector for service campaigns.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityCatalog matches city names case-insensitively.
type CityCatalog struct {
	entries []City
	byName  map[string]City
}

func NewCityCatalog(entries []City) CityCatalog {
	c := CityCatalog{byName: make(map[string]City, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if _, ok := c.byName[key]; ok {
			continue
		}
		c.entries = append(c.entries, e)
		c.byName[key] = e
	}
	return c
}

func (c CityCatalog) Contains(name string) bool {
	_, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (c CityCatalog) Entries() []City { return slices.Clone(c.entries) }

// Profile is the operator's own public profile, the subject of profile
// campaigns.
type Profile struct {
	ID          int64  `json:"id"`
	OperatorID  int64  `json:"operatorId"`
	DisplayName string `json:"displayName"`
}

// ReferenceData groups what a session loaded before the form is usable.
// Missing pieces stay empty, and rules depending on them fail.
type ReferenceData struct {
	Currencies CurrencyCatalog
	Services   ServiceCatalog
	Cities     CityCatalog
	Profile    *Profile
}
