// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package money formats prices for display using the shop's locale.
package money

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults match the shop's original market.
const (
	DefaultLocale = "ru"
	DefaultSymbol = "₽"
)

// Formatter renders integer amounts with locale-specific digit grouping and
// a trailing currency symbol, e.g. "1 290 ₽".
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for a BCP 47 locale tag.
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}, nil
}

// Format renders amount followed by the currency symbol.
func (f *Formatter) Format(amount int64) string {
	if f.symbol == "" {
		return f.printer.Sprintf("%d", amount)
	}
	return f.printer.Sprintf("%d", amount) + " " + f.symbol
}
