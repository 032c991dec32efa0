// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sections loads the static copy of the storefront page: shop name,
// navigation, hero, advantages, contacts, footer and UI labels. The copy is
// embedded YAML; free-text fields are Markdown rendered once at load.
package sections

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"storefront/internal/markdown"
)

//go:embed content.yaml
var defaultContent []byte

// NavItem is one header navigation anchor.
type NavItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Hero is the top banner.
type Hero struct {
	Title        string        `yaml:"title"`
	Lead         string        `yaml:"lead"`
	LeadHTML     template.HTML `yaml:"-"`
	PrimaryCTA   string        `yaml:"primary_cta"`
	SecondaryCTA string        `yaml:"secondary_cta"`
}

// CatalogCopy holds the catalog section headings and filter labels.
type CatalogCopy struct {
	Title       string `yaml:"title"`
	Lead        string `yaml:"lead"`
	AllLabel    string `yaml:"all_label"`
	FilterTitle string `yaml:"filter_title"`
}

// Advantage is one delivery/payment card.
type Advantage struct {
	Icon     string        `yaml:"icon"`
	Title    string        `yaml:"title"`
	Body     string        `yaml:"body"`
	BodyHTML template.HTML `yaml:"-"`
}

// Contacts is the contact block.
type Contacts struct {
	Title string `yaml:"title"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
	Hours string `yaml:"hours"`
	Note  string `yaml:"note"`
}

// PhoneHref returns a tel: link for the phone number.
func (c Contacts) PhoneHref() template.URL {
	var b strings.Builder
	for _, r := range c.Phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return template.URL("tel:" + b.String())
}

// EmailHref returns a mailto: link for the email address.
func (c Contacts) EmailHref() template.URL {
	return template.URL("mailto:" + url.PathEscape(c.Email))
}

// Footer is the page footer.
type Footer struct {
	Copyright string `yaml:"copyright"`
	Notice    string `yaml:"notice"`
}

// ProductCopy labels the product card.
type ProductCopy struct {
	NewBadge  string `yaml:"new_badge"`
	AddToCart string `yaml:"add_to_cart"`
}

// CartCopy labels the cart panel.
type CartCopy struct {
	Title    string `yaml:"title"`
	Empty    string `yaml:"empty"`
	Total    string `yaml:"total"`
	Checkout string `yaml:"checkout"`
	Close    string `yaml:"close"`
	Remove   string `yaml:"remove"`
	Reset    string `yaml:"reset"`
	Decrease string `yaml:"decrease"`
	Increase string `yaml:"increase"`
	Quantity string `yaml:"quantity"`
}

// Content is the full static copy of the page.
type Content struct {
	ShopName        string      `yaml:"shop_name"`
	MenuLabel       string      `yaml:"menu_label"`
	Nav             []NavItem   `yaml:"nav"`
	Hero            Hero        `yaml:"hero"`
	Catalog         CatalogCopy `yaml:"catalog"`
	AdvantagesTitle string      `yaml:"advantages_title"`
	Advantages      []Advantage `yaml:"advantages"`
	Contacts        Contacts    `yaml:"contacts"`
	Footer          Footer      `yaml:"footer"`
	Product         ProductCopy `yaml:"product"`
	Cart            CartCopy    `yaml:"cart"`
}

// Default parses the embedded copy.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// Parse decodes YAML copy and renders its Markdown fields.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("sections unmarshal: %w", err)
	}
	if c.ShopName == "" {
		return nil, fmt.Errorf("sections: shop_name is required")
	}

	lead, err := markdown.ToHTML(c.Hero.Lead)
	if err != nil {
		return nil, fmt.Errorf("sections hero lead: %w", err)
	}
	c.Hero.LeadHTML = lead

	for i := range c.Advantages {
		body, err := markdown.Inline(c.Advantages[i].Body)
		if err != nil {
			return nil, fmt.Errorf("sections advantage %d: %w", i, err)
		}
		c.Advantages[i].BodyHTML = body
	}

	return &c, nil
}
