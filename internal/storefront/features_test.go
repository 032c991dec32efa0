package storefront_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"storefront/internal/catalog"
	"storefront/internal/storefront"
)

type storefrontTestContext struct {
	catalog    *catalog.Catalog
	controller *storefront.Controller
}

func (c *storefrontTestContext) reset() {
	c.catalog = nil
	c.controller = nil
}

func (c *storefrontTestContext) aCatalogWithProducts(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("product table needs a header and at least one row")
	}

	var products []catalog.Product
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 4 {
			return fmt.Errorf("expected 4 cells, got %d", len(row.Cells))
		}
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		price, err := strconv.ParseInt(row.Cells[2].Value, 10, 64)
		if err != nil {
			return err
		}
		products = append(products, catalog.Product{
			ID:       id,
			Name:     row.Cells[1].Value,
			Price:    price,
			Category: row.Cells[3].Value,
		})
	}

	c.catalog = catalog.New(products)
	c.controller = storefront.New(c.catalog)
	return nil
}

func (c *storefrontTestContext) iAddProductToTheCart(id int) error {
	if !c.controller.AddToCartByID(id) {
		return fmt.Errorf("product %d not in catalog", id)
	}
	return nil
}

func (c *storefrontTestContext) iSetTheQuantityOfProductTo(id, quantity int) error {
	c.controller.SetQuantity(id, quantity)
	return nil
}

func (c *storefrontTestContext) iRemoveProductFromTheCart(id int) error {
	c.controller.RemoveLine(id)
	return nil
}

func (c *storefrontTestContext) iSelectTheCategory(name string) error {
	c.controller.SelectCategory(name)
	return nil
}

func (c *storefrontTestContext) iOpenTheCart() error {
	c.controller.OpenCart()
	return nil
}

func (c *storefrontTestContext) iCloseTheCart() error {
	c.controller.CloseCart()
	return nil
}

func (c *storefrontTestContext) theCartContainsProductWithQuantity(id, want int) error {
	got, ok := c.controller.Cart().Quantity(id)
	if !ok {
		return fmt.Errorf("product %d is not in the cart", id)
	}
	if got != want {
		return fmt.Errorf("expected quantity %d, got %d", want, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartHasLines(want int) error {
	if got := c.controller.Cart().Len(); got != want {
		return fmt.Errorf("expected %d lines, got %d", want, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartTotalIs(want int64) error {
	if got := c.controller.View().TotalPrice; got != want {
		return fmt.Errorf("expected total %d, got %d", want, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartItemCountIs(want int) error {
	if got := c.controller.View().ItemCount; got != want {
		return fmt.Errorf("expected item count %d, got %d", want, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartIsEmpty() error {
	if !c.controller.View().CartEmpty() {
		return fmt.Errorf("expected empty cart, got %v", c.controller.Cart().Entries())
	}
	return nil
}

func (c *storefrontTestContext) theCartLinesAre(want string) error {
	var parts []string
	for _, e := range c.controller.Cart().Entries() {
		parts = append(parts, fmt.Sprintf("%dx%d", e.ProductID, e.Quantity))
	}
	if got := strings.Join(parts, ","); got != want {
		return fmt.Errorf("expected lines %q, got %q", want, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartPanelIsOpen() error {
	if !c.controller.CartOpen() {
		return fmt.Errorf("expected cart panel to be open")
	}
	return nil
}

func (c *storefrontTestContext) theCartPanelIsClosed() error {
	if c.controller.CartOpen() {
		return fmt.Errorf("expected cart panel to be closed")
	}
	return nil
}

func (c *storefrontTestContext) theVisibleProductsAre(want string) error {
	var parts []string
	for _, p := range c.controller.View().Products {
		parts = append(parts, strconv.Itoa(p.ID))
	}
	if got := strings.Join(parts, ","); got != want {
		return fmt.Errorf("expected products %q, got %q", want, got)
	}
	return nil
}

func (c *storefrontTestContext) noProductsAreVisible() error {
	if n := len(c.controller.View().Products); n != 0 {
		return fmt.Errorf("expected no products, got %d", n)
	}
	return nil
}

func (c *storefrontTestContext) theCountForCategoryIs(name string, want int) error {
	if got := c.catalog.CountsByCategory()[name]; got != want {
		return fmt.Errorf("expected %d products in %q, got %d", want, name, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a catalog with products:$`, tc.aCatalogWithProducts)

	// When steps
	ctx.Step(`^I add product (\d+) to the cart$`, tc.iAddProductToTheCart)
	ctx.Step(`^I set the quantity of product (\d+) to (-?\d+)$`, tc.iSetTheQuantityOfProductTo)
	ctx.Step(`^I remove product (\d+) from the cart$`, tc.iRemoveProductFromTheCart)
	ctx.Step(`^I select the category "([^"]*)"$`, tc.iSelectTheCategory)
	ctx.Step(`^I open the cart$`, tc.iOpenTheCart)
	ctx.Step(`^I close the cart$`, tc.iCloseTheCart)

	// Then steps
	ctx.Step(`^the cart contains product (\d+) with quantity (\d+)$`, tc.theCartContainsProductWithQuantity)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart item count is (\d+)$`, tc.theCartItemCountIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart lines are "([^"]*)"$`, tc.theCartLinesAre)
	ctx.Step(`^the cart panel is open$`, tc.theCartPanelIsOpen)
	ctx.Step(`^the cart panel is closed$`, tc.theCartPanelIsClosed)
	ctx.Step(`^the visible products are "([^"]*)"$`, tc.theVisibleProductsAre)
	ctx.Step(`^no products are visible$`, tc.noProductsAreVisible)
	ctx.Step(`^the count for category "([^"]*)" is (\d+)$`, tc.theCountForCategoryIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "storefront",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
