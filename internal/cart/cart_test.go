package cart

import (
	"errors"
	"math"
	"testing"
)

var (
	productA = Product{Key: "Ultra Laptop", Name: "Ultra Laptop", PriceCents: 1000}
	productB = Product{Key: "Eco Pen", Name: "Eco Pen", PriceCents: 550}
)

func TestAdd_RepeatedAddsAccumulate(t *testing.T) {
	c := New()

	const n = 5
	var qty int
	for i := 0; i < n; i++ {
		qty = c.Add(productA)
	}
	if qty != n {
		t.Fatalf("qty=%d want=%d", qty, n)
	}

	for i := 0; i < n; i++ {
		c.Decrement(productA.Key)
	}
	if _, ok := c.Get(productA.Key); ok {
		t.Fatalf("entry survived decrementing to zero")
	}
}

func TestDecrement_LastUnitRemovesEntry(t *testing.T) {
	c := New()
	c.Add(productA)

	qty, present := c.Decrement(productA.Key)
	if present || qty != 0 {
		t.Fatalf("qty=%d present=%v want removed", qty, present)
	}
	if len(c.Items()) != 0 {
		t.Fatalf("items=%d want=0", len(c.Items()))
	}
}

func TestDecrement_AbsentIsNoop(t *testing.T) {
	c := New()

	if _, present := c.Decrement("nothing"); present {
		t.Fatalf("decrement of absent key reported presence")
	}
}

func TestRemove_DropsAnyQuantity(t *testing.T) {
	c := New()
	c.Add(productA)
	c.Add(productA)
	c.Add(productA)

	c.Remove(productA.Key)
	if _, ok := c.Get(productA.Key); ok {
		t.Fatalf("entry survived remove")
	}

	// Removing again is a no-op.
	c.Remove(productA.Key)
}

func TestTotalCents_ReflectsLiveContents(t *testing.T) {
	c := New()
	c.Add(productA)
	c.Add(productA)
	c.Add(productB)

	if got := c.TotalCents(); got != 2550 {
		t.Fatalf("total=%d want=2550", got)
	}

	c.Decrement(productA.Key)
	if got := c.TotalCents(); got != 1550 {
		t.Fatalf("total after decrement=%d want=1550", got)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	c := New()

	if _, err := c.Checkout(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err=%v want ErrEmptyCart", err)
	}
	if len(c.Items()) != 0 {
		t.Fatalf("empty checkout changed state")
	}
}

func TestCheckout_ClearsEverything(t *testing.T) {
	c := New()
	c.Add(productA)
	c.Add(productB)

	total, err := c.Checkout()
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if total != 1550 {
		t.Fatalf("total=%d want=1550", total)
	}
	if len(c.Items()) != 0 || c.TotalCents() != 0 {
		t.Fatalf("cart not empty after checkout")
	}

	// Checking out twice in a row is safe: the second is just an empty cart.
	if _, err := c.Checkout(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("second checkout err=%v want ErrEmptyCart", err)
	}
}

func TestItems_FirstAddOrder(t *testing.T) {
	c := New()
	c.Add(productB)
	c.Add(productA)
	c.Add(productB)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("items=%d want=2", len(items))
	}
	if items[0].Product.Key != productB.Key || items[1].Product.Key != productA.Key {
		t.Fatalf("order=%v,%v want B,A", items[0].Product.Key, items[1].Product.Key)
	}
	if items[0].Qty != 2 {
		t.Fatalf("qty=%d want=2", items[0].Qty)
	}
}

func TestAddN_BulkAdd(t *testing.T) {
	c := New()

	if qty := c.AddN(productA, 1000); qty != 1000 {
		t.Fatalf("qty=%d want=1000", qty)
	}
	if qty := c.AddN(productA, 5); qty != 1005 {
		t.Fatalf("qty=%d want=1005", qty)
	}
	if got := c.TotalCents(); got != 1005*productA.PriceCents {
		t.Fatalf("total=%d want=%d", got, 1005*productA.PriceCents)
	}

	// n < 1 changes nothing.
	if qty := c.AddN(productA, 0); qty != 1005 {
		t.Fatalf("qty=%d want=1005", qty)
	}
	if qty := c.AddN(productB, -3); qty != 0 {
		t.Fatalf("qty=%d want=0", qty)
	}
	if _, ok := c.Get(productB.Key); ok {
		t.Fatalf("non-positive AddN created an entry")
	}
}

func TestAddN_QuantitySaturates(t *testing.T) {
	c := New()
	c.Add(productA)

	if qty := c.AddN(productA, math.MaxInt); qty != math.MaxInt {
		t.Fatalf("qty=%d want=MaxInt", qty)
	}
	if qty := c.AddN(productA, math.MaxInt); qty != math.MaxInt {
		t.Fatalf("qty=%d want=MaxInt after second bulk add", qty)
	}
}

func TestTotalCents_SaturatesInsteadOfWrapping(t *testing.T) {
	c := New()
	huge := Product{Key: "app_huge", Name: "Huge", PriceCents: math.MaxInt64 / 2}

	for i := 0; i < 3; i++ {
		c.Add(huge)
	}

	if got := c.TotalCents(); got != math.MaxInt64 {
		t.Fatalf("total=%d want saturated MaxInt64", got)
	}

	total, err := c.Checkout()
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if total != math.MaxInt64 {
		t.Fatalf("checkout total=%d want saturated MaxInt64", total)
	}
	if len(c.Items()) != 0 {
		t.Fatalf("cart not cleared")
	}
}

func TestTotalCents_LineOverflowSaturates(t *testing.T) {
	c := New()
	pricey := Product{Key: "app_pricey", Name: "Pricey", PriceCents: math.MaxInt64 / 2}

	c.AddN(pricey, 4)

	if got := c.TotalCents(); got != math.MaxInt64 {
		t.Fatalf("total=%d want saturated MaxInt64", got)
	}
}

func TestDistinctKeysNeverAlias(t *testing.T) {
	c := New()
	c.Add(Product{Key: "app_1", Name: "Same Name", PriceCents: 100})
	c.Add(Product{Key: "app_2", Name: "Same Name", PriceCents: 200})

	if len(c.Items()) != 2 {
		t.Fatalf("items=%d want=2", len(c.Items()))
	}
	if got := c.TotalCents(); got != 300 {
		t.Fatalf("total=%d want=300", got)
	}
}
