package quantizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nameTestCase struct {
	in       string
	expected string
}

func TestCleanOperationName(t *testing.T) {
	assert := assert.New(t)

	cases := []nameTestCase{
		{"GET /api/users", "/api/users"},
		{"POST /checkout", "/checkout"},
		{"hipstershop.CartService/EmptyCart", "hipstershop.CartService/EmptyCart"},
		{"send message!", "send_message"},
		{"  spaced  ", "spaced"},
		{"___", "unknown"},
		{"", "unknown"},
		{"GET ", "unknown"},
	}
	for _, c := range cases {
		assert.Equal(c.expected, CleanOperationName(c.in), "input: %q", c.in)
	}
}

func TestCleanOperationNameIdempotent(t *testing.T) {
	assert := assert.New(t)

	inputs := []string{
		"GET /api/users",
		"hipstershop.CartService/EmptyCart",
		"send message!",
		"",
	}
	for _, in := range inputs {
		once := CleanOperationName(in)
		assert.Equal(once, CleanOperationName(once), "input: %q", in)
	}
}

func TestSimpleOperationName(t *testing.T) {
	assert := assert.New(t)

	cases := []nameTestCase{
		{"hipstershop.CartService/EmptyCart", "EmptyCart"},
		{"GET /api/users", "users"},
		{"GET /cart", "cart"},
		{"oteldemo.AdService.GetAds", "GetAds"},
		{"plain", "plain"},
		{"", "unknown"},
	}
	for _, c := range cases {
		assert.Equal(c.expected, SimpleOperationName(c.in), "input: %q", c.in)
	}
}

func TestBaseName(t *testing.T) {
	assert := assert.New(t)

	cases := []nameTestCase{
		{"recommendationservice-7d5c8f9b8-xk7pt", "recommendationservice"},
		{"cartservice-7d5c8f9b8", "cartservice"},
		{"frontend", "frontend"},
		{"node-1", "node-1"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(c.expected, BaseName(c.in), "input: %q", c.in)
	}
}

func TestCleanTraceName(t *testing.T) {
	assert := assert.New(t)

	cases := []nameTestCase{
		{"trace_checkout", "checkout"},
		{"Trace-checkout", "checkout"},
		{"traccia_ordine", "ordine"},
		{"taccia-ordine", "ordine"},
		{"checkout", "checkout"},
		{"trace_", "trace_"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(c.expected, CleanTraceName(c.in), "input: %q", c.in)
	}
}

func TestPascalCase(t *testing.T) {
	assert := assert.New(t)

	cases := []nameTestCase{
		{"cart-service", "Cart"},
		{"cartservice", "Cart"},
		{"checkout_service", "Checkout"},
		{"CurrencyService", "Currency"},
		{"frontend", "Frontend"},
		{"product-catalog-service", "ProductCatalog"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(c.expected, PascalCase(c.in), "input: %q", c.in)
	}
}
