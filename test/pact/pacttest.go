//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shop-api"
	ConsumerName = "storefront-portal"

	StateCatalogBaseline = "catalog baseline"
	StateProductExists   = "product with id 101 exists"
	StateProductMissing  = "no product with id 404"
	StateCartReady       = "customer 1 has a stocked cart"
)

const (
	ExistingProductID int64 = 101
	MissingProductID  int64 = 404

	CheckoutCustomerID int64 = 1
	CartQuantity             = 2
)

const (
	exampleProductName  = "Aurora Desk Lamp"
	exampleUnitPrice    = "25.00"
	exampleCategory     = "Lighting"
	exampleCustomerName = "Pact Shopper"
	exampleCustomerMail = "pact.shopper@example.com"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload provides stable catalog test data for pact interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":        ExistingProductID,
		"name":      exampleProductName,
		"unitPrice": exampleUnitPrice,
		"category":  exampleCategory,
		"stock":     25,
		"inStock":   true,
	}
}

// ExampleCustomer returns the deterministic checkout customer for provider states.
func ExampleCustomer() (name, email string) {
	return exampleCustomerName, exampleCustomerMail
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
