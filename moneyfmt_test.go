package moneyfmt

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPackageLevelFormatting(t *testing.T) {
	t.Parallel()

	amount := decimal.RequireFromString("10123.23")

	detailed, err := FormatDetailed(amount, "AZN", "az")
	if err != nil {
		t.Fatalf("FormatDetailed: %v", err)
	}
	if want := "10 min 123 manat 23 qəpik"; detailed != want {
		t.Fatalf("FormatDetailed = %q want %q", detailed, want)
	}

	standard, err := FormatStandard(amount, "USD", "en")
	if err != nil {
		t.Fatalf("FormatStandard: %v", err)
	}
	if want := "$10,123.23"; standard != want {
		t.Fatalf("FormatStandard = %q want %q", standard, want)
	}

	compact, err := FormatCompact(decimal.RequireFromString("1234567.89"), "USD", "en")
	if err != nil {
		t.Fatalf("FormatCompact: %v", err)
	}
	if want := "$1.23M"; compact != want {
		t.Fatalf("FormatCompact = %q want %q", compact, want)
	}

	major, minor, err := SplitAmount(amount, "USD")
	if err != nil {
		t.Fatalf("SplitAmount: %v", err)
	}
	if major != 10123 || minor != 23 {
		t.Fatalf("SplitAmount = (%d, %d) want (10123, 23)", major, minor)
	}
}

func TestPackageLevelLookups(t *testing.T) {
	t.Parallel()

	info, ok := LookupCurrency("usd")
	if !ok {
		t.Fatal("LookupCurrency(usd): not found")
	}
	if info.Symbol != "$" {
		t.Fatalf("Symbol = %q want %q", info.Symbol, "$")
	}

	if !IsSupportedCurrency("EUR") {
		t.Fatal("IsSupportedCurrency(EUR) = false")
	}
	if IsSupportedCurrency("XXX") {
		t.Fatal("IsSupportedCurrency(XXX) = true")
	}

	if got := len(Currencies()); got == 0 {
		t.Fatal("Currencies: empty")
	}

	infos := CurrenciesForCountry("AZ")
	if len(infos) != 1 || infos[0].Code != "AZN" {
		t.Fatalf("CurrenciesForCountry(AZ) = %v want AZN", infos)
	}
}

func TestDefaultShared(t *testing.T) {
	t.Parallel()

	if Default() != Default() {
		t.Fatal("Default returned distinct instances")
	}
}

func TestDefaultConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	amount := decimal.RequireFromString("-5.5")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := FormatDetailed(amount, "EUR", "en")
			if err != nil {
				errs <- err
				return
			}
			if want := "negative 5 euros 50 cents"; got != want {
				errs <- fmt.Errorf("got %q want %q", got, want)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent FormatDetailed: %v", err)
	}
}
