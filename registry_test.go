package fintypes

import (
	"errors"
	"sync"
	"testing"
)

func TestSetCurrencyMetadata(t *testing.T) {
	defer ClearCurrencyMetadata("WOOF")

	meta := CurrencyMetadata{Name: "Woof Points", DecimalPlaces: 4, Symbol: "W", DefaultLocale: LocaleEnEU}
	if err := SetCurrencyMetadata("woof", meta); err != nil {
		t.Fatal(err)
	}
	got, ok := LookupCurrencyMetadata("WOOF")
	if !ok || got != meta {
		t.Fatalf("LookupCurrencyMetadata = %+v, %v", got, ok)
	}

	// upsert replaces deterministically
	meta.DecimalPlaces = 2
	if err := SetCurrencyMetadata("WOOF", meta); err != nil {
		t.Fatal(err)
	}
	if got, _ := LookupCurrencyMetadata("WOOF"); got.DecimalPlaces != 2 {
		t.Errorf("after upsert DecimalPlaces = %d, want 2", got.DecimalPlaces)
	}

	ClearCurrencyMetadata("WOOF")
	if _, ok := LookupCurrencyMetadata("WOOF"); ok {
		t.Error("metadata should be gone after Clear")
	}
	ClearCurrencyMetadata("WOOF") // clearing twice is a no-op
}

func TestSetCurrencyMetadataRejects(t *testing.T) {
	if err := SetCurrencyMetadata(" - ", CurrencyMetadata{}); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("empty code err = %v, want ErrEmptyToken", err)
	}
	if err := SetCurrencyMetadata("WOOF", CurrencyMetadata{DecimalPlaces: 19}); !errors.Is(err, ErrScaleTooLarge) {
		t.Errorf("scale 19 err = %v, want ErrScaleTooLarge", err)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	defer ClearCurrencyMetadata("RACE")

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(places uint32) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if err := SetCurrencyMetadata("RACE", CurrencyMetadata{DecimalPlaces: places}); err != nil {
					t.Error(err)
					return
				}
			}
		}(uint32(w + 1))
	}
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cur := MustCurrency("RACE")
			for i := 0; i < 200; i++ {
				meta, ok := LookupCurrencyMetadata("RACE")
				if ok && (meta.DecimalPlaces < 1 || meta.DecimalPlaces > 4) {
					t.Errorf("observed partial entry: %+v", meta)
					return
				}
				// precision queries must never observe a torn value either
				if places, err := cur.DecimalPlaces(); err == nil && (places < 1 || places > 4) {
					t.Errorf("DecimalPlaces observed %d", places)
					return
				}
			}
		}()
	}
	wg.Wait()
}
