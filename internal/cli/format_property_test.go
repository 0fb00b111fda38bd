package cli

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any amount, FormatUSD should:
// 1. Start with $ (or -$ for negative)
// 2. Have exactly 2 decimal places
// 3. Group the integer part in threes with commas
// 4. Preserve the numeric value when parsed back
func TestFormatUSDProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	groupPattern := regexp.MustCompile(`^\d{1,3}(,\d{3})*$`)

	properties.Property("FormatUSD produces valid format", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				return true
			}
			if math.Abs(amount) > 1e15 {
				return true
			}

			formatted := FormatUSD(amount)

			if amount >= 0 {
				if !strings.HasPrefix(formatted, "$") {
					t.Logf("Expected $ prefix for %f, got %s", amount, formatted)
					return false
				}
			} else {
				if !strings.HasPrefix(formatted, "-$") {
					t.Logf("Expected -$ prefix for %f, got %s", amount, formatted)
					return false
				}
			}

			parts := strings.Split(formatted, ".")
			if len(parts) != 2 || len(parts[1]) != 2 {
				t.Logf("Expected 2 decimal places for %f, got %s", amount, formatted)
				return false
			}

			numPart := strings.TrimPrefix(formatted, "-")
			numPart = strings.TrimPrefix(numPart, "$")
			numPart = strings.Split(numPart, ".")[0]
			if !groupPattern.MatchString(numPart) {
				t.Logf("Invalid grouping for %f: %s", amount, formatted)
				return false
			}

			return true
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("FormatUSD preserves value", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				return true
			}

			formatted := FormatUSD(amount)

			cleaned := strings.NewReplacer("$", "", ",", "").Replace(formatted)
			parsed, err := strconv.ParseFloat(cleaned, 64)
			if err != nil {
				t.Logf("Cannot parse back %s: %v", formatted, err)
				return false
			}

			rounded := math.Round(amount*100) / 100
			if math.Abs(parsed-rounded) > 0.01 {
				t.Logf("Value not preserved: original=%f, formatted=%s, parsed=%f", amount, formatted, parsed)
				return false
			}
			return true
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("FormatPercent produces correct format", prop.ForAll(
		func(value float64) bool {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return true
			}

			formatted := FormatPercent(value)

			if !strings.HasSuffix(formatted, "%") {
				t.Logf("Expected %% suffix for %f, got %s", value, formatted)
				return false
			}
			if value > 0 && !strings.HasPrefix(formatted, "+") {
				t.Logf("Expected + prefix for positive %f, got %s", value, formatted)
				return false
			}
			return true
		},
		gen.Float64Range(-100, 100),
	))

	properties.Property("TruncateString never exceeds max length", prop.ForAll(
		func(s string, maxLen int) bool {
			truncated := TruncateString(s, maxLen)
			if len(truncated) > maxLen && len(s) > maxLen {
				t.Logf("TruncateString(%q, %d) = %q exceeds limit", s, maxLen, truncated)
				return false
			}
			if len(s) <= maxLen && truncated != s {
				t.Logf("Short string was modified: %q -> %q", s, truncated)
				return false
			}
			return true
		},
		gen.AlphaString(),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}

func TestFormatUSDExamples(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{1, "$1.00"},
		{999.994, "$999.99"},
		{1000, "$1,000.00"},
		{64000.5, "$64,000.50"},
		{1234567.89, "$1,234,567.89"},
		{-1234.56, "-$1,234.56"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatUSD(tc.amount)
			if result != tc.expected {
				t.Errorf("FormatUSD(%f) = %s, want %s", tc.amount, result, tc.expected)
			}
		})
	}
}

func TestFormatPercentExamples(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{0, "0.00%"},
		{1.5, "+1.50%"},
		{-2.5, "-2.50%"},
		{100, "+100.00%"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatPercent(tc.value)
			if result != tc.expected {
				t.Errorf("FormatPercent(%f) = %s, want %s", tc.value, result, tc.expected)
			}
		})
	}
}

func TestFormatPriceExamples(t *testing.T) {
	testCases := []struct {
		price    float64
		expected string
	}{
		{64000.5, "64000.50"},
		{10, "10.00"},
		{2.5, "2.5000"},
		{0.004321, "0.0043"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatPrice(tc.price)
			if result != tc.expected {
				t.Errorf("FormatPrice(%f) = %s, want %s", tc.price, result, tc.expected)
			}
		})
	}
}

func TestBuildManualTradeValidation(t *testing.T) {
	if _, err := buildManualTrade("btc", "long", 1, 100, 0, 0, "", 0); err != nil {
		t.Fatalf("valid trade rejected: %v", err)
	}
	if _, err := buildManualTrade("", "long", 1, 100, 0, 0, "", 0); err == nil {
		t.Error("empty coin accepted")
	}
	if _, err := buildManualTrade("BTC", "sideways", 1, 100, 0, 0, "", 0); err == nil {
		t.Error("bad side accepted")
	}
	if _, err := buildManualTrade("BTC", "long", 0, 100, 0, 0, "", 0); err == nil {
		t.Error("zero size accepted")
	}
	if _, err := buildManualTrade("BTC", "long", 1, -1, 0, 0, "", 0); err == nil {
		t.Error("negative price accepted")
	}
	if _, err := buildManualTrade("BTC", "long", 1, 100, 0, 0, "20-08-2025", 0); err == nil {
		t.Error("bad timestamp accepted")
	}

	tr, err := buildManualTrade("eth", "short", 2, 2600, -14.2, 0.9, "2025-08-20 10:10:00", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Coin != "ETH" {
		t.Errorf("coin not uppercased: %s", tr.Coin)
	}
	if tr.Side != "Short" {
		t.Errorf("side = %s, want Short", tr.Side)
	}
	if tr.Time != "2025-08-20 10:10:00" {
		t.Errorf("time = %s", tr.Time)
	}
}
