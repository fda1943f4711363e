package finance

import (
	"math"
	"testing"
)

func TestDerive(t *testing.T) {
	t.Run("at or above target is otimo", func(t *testing.T) {
		got := Derive(4800, 30, 150)
		if got.HourlyYield != 160 {
			t.Fatalf("expected yield 160, got %.2f", got.HourlyYield)
		}
		if got.ProfitabilityFlag != FlagOtimo {
			t.Fatalf("expected %s, got %s", FlagOtimo, got.ProfitabilityFlag)
		}
		if got.Variance != 10 {
			t.Fatalf("expected variance 10, got %.2f", got.Variance)
		}
	})

	t.Run("exactly the target is otimo", func(t *testing.T) {
		got := Derive(4500, 30, 150)
		if got.ProfitabilityFlag != FlagOtimo {
			t.Fatalf("expected %s, got %s", FlagOtimo, got.ProfitabilityFlag)
		}
	})

	t.Run("within 90 percent is atencao", func(t *testing.T) {
		got := Derive(4200, 30, 150) // yield 140, 93% of target
		if got.ProfitabilityFlag != FlagAtencao {
			t.Fatalf("expected %s, got %s", FlagAtencao, got.ProfitabilityFlag)
		}
	})

	t.Run("90 percent boundary is atencao", func(t *testing.T) {
		got := Derive(4050, 30, 150) // yield 135 == 0.9 * 150
		if got.ProfitabilityFlag != FlagAtencao {
			t.Fatalf("expected %s, got %s", FlagAtencao, got.ProfitabilityFlag)
		}
	})

	t.Run("below 90 percent is reajustar", func(t *testing.T) {
		got := Derive(3000, 30, 150) // yield 100
		if got.ProfitabilityFlag != FlagReajustar {
			t.Fatalf("expected %s, got %s", FlagReajustar, got.ProfitabilityFlag)
		}
		if got.Variance != -50 {
			t.Fatalf("expected variance -50, got %.2f", got.Variance)
		}
	})

	t.Run("no hours logged yet", func(t *testing.T) {
		got := Derive(5000, 0, 150)
		if got.HoursUsed != 0 {
			t.Fatalf("expected 0 hours echoed, got %.2f", got.HoursUsed)
		}
		if math.IsNaN(got.HourlyYield) || math.IsInf(got.HourlyYield, 0) {
			t.Fatalf("yield must stay finite, got %v", got.HourlyYield)
		}
		if got.ProfitabilityFlag != FlagOtimo {
			t.Fatalf("expected %s before hours arrive, got %s", FlagOtimo, got.ProfitabilityFlag)
		}
	})
}
