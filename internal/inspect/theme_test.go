package inspect

import "testing"

func TestBalanceColorEndpointsAreRedAndGreenLeaning(t *testing.T) {
	lo := BalanceColor(-2, ThemeDefault)
	hi := BalanceColor(2, ThemeDefault)

	lr, lg, _ := lo.RGB()
	hr, hg, _ := hi.RGB()

	if lr <= lg {
		t.Errorf("balance -2 color %v is not red-leaning (r=%d g=%d)", lo, lr, lg)
	}
	if hg <= hr {
		t.Errorf("balance +2 color %v is not green-leaning (r=%d g=%d)", hi, hr, hg)
	}
}

func TestBalanceColorClampsOutOfRange(t *testing.T) {
	// Balance factors beyond [-2,2] shouldn't occur in practice, but the
	// gradient math must not panic on them.
	_ = BalanceColor(-10, ThemeDefault)
	_ = BalanceColor(10, ThemeDefault)
}

func TestBalanceColorUnknownThemeFallsBackToDefault(t *testing.T) {
	got := BalanceColor(0, Theme("nonexistent"))
	want := BalanceColor(0, ThemeDefault)
	if got != want {
		t.Errorf("unknown theme color = %v, want default %v", got, want)
	}
}
