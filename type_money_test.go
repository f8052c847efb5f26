package cryptofolio

import "testing"

func TestMoneyString(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{m: USD(1234.56), want: "$1,234.56"},
		{m: USD(0), want: "$0.00"},
		{m: USD(-42.5), want: "-$42.50"},
		{m: M(1234.56, "eur"), want: "€1,234.56"},
		{m: M(1234.56, "gbp"), want: "£1,234.56"},
	}
	for _, c := range cases {
		if got := c.m.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := USD(10).SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q, want +$10.00", got)
	}
	if got := USD(-10).SignedString(); got != "-$10.00" {
		t.Errorf("SignedString() = %q, want -$10.00", got)
	}
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
}

func TestMoneyPercentOf(t *testing.T) {
	if got := USD(250).PercentOf(USD(1000)); !got.Equal(25) {
		t.Errorf("PercentOf = %s, want 25%%", got)
	}
	if got := USD(-50).PercentOf(USD(100)); !got.Equal(-50) {
		t.Errorf("PercentOf = %s, want -50%%", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the zero Money carries no currency and adopts its operand's
	total := Money{}
	total = total.Add(M(10, "eur"))
	if total.Currency() != "eur" {
		t.Errorf("currency = %q, want eur", total.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mixing currencies should panic")
		}
	}()
	M(1, "usd").Add(M(1, "eur"))
}

func TestPercentStrings(t *testing.T) {
	if got := Percent(12.5).String(); got != "12.50%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(12.3).SignedString(); got != "+12.30%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(-5).SignedString(); got != "-5.00%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q", got)
	}
}
