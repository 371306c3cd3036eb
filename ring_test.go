package abg

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestSampleRing_AngleZeroMatchesCalculator(t *testing.T) {
	tests := []struct {
		paco2, hco3, radius float64
	}{
		{40, 24, 2},
		{10, 5, 2},
		{100, 50, 7.5},
		{33.3, 17.1, 0.25},
	}
	for _, tt := range tests {
		ring := SampleRing(tt.paco2, tt.hco3, tt.radius, 100)
		want, err := CalculatePH(tt.paco2+tt.radius, tt.hco3)
		if err != nil {
			t.Fatal(err)
		}
		first := ring[0]
		if first.Angle != 0 {
			t.Errorf("first angle = %v, want 0", first.Angle)
		}
		if first.PH != want {
			t.Errorf("SampleRing(%v, %v, %v)[0].PH = %v, want exactly %v", tt.paco2, tt.hco3, tt.radius, first.PH, want)
		}
		if first.HCO3 != tt.hco3 {
			t.Errorf("SampleRing(%v, %v, %v)[0].HCO3 = %v, want exactly %v", tt.paco2, tt.hco3, tt.radius, first.HCO3, tt.hco3)
		}
	}
}

func TestSampleRing_ClosesAndOrders(t *testing.T) {
	ring := SampleRing(40, 24, 2, 100)
	if len(ring) != 100 {
		t.Fatalf("len = %d, want 100", len(ring))
	}
	last := ring[len(ring)-1]
	if math.Abs(last.Angle-2*math.Pi) > 1e-12 {
		t.Errorf("last angle = %v, want 2π", last.Angle)
	}
	if math.Abs(last.PH-ring[0].PH) > 1e-12 || math.Abs(last.HCO3-ring[0].HCO3) > 1e-12 {
		t.Errorf("ring not closed: first %+v, last %+v", ring[0], last)
	}
	for i := 1; i < len(ring); i++ {
		if ring[i].Angle <= ring[i-1].Angle {
			t.Fatalf("angles not increasing at %d: %v <= %v", i, ring[i].Angle, ring[i-1].Angle)
		}
	}
	wantStep := 2 * math.Pi / 99
	if got := ring[1].Angle - ring[0].Angle; math.Abs(got-wantStep) > 1e-12 {
		t.Errorf("angle step = %v, want %v", got, wantStep)
	}
}

func TestSampleRing_OnCircle(t *testing.T) {
	const radius = 3.0
	for _, p := range SampleRing(50, 20, radius, 37) {
		d := math.Hypot(p.PaCO2-50, p.HCO3-20)
		if math.Abs(d-radius) > 1e-9 {
			t.Errorf("sample at θ=%v is %v from center, want %v", p.Angle, d, radius)
		}
		want, err := CalculatePH(p.PaCO2, p.HCO3)
		if err != nil {
			t.Fatal(err)
		}
		if p.PH != want {
			t.Errorf("sample at θ=%v pH = %v, want %v", p.Angle, p.PH, want)
		}
	}
}

func TestSampleRing_SmallCounts(t *testing.T) {
	if got := SampleRing(40, 24, 2, 0); len(got) != 0 {
		t.Errorf("numPoints=0: len = %d, want 0", len(got))
	}
	if got := SampleRing(40, 24, 2, -3); len(got) != 0 {
		t.Errorf("numPoints=-3: len = %d, want 0", len(got))
	}
	one := SampleRing(40, 24, 2, 1)
	if len(one) != 1 || one[0].Angle != 0 || one[0].PaCO2 != 42 {
		t.Errorf("numPoints=1: %+v", one)
	}
}

func TestSampleRing_InvalidSamplesBecomeNaN(t *testing.T) {
	// Radius larger than HCO3 pushes the lower half of the ring below zero.
	ring := SampleRing(40, 1, 2, 9)
	if len(ring) != 9 {
		t.Fatalf("len = %d, want 9", len(ring))
	}
	var invalid int
	for _, p := range ring {
		if !p.Valid() {
			invalid++
			if !math.IsNaN(p.PH) {
				t.Errorf("invalid sample pH = %v, want NaN", p.PH)
			}
			if p.HCO3 > 0 && p.PaCO2 > 0 {
				t.Errorf("sample %+v marked invalid but in domain", p)
			}
		}
	}
	if invalid == 0 {
		t.Error("expected some samples outside the domain")
	}
	if !ring[0].Valid() {
		t.Error("sample at θ=0 should be valid")
	}
}

func TestSampleRing_SkipInvalid(t *testing.T) {
	full := SampleRing(40, 1, 2, 9)
	skipped := SampleRing(40, 1, 2, 9, WithSkipInvalid())

	var valid int
	for _, p := range full {
		if p.Valid() {
			valid++
		}
	}
	if len(skipped) != valid {
		t.Fatalf("len(skipped) = %d, want %d", len(skipped), valid)
	}
	for i, p := range skipped {
		if !p.Valid() {
			t.Errorf("skipped[%d] is invalid: %+v", i, p)
		}
		if i > 0 && p.Angle <= skipped[i-1].Angle {
			t.Errorf("order not preserved at %d", i)
		}
	}
}

func TestSampleRing_LogsInvalid(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	SampleRing(40, 1, 2, 9)
	if !strings.Contains(buf.String(), "ring samples outside domain") {
		t.Errorf("expected debug log, got: %s", buf.String())
	}

	buf.Reset()
	SampleRing(40, 24, 2, 9)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestRing_Projections(t *testing.T) {
	ring := SampleRing(40, 24, 2, 5)
	phs, hco3s := ring.PHs(), ring.HCO3s()
	if len(phs) != 5 || len(hco3s) != 5 {
		t.Fatalf("projection lengths = %d, %d", len(phs), len(hco3s))
	}
	for i, p := range ring {
		if phs[i] != p.PH || hco3s[i] != p.HCO3 {
			t.Errorf("projection %d mismatch", i)
		}
	}
}

func BenchmarkSampleRing(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SampleRing(40, 24, 2, 100)
	}
}
