package catalog

import (
	"errors"
	"testing"
)

func TestModeParams(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		want      Params
		wantError bool
	}{
		{
			name: "Organic mode",
			mode: ModeOrganic,
			want: Params{A: 2.4, B: 1.05, C: 2.5, D: 0.38},
		},
		{
			name: "Semidetached mode",
			mode: ModeSemidetached,
			want: Params{A: 3.0, B: 1.12, C: 2.5, D: 0.35},
		},
		{
			name: "Embedded mode",
			mode: ModeEmbedded,
			want: Params{A: 3.6, B: 1.20, C: 2.5, D: 0.32},
		},
		{
			name:      "Unknown mode",
			mode:      Mode("waterfall"),
			wantError: true,
		},
		{
			name:      "Empty mode",
			mode:      Mode(""),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ModeParams(tt.mode)
			if tt.wantError {
				if err == nil {
					t.Fatalf("ModeParams(%q) expected error but got none", tt.mode)
				}
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("ModeParams(%q) error = %v, want ErrUnknownMode", tt.mode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ModeParams(%q) error = %v", tt.mode, err)
			}
			if params != tt.want {
				t.Errorf("ModeParams(%q) = %+v, want %+v", tt.mode, params, tt.want)
			}
		})
	}
}

func TestModesOrder(t *testing.T) {
	modes := Modes()
	want := []Mode{ModeOrganic, ModeSemidetached, ModeEmbedded}
	if len(modes) != len(want) {
		t.Fatalf("Modes() returned %d modes, want %d", len(modes), len(want))
	}
	for i, mode := range want {
		if modes[i] != mode {
			t.Errorf("Modes()[%d] = %s, want %s", i, modes[i], mode)
		}
	}
}

func TestDriversOrderAndNominal(t *testing.T) {
	wantOrder := []string{"RELY", "DATA", "CPLX", "TOOL", "VIRT"}

	drivers := Drivers()
	if len(drivers) != len(wantOrder) {
		t.Fatalf("Drivers() returned %d drivers, want %d", len(drivers), len(wantOrder))
	}

	for i, driver := range drivers {
		if driver.Key != wantOrder[i] {
			t.Errorf("Drivers()[%d].Key = %s, want %s", i, driver.Key, wantOrder[i])
		}
		if driver.Nominal != 1.00 {
			t.Errorf("driver %s nominal = %g, want 1.00", driver.Key, driver.Nominal)
		}
		nominal, ok := driver.ValueForCode("N")
		if !ok {
			t.Errorf("driver %s has no N level", driver.Key)
		} else if nominal != 1.00 {
			t.Errorf("driver %s N level = %g, want 1.00", driver.Key, nominal)
		}
		for _, level := range driver.Levels {
			if level.Multiplier <= 0 {
				t.Errorf("driver %s level %s has non-positive multiplier %g", driver.Key, level.Code, level.Multiplier)
			}
		}
	}
}

func TestDriverByKey(t *testing.T) {
	driver, ok := DriverByKey("CPLX")
	if !ok {
		t.Fatal("DriverByKey(CPLX) not found")
	}
	if driver.Name != "Product Complexity" {
		t.Errorf("CPLX name = %s", driver.Name)
	}
	if len(driver.Levels) != 6 {
		t.Errorf("CPLX has %d levels, want 6", len(driver.Levels))
	}
	if value, ok := driver.ValueForCode("EH"); !ok || value != 1.65 {
		t.Errorf("CPLX EH = %g (found %t), want 1.65", value, ok)
	}

	if _, ok := DriverByKey("ACAP"); ok {
		t.Error("DriverByKey(ACAP) should not be found")
	}
}

func TestDriverHasValue(t *testing.T) {
	driver, ok := DriverByKey("RELY")
	if !ok {
		t.Fatal("DriverByKey(RELY) not found")
	}

	for _, level := range driver.Levels {
		if !driver.HasValue(level.Multiplier) {
			t.Errorf("RELY should accept its own level value %g", level.Multiplier)
		}
	}
	if driver.HasValue(2.0) {
		t.Error("RELY should reject value 2.0")
	}
	if driver.HasValue(0) {
		t.Error("RELY should reject value 0")
	}
}

func TestModeDisplayName(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeOrganic, "Organic"},
		{ModeSemidetached, "Semidetached"},
		{ModeEmbedded, "Embedded"},
		{Mode(""), ""},
	}

	for _, tt := range tests {
		if got := tt.mode.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
