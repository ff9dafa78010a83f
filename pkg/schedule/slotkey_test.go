package schedule

import "testing"

func TestSlotKey(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		want  string
	}{
		// 03/11/2025 is a Monday
		{"monday", "03/11/2025", "09:00", "0_09:00"},
		{"tuesday", "04/11/2025", "09:00", "1_09:00"},
		{"sunday", "09/11/2025", "23:55", "6_23:55"},
		{"seconds dropped", "03/11/2025", "09:00:30", "0_09:00"},
		{"single digit hour padded", "03/11/2025", "9:05", "0_09:05"},
		{"bad date", "not-a-date", "09:00", "ERR_not-a-date_09:00"},
		{"bad time", "03/11/2025", "morning", "ERR_03/11/2025_morning"},
		{"empty time", "03/11/2025", "", "ERR_03/11/2025_"},
		{"out of range hour", "03/11/2025", "25:00", "ERR_03/11/2025_25:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SlotKey(tc.date, tc.clock)
			if got != tc.want {
				t.Fatalf("SlotKey(%q, %q) = %q, want %q", tc.date, tc.clock, got, tc.want)
			}
		})
	}
}

func TestSlotKeyUsesCalendarWeekdayNotAppearanceOrder(t *testing.T) {
	// Same weekday in two different weeks must share a key prefix even when
	// processed in reverse chronological order.
	later := SlotKey("10/11/2025", "09:00") // Monday, week after
	earlier := SlotKey("03/11/2025", "09:00")
	if later != earlier {
		t.Fatalf("same weekday different weeks: %q != %q", later, earlier)
	}
}

func TestIsErrKey(t *testing.T) {
	if !IsErrKey(SlotKey("bad", "bad")) {
		t.Fatal("expected error marker key")
	}
	if IsErrKey("0_09:00") {
		t.Fatal("valid key misreported as error marker")
	}
}

func TestAttachSlotKeys(t *testing.T) {
	rows := AttachSlotKeys([]CleanRow{
		{Date: "03/11/2025", Time: "09:00", Program: "Jornal Padrão"},
		{Date: "", Time: "09:00", Program: "X"},
	})
	if rows[0].SlotKey != "0_09:00" {
		t.Fatalf("unexpected key: %q", rows[0].SlotKey)
	}
	if !IsErrKey(rows[1].SlotKey) {
		t.Fatalf("expected error key, got %q", rows[1].SlotKey)
	}
}

func TestCanonicalClock(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"09:00", "09:00", true},
		{"9:00", "09:00", true},
		{"09:00:45", "09:00", true},
		{" 23:55 ", "23:55", true},
		{"24:00", "", false},
		{"10:75", "", false},
		{"no clock here", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := CanonicalClock(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("CanonicalClock(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
