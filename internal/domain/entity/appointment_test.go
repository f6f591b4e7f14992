package entity

import "testing"

func TestComposeNote(t *testing.T) {
	cases := []struct {
		name          string
		symptom, note string
		want          string
	}{
		{"both", "headache and fever", "prefers morning visits", "Symptoms: headache and fever\nprefers morning visits"},
		{"symptom only", "headache", "", "Symptoms: headache"},
		{"note only", "", "bring referral letter", "bring referral letter"},
		{"both empty", "", "", ""},
		{"whitespace only", "   ", "\t", ""},
		{"trims segments", "  dizzy  ", "  call first  ", "Symptoms: dizzy\ncall first"},
	}
	for _, tc := range cases {
		if got := ComposeNote(tc.symptom, tc.note); got != tc.want {
			t.Errorf("%s: ComposeNote(%q, %q) = %q, want %q", tc.name, tc.symptom, tc.note, got, tc.want)
		}
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []string{"upcoming", "ongoing", "completed", "cancelled"} {
		if !ValidAppointmentStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "pending", "UPCOMING", "done"} {
		if ValidAppointmentStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
