package pdfio

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain",
			text: "available at doi 10.1016/j.jtbi.2024.01.001 in press",
			want: "10.1016/j.jtbi.2024.01.001",
		},
		{
			name: "url form",
			text: "https://doi.org/10.1103/PhysRevLett.89.210601",
			want: "10.1103/PhysRevLett.89.210601",
		},
		{
			name: "trailing punctuation trimmed",
			text: "see 10.1038/s41467-020-19248-0.",
			want: "10.1038/s41467-020-19248-0",
		},
		{
			name: "trailing close paren trimmed",
			text: "(doi: 10.1371/journal.pone.0123456)",
			want: "10.1371/journal.pone.0123456",
		},
		{
			name: "first of several",
			text: "10.1016/j.epidem.2021.100501 and later 10.1016/j.epidem.2022.100601",
			want: "10.1016/j.epidem.2021.100501",
		},
		{
			name: "registrant too short",
			text: "10.12/x is not a DOI",
			want: "",
		},
		{
			name: "no suffix after slash",
			text: "prefix only 10.1016/",
			want: "",
		},
		{
			name: "none",
			text: "plain prose with no identifier at all",
			want: "",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
