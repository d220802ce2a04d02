package text

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minusculas", "The Matrix", "the matrix"},
		{"acentos", "Léon: The Professional", "leon the professional"},
		{"acentos franceses", "Amélie Poulain à Montmartre", "amelie poulain a montmartre"},
		{"puntuacion", "Spider-Man: No Way Home!!", "spider man no way home"},
		{"espacios multiples", "  El   Topo  ", "el topo"},
		{"numeros", "Blade Runner 2049", "blade runner 2049"},
		{"vacio", "", ""},
		{"solo simbolos", "***", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Science Fiction", "science_fiction"},
		{"film noir", "film_noir"},
		{"Comédie", "comedie"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
