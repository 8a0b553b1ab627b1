package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsHHMM(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:59", "23:59"}
	invalid := []string{"9:30", "24:00", "12:60", "12h30", "", "12:3"}

	for _, s := range valid {
		if !IsHHMM(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range invalid {
		if IsHHMM(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestIsEmail(t *testing.T) {
	if !IsEmail("contact@traiteur.fr") {
		t.Error("expected valid email")
	}
	if !IsEmail("jean.dupont@mail.example.com") {
		t.Error("expected valid dotted email")
	}
	for _, s := range []string{"nope", "a@b", "@x.fr", "a@b.abcdef"} {
		if IsEmail(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestIsPrice(t *testing.T) {
	for _, s := range []string{"15", "15.50", "15,50", "15 €", "12 / 15 €"} {
		if !IsPrice(s) {
			t.Errorf("%q should be a valid price", s)
		}
	}
	for _, s := range []string{"quinze", "15$", "", "15 €/personne"} {
		if IsPrice(s) {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestRegisterTags(t *testing.T) {
	v := validator.New()
	Register(v)

	type in struct {
		Date  string `validate:"ymd"`
		Start string `validate:"hhmm"`
	}

	if err := v.Struct(in{Date: "2024-01-10", Start: "09:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Struct(in{Date: "10/01/2024", Start: "9:00"}); err == nil {
		t.Fatal("expected validation errors")
	}
}

func TestNotBlank(t *testing.T) {
	v := validator.New()
	Register(v)

	type in struct {
		Name  string  `validate:"required,notblank"`
		Title *string `validate:"omitempty,notblank"`
	}
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		in      in
		wantErr bool
	}{
		{name: "filled", in: in{Name: "ACME", Title: str("Pause café")}},
		{name: "nil pointer skipped", in: in{Name: "ACME"}},
		{name: "spaces only", in: in{Name: "   "}, wantErr: true},
		{name: "tabs and newlines", in: in{Name: "\t\n"}, wantErr: true},
		{name: "pointer to spaces", in: in{Name: "ACME", Title: str("  ")}, wantErr: true},
		{name: "pointer to empty", in: in{Name: "ACME", Title: str("")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
