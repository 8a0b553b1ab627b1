package validators

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	hhmmRe  = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)
	ymdRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	priceRe = regexp.MustCompile(`^[\d\s,./€]+$`)
)

func IsEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsHHMM aceita apenas horas 24h com dois dígitos ("09:30", nunca "9:30").
func IsHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

func IsYMD(s string) bool {
	return ymdRe.MatchString(s)
}

// IsPrice aceita só dígitos, espaços e ",./€" ("15", "15,50", "15 €").
func IsPrice(s string) bool {
	return priceRe.MatchString(s)
}

// Register adiciona as tags hhmm, ymd, price, mail e notblank ao validator
// do gin. notblank recusa texto só com espaços, que passaria por min=1.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsHHMM(fl.Field().String())
	})
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		return IsYMD(fl.Field().String())
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return IsPrice(fl.Field().String())
	})
	_ = v.RegisterValidation("mail", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
}
