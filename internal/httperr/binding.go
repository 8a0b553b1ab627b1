package httperr

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromBinding converte o erro do ShouldBindJSON num erro de validação
// com uma mensagem por campo.
func FromBinding(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrValidation("invalid_request", "Données invalides", err.Error())
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldMessage(fe))
	}
	return ErrValidation("invalid_request", "Données invalides", details...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Le champ %s est obligatoire", field)
	case "email", "mail":
		return "Veuillez fournir un email valide"
	case "oneof":
		return fmt.Sprintf("Le champ %s doit être: %s", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("Le champ %s ne peut pas être vide", field)
	case "min":
		return fmt.Sprintf("Le champ %s doit être au moins %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("Le champ %s ne peut pas dépasser %s caractères", field, fe.Param())
	case "hhmm":
		return fmt.Sprintf("Le champ %s doit être au format HH:MM", field)
	case "ymd":
		return fmt.Sprintf("Le champ %s doit être au format YYYY-MM-DD", field)
	case "price":
		return "Le prix doit être un nombre ou un format valide (ex: 15, 15.50, 15 €)"
	default:
		return fmt.Sprintf("Le champ %s est invalide", field)
	}
}
