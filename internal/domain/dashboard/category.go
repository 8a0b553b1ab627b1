package dashboard

import "github.com/BruksfildServices01/pause-manager/internal/models"

const (
	TypeCoffee   = "coffee"
	TypeLunch    = "lunch"
	TypeCocktail = "cocktail"

	// acima disso uma pausa café conta como "café amélioré"
	enhancedCoffeeMinParticipants = 10
)

// ActiveEventStatuses são os status de eventos que entram no painel.
var ActiveEventStatuses = []string{"scheduled", "confirmed"}

func IsCoffee(e models.Event) bool {
	return e.Type == TypeCoffee || e.Service.Type == TypeCoffee
}

func IsLunch(e models.Event) bool {
	return e.Type == TypeLunch || e.Service.Type == TypeLunch
}

// IsEnhancedCoffee olha só o tipo do evento, não o do serviço.
func IsEnhancedCoffee(e models.Event) bool {
	return e.Type == TypeCoffee && e.Participants > enhancedCoffeeMinParticipants
}

// Tally conta as categorias de uma lista de eventos já filtrada por janela.
type Tally struct {
	Coffee         int
	Lunch          int
	EnhancedCoffee int
	LunchPlaces    int
}

func TallyEvents(events []models.Event) Tally {
	var t Tally
	for _, e := range events {
		if IsCoffee(e) {
			t.Coffee++
		}
		if IsLunch(e) {
			t.Lunch++
			places := e.Participants
			if places <= 0 {
				places = 1
			}
			t.LunchPlaces += places
		}
		if IsEnhancedCoffee(e) {
			t.EnhancedCoffee++
		}
	}
	return t
}
