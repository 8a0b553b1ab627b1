package dashboard

type CoffeePauses struct {
	Today    int    `json:"today"`
	ThisWeek int    `json:"thisWeek"`
	Next     string `json:"next"`
}

type Lunches struct {
	Today          int    `json:"today"`
	ReservedPlaces int    `json:"reservedPlaces"`
	Next           string `json:"next"`
}

type ReservationStats struct {
	Ongoing  int64  `json:"ongoing"`
	ThisWeek int64  `json:"thisWeek"`
	Next     string `json:"next"`
}

type EnhancedCoffee struct {
	Today    int    `json:"today"`
	ThisWeek int    `json:"thisWeek"`
	Next     string `json:"next"`
}

type Cocktails struct {
	Scheduled int64  `json:"scheduled"`
	ThisMonth int64  `json:"thisMonth"`
	Next      string `json:"next"`
}

type RoomRentals struct {
	Today    int64  `json:"today"`
	ThisWeek int64  `json:"thisWeek"`
	Next     string `json:"next"`
}

type Stats struct {
	CoffeePauses   CoffeePauses     `json:"coffeePauses"`
	Lunches        Lunches          `json:"lunches"`
	Reservations   ReservationStats `json:"reservations"`
	EnhancedCoffee EnhancedCoffee   `json:"enhancedCoffee"`
	Cocktails      Cocktails        `json:"cocktails"`
	RoomRentals    RoomRentals      `json:"roomRentals"`
}

// --------------------------------------------------
// Overview
// --------------------------------------------------

type UpcomingEvent struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
	Client    string `json:"client"`
	Service   string `json:"service"`
	Type      string `json:"type"`
}

type ActiveClient struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
	Status  string `json:"status"`
}

type QuickStats struct {
	EventsToday       int64 `json:"eventsToday"`
	ReservationsToday int64 `json:"reservationsToday"`
	ActiveClients     int64 `json:"activeClients"`
	TotalServices     int64 `json:"totalServices"`
}

type Overview struct {
	UpcomingEvents []UpcomingEvent `json:"upcomingEvents"`
	ActiveClients  []ActiveClient  `json:"activeClients"`
	QuickStats     QuickStats      `json:"quickStats"`
}
