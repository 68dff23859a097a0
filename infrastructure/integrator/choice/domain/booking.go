package choicedomain

// BookingEntry is one raw reservation from the booking platform.
type BookingEntry struct {
	Num            int      `json:"num"`
	DateTime       string   `json:"dateTime"`
	Status         string   `json:"status"`
	Customer       Customer `json:"customer"`
	PersonCount    int      `json:"personCount"`
	Comment        string   `json:"comment"`
	Note           string   `json:"note"`
	User           User     `json:"user"`
	Deposit        Deposit  `json:"deposit"`
	LocationPoints []string `json:"locationPoints"`
}

type Customer struct {
	Name string `json:"name"`
}

// User is the staff member the booking is assigned to.
type User struct {
	Name string `json:"name"`
}

type Deposit struct {
	Amount float64 `json:"amount"`
}
