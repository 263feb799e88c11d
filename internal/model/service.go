package model

// Service categories.
const (
	CategoryBarber = "barber"
	CategoryPool   = "pool"
	CategoryCar    = "car"
)

// ServiceCategories lists the valid service categories.
var ServiceCategories = []string{CategoryBarber, CategoryPool, CategoryCar}

// Service is an append-only record of a rendered service. Which fields are
// populated depends on the category: barber uses Client/Service/Price,
// pool uses User/Time, car uses Vehicle/Service/Price.
type Service struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Category string `json:"category"`

	Client  string  `json:"client,omitempty"`
	User    string  `json:"user,omitempty"`
	Vehicle string  `json:"vehicle,omitempty"`
	Service string  `json:"service,omitempty"`
	Time    string  `json:"time,omitempty"`
	Price   float64 `json:"price,omitempty"`

	Timestamp string `json:"timestamp"`
}

// ValidCategory reports whether category names a known service category.
func ValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *Service) RecordID() string { return s.ID }

func (s *Service) RecordKind() Kind { return KindService }
