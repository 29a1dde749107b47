package nhl

import "fmt"

// LocalizedString is the {"default": "..."} wrapper the API uses for
// names that carry translations.
type LocalizedString struct {
	Default string `json:"default"`
}

// Conference identifies an NHL conference.
type Conference struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

// Division identifies an NHL division.
type Division struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

// Team is the consolidated team view derived from a standings entry.
type Team struct {
	Name        string     `json:"name"`
	CommonName  string     `json:"commonName"`
	Abbrev      string     `json:"abbrev"`
	Logo        string     `json:"logo"`
	Conference  Conference `json:"conference"`
	Division    Division   `json:"division"`
	FranchiseID *int64     `json:"franchiseId,omitempty"`
}

func (t Team) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Abbrev)
}

// Franchise is an entry from the franchise catalog.
type Franchise struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	TeamCommonName string `json:"teamCommonName,omitempty"`
}

// FranchisesResponse wraps the franchise catalog payload.
type FranchisesResponse struct {
	Data []Franchise `json:"data"`
}

// Roster groups a team's players by position.
type Roster struct {
	Forwards   []RosterPlayer `json:"forwards"`
	Defensemen []RosterPlayer `json:"defensemen"`
	Goalies    []RosterPlayer `json:"goalies"`
}

// RosterPlayer is a single player on a team roster.
type RosterPlayer struct {
	ID                  int64            `json:"id"`
	Headshot            string           `json:"headshot"`
	FirstName           LocalizedString  `json:"firstName"`
	LastName            LocalizedString  `json:"lastName"`
	SweaterNumber       int              `json:"sweaterNumber"`
	PositionCode        string           `json:"positionCode"`
	ShootsCatches       string           `json:"shootsCatches"`
	HeightInInches      int              `json:"heightInInches"`
	WeightInPounds      int              `json:"weightInPounds"`
	HeightInCentimeters int              `json:"heightInCentimeters"`
	WeightInKilograms   int              `json:"weightInKilograms"`
	BirthDate           string           `json:"birthDate"`
	BirthCity           LocalizedString  `json:"birthCity"`
	BirthCountry        string           `json:"birthCountry"`
	BirthStateProvince  *LocalizedString `json:"birthStateProvince,omitempty"`
}
