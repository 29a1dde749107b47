package nhl

import "strconv"

// GameID is an opaque numeric handle for a single NHL game. The API
// packs season, game type and sequence into the digits, but nothing
// here depends on that structure.
type GameID int64

// ParseGameID parses the decimal string form of a game identifier.
func ParseGameID(s string) (GameID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return GameID(id), nil
}

// Int64 returns the underlying integer.
func (id GameID) Int64() int64 {
	return int64(id)
}

func (id GameID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
