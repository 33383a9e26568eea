package eventlog

// Game is one game from an event file. A Game is complete when a Decoder
// returns it and must be treated as read-only from then on.
type Game struct {
	// ID is the game id from the "id" line, e.g. "NYA201804050".
	ID string

	// Source is the path of the file the game was read from, if known.
	Source string

	// Line is the 1-based line number of the game's "id" line.
	Line int

	// Info holds the game's info records in file order.
	Info []*InfoRecord

	// Records holds the play-by-play records in file order.
	Records []Record
}

// InfoValue returns the value of the first info record with the given key.
func (g *Game) InfoValue(key string) (string, bool) {
	for _, rec := range g.Info {
		if rec.Key() == key {
			return rec.Value(), true
		}
	}
	return "", false
}

// Count returns how many play-by-play records of the given kind the game has.
func (g *Game) Count(kind RecordKind) int {
	n := 0
	for _, rec := range g.Records {
		if rec.Kind() == kind {
			n++
		}
	}
	return n
}
