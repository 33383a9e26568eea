// Package eventlog decodes play-by-play event files into games.
//
// An event file is a sequence of comma-separated lines. The first column of
// every line names the record kind; an "id" line starts a new game and every
// following line up to the next "id" belongs to it. A Decoder reads lines in
// order and yields one *Game per id, with the game's records in file order.
//
// Records keep the text of the line they came from and expose columns as
// substrings of it. Player and team ids are resolved to caller-defined
// objects through a Session, which interns each id once no matter how many
// records or files mention it.
package eventlog

import (
	"fmt"

	"github.com/yaklabco/retrolog/pkg/enumcodec"
)

// RecordKind is the leading token of an event-file line.
type RecordKind uint8

const (
	// KindID starts a game and carries its id.
	KindID RecordKind = iota

	// KindVersion is the event-file format version.
	KindVersion

	// KindInfo is a game information record, e.g. the home team.
	KindInfo

	// KindStartingLineup places a player in the starting lineup.
	KindStartingLineup

	// KindPlay describes one play.
	KindPlay

	// KindSubstitution replaces a player. It always follows a play whose
	// event is "NP" (no play), which marks where the substitution happened.
	KindSubstitution

	// KindCommentary is free-form commentary.
	KindCommentary

	// KindData carries end-of-game data; only earned runs are defined.
	KindData

	// KindBatterAdjustment records a batter hitting from an unexpected side.
	KindBatterAdjustment

	// KindPitcherAdjustment records a pitcher throwing with an unexpected hand.
	KindPitcherAdjustment

	// KindBattingOrderAdjustment records a team batting out of order.
	KindBattingOrderAdjustment
)

// RecordKinds decodes the first column of a line.
//
//nolint:gochecknoglobals // Enumeration declaration; the decode table is cached inside.
var RecordKinds = enumcodec.New("RecordKind",
	enumcodec.Member[RecordKind]{Value: KindID, Ident: "Id"},
	enumcodec.Member[RecordKind]{Value: KindVersion, Ident: "Version"},
	enumcodec.Member[RecordKind]{Value: KindInfo, Ident: "Info"},
	enumcodec.Member[RecordKind]{Value: KindStartingLineup, Ident: "StartingLineup", Name: "start"},
	enumcodec.Member[RecordKind]{Value: KindPlay, Ident: "Play"},
	enumcodec.Member[RecordKind]{Value: KindSubstitution, Ident: "Substitution", Name: "sub"},
	enumcodec.Member[RecordKind]{Value: KindCommentary, Ident: "Commentary", Name: "com"},
	enumcodec.Member[RecordKind]{Value: KindData, Ident: "Data"},
	enumcodec.Member[RecordKind]{Value: KindBatterAdjustment, Ident: "BatterAdjustment", Name: "badj"},
	enumcodec.Member[RecordKind]{Value: KindPitcherAdjustment, Ident: "PitcherAdjustment", Name: "padj"},
	enumcodec.Member[RecordKind]{Value: KindBattingOrderAdjustment, Ident: "BattingOrderAdjustment", Name: "ladj"},
)

// String returns the kind's spelling in event files.
func (k RecordKind) String() string {
	if name, ok := RecordKinds.Name(k); ok {
		return name
	}
	return fmt.Sprintf("RecordKind(%d)", uint8(k))
}
