package eventlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/retrolog/pkg/csvline"
	"github.com/yaklabco/retrolog/pkg/enumcodec"
)

// LineSource supplies lines in order. *bufio.Scanner satisfies it.
type LineSource interface {
	// Scan advances to the next line, returning false at end of input or on error.
	Scan() bool

	// Text returns the current line without its line terminator.
	Text() string

	// Err returns the first read error, or nil at a clean end of input.
	Err() error
}

// maxLineBytes bounds a single line. Real event-file lines are well under
// a kilobyte.
const maxLineBytes = 1 << 20

// inlineColumns is how many columns a record can collect before spilling to
// the heap. Play lines, the widest common kind, have seven.
const inlineColumns = 16

// dataKindEarnedRuns is the only defined data record kind.
const dataKindEarnedRuns = "er"

type state uint8

const (
	awaitingGame state = iota
	inGame
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger logs game boundaries at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithSource names the input in games and errors, typically a file path.
func WithSource(source string) Option {
	return func(d *Decoder) {
		d.source = source
	}
}

// WithRetainIgnored keeps version, commentary and adjustment lines as
// *IgnoredRecord values instead of dropping them.
func WithRetainIgnored() Option {
	return func(d *Decoder) {
		d.retainIgnored = true
	}
}

// Decoder turns a sequence of event-file lines into games.
//
// A Decoder reads forward only and is not safe for concurrent use. Decode
// several files in parallel by giving each its own Decoder.
type Decoder struct {
	src           LineSource
	logger        *log.Logger
	source        string
	retainIgnored bool

	state  state
	lineNo int
	game   *Game
	done   bool
	err    error

	inline [inlineColumns]csvline.Range
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src LineSource, opts ...Option) *Decoder {
	d := &Decoder{src: src}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewReaderDecoder creates a decoder reading lines from r.
func NewReaderDecoder(r io.Reader, opts ...Option) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	return NewDecoder(scanner, opts...)
}

// Next returns the next complete game. It returns io.EOF once every game has
// been returned. After any other error the decoder is unusable and keeps
// returning that error.
func (d *Decoder) Next() (*Game, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.done {
		return nil, io.EOF
	}

	for d.src.Scan() {
		d.lineNo++

		text := d.src.Text()
		if csvline.IsBlank(text) {
			continue
		}

		finished, err := d.decodeLine(text)
		if err != nil {
			d.err = err
			return nil, err
		}
		if finished != nil {
			return finished, nil
		}
	}

	if err := d.src.Err(); err != nil {
		d.err = fmt.Errorf("read %s after line %d: %w", d.describeSource(), d.lineNo, err)
		return nil, d.err
	}

	d.done = true
	if d.state == inGame {
		return d.finish(), nil
	}
	return nil, io.EOF
}

// Games returns the remaining games as a sequence. Iteration stops after the
// first error, which is yielded with a nil game.
func (d *Decoder) Games() iter.Seq2[*Game, error] {
	return func(yield func(*Game, error) bool) {
		for {
			game, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(game, err) || err != nil {
				return
			}
		}
	}
}

// decodeLine applies one non-blank line. It returns the previous game when
// the line starts a new one.
func (d *Decoder) decodeLine(text string) (*Game, error) {
	scanner := csvline.NewScanner(text)
	if !scanner.Next() {
		return nil, d.formatError(scanner.Err())
	}

	kind, err := RecordKinds.Decode(scanner.Text())
	if err != nil {
		if errors.Is(err, enumcodec.ErrDuplicateName) {
			return nil, err
		}
		return nil, d.formatError(err)
	}

	switch kind {
	case KindID:
		return d.startGame(&scanner)

	case KindInfo:
		line, err := d.collect(&scanner, text, kind)
		if err != nil {
			return nil, err
		}
		d.game.Info = append(d.game.Info, &InfoRecord{base: d.base(kind, line)})

	case KindStartingLineup, KindSubstitution:
		line, err := d.collect(&scanner, text, kind)
		if err != nil {
			return nil, err
		}
		d.game.Records = append(d.game.Records, &LineupRecord{base: d.base(kind, line)})

	case KindPlay:
		line, err := d.collect(&scanner, text, kind)
		if err != nil {
			return nil, err
		}
		d.game.Records = append(d.game.Records, &PlayRecord{base: d.base(kind, line)})

	case KindData:
		if !scanner.Next() {
			return nil, d.missingColumn(&scanner, "data kind")
		}
		if dataKind := scanner.Text(); dataKind != dataKindEarnedRuns {
			return nil, d.formatError(fmt.Errorf("data kind %q is not %q", dataKind, dataKindEarnedRuns))
		}
		line, err := d.collect(&scanner, text, kind)
		if err != nil {
			return nil, err
		}
		d.game.Records = append(d.game.Records, &EarnedRunsRecord{base: d.base(kind, line)})

	case KindVersion, KindCommentary, KindBatterAdjustment, KindPitcherAdjustment, KindBattingOrderAdjustment:
		// Not modeled. The rest of the line is not tokenized unless kept.
		if d.retainIgnored && d.state == inGame {
			line, err := d.collect(&scanner, text, kind)
			if err != nil {
				return nil, err
			}
			d.game.Records = append(d.game.Records, &IgnoredRecord{base: d.base(kind, line)})
		}

	default:
		return nil, d.formatError(fmt.Errorf("record kind %v is not handled", kind))
	}

	return nil, nil
}

// startGame handles an "id" line.
func (d *Decoder) startGame(scanner *csvline.Scanner) (*Game, error) {
	if !scanner.Next() {
		return nil, d.missingColumn(scanner, "game id")
	}
	id := scanner.Text()
	if id == "" {
		return nil, d.formatError(errors.New("empty game id"))
	}

	var finished *Game
	if d.state == inGame {
		finished = d.finish()
	}

	d.game = &Game{
		// The id outlives the line, which is otherwise only kept by records.
		ID:     strings.Clone(id),
		Source: d.source,
		Line:   d.lineNo,
	}
	d.state = inGame

	return finished, nil
}

// finish hands over the game under construction.
func (d *Decoder) finish() *Game {
	game := d.game
	d.game = nil
	d.state = awaitingGame

	if d.logger != nil {
		d.logger.Debug("decoded game",
			"game", game.ID,
			"source", game.Source,
			"info", len(game.Info),
			"records", len(game.Records),
		)
	}
	return game
}

// collect gathers the remaining columns of the line into an exact-length
// slice owned by the record.
func (d *Decoder) collect(scanner *csvline.Scanner, text string, kind RecordKind) (csvline.Line, error) {
	if d.state != inGame {
		return csvline.Line{}, d.formatError(fmt.Errorf("%v record before the first id record", kind))
	}

	// Appending past the inline array moves to a heap slice seeded with
	// the columns collected so far.
	columns := d.inline[:0]
	for scanner.Next() {
		columns = append(columns, scanner.Range())
	}
	if err := scanner.Err(); err != nil {
		return csvline.Line{}, d.formatError(err)
	}

	owned := make([]csvline.Range, len(columns))
	copy(owned, columns)
	return csvline.NewLine(text, owned), nil
}

func (d *Decoder) base(kind RecordKind, line csvline.Line) base {
	return base{kind: kind, line: line, lineNo: d.lineNo}
}

func (d *Decoder) missingColumn(scanner *csvline.Scanner, what string) error {
	if err := scanner.Err(); err != nil {
		return d.formatError(err)
	}
	return d.formatError(fmt.Errorf("missing %s column", what))
}

func (d *Decoder) formatError(err error) error {
	return &FormatError{Source: d.source, Line: d.lineNo, Err: err}
}

func (d *Decoder) describeSource() string {
	if d.source != "" {
		return d.source
	}
	return "input"
}
