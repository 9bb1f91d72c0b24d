package heightmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// mapLexer tokenises the height-map text. Any character outside the two
// rules makes the lexer fail, which Parse reports as ErrInvalidCharacter.
var mapLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Cells", Pattern: `[a-zSE]+`},
	{Name: "EOL", Pattern: `\r?\n`},
})

var (
	cellsToken = mapLexer.Symbols()["Cells"]
	eolToken   = mapLexer.Symbols()["EOL"]
)

// Parse reads a height map in text form from r. See ParseString.
func Parse(r io.Reader) (*HeightMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}

	return ParseString(string(data))
}

// ParseString parses the text form of a height map: one row per line,
// 'a'..'z' for elevations 0..25, 'S' for the start cell (elevation 0) and
// 'E' for the end cell (elevation 25). The input and every line are trimmed
// of surrounding whitespace first.
//
// Structural problems are fatal and reported with their line:column:
// ErrEmptyInput, ErrInvalidCharacter, ErrNonRectangular, ErrDuplicateStart,
// ErrDuplicateEnd and ErrMissingMarker.
func ParseString(input string) (*HeightMap, error) {
	text := normalize(input)
	if text == "" {
		return nil, ErrEmptyInput
	}

	lex, err := mapLexer.LexString("", text)
	if err != nil {
		return nil, fmt.Errorf("heightmap: lex: %w", err)
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
	}

	b := newBuilder(len(text))
	for _, tok := range tokens {
		switch tok.Type {
		case cellsToken:
			if err := b.addCells(tok); err != nil {
				return nil, err
			}
		case eolToken:
			if err := b.endRow(tok.Pos); err != nil {
				return nil, err
			}
		}
	}
	// text is trimmed, so the last row is never followed by an EOL token.
	if err := b.endRow(lexer.Position{Line: b.height + 1}); err != nil {
		return nil, err
	}

	return b.build()
}

// normalize trims the whole input and each of its lines.
func normalize(input string) string {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}

	return strings.Join(lines, "\n")
}

// builder accumulates cells row by row while validating markers and
// row lengths.
type builder struct {
	cells      []uint8
	width      int // -1 until the first row is closed
	height     int
	rowLen     int
	start, end int
}

func newBuilder(capacity int) *builder {
	return &builder{
		cells: make([]uint8, 0, capacity),
		width: -1,
		start: -1,
		end:   -1,
	}
}

func (b *builder) addCells(tok lexer.Token) error {
	for i := 0; i < len(tok.Value); i++ {
		c := tok.Value[i]
		switch c {
		case 'S':
			if b.start >= 0 {
				return fmt.Errorf("%w at %d:%d", ErrDuplicateStart, tok.Pos.Line, tok.Pos.Column+i)
			}
			b.start = len(b.cells)
			b.cells = append(b.cells, 0)
		case 'E':
			if b.end >= 0 {
				return fmt.Errorf("%w at %d:%d", ErrDuplicateEnd, tok.Pos.Line, tok.Pos.Column+i)
			}
			b.end = len(b.cells)
			b.cells = append(b.cells, MaxElevation)
		default:
			b.cells = append(b.cells, c-'a')
		}
	}
	b.rowLen += len(tok.Value)

	return nil
}

func (b *builder) endRow(pos lexer.Position) error {
	if b.width < 0 {
		b.width = b.rowLen
	} else if b.rowLen != b.width {
		return fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, pos.Line, b.rowLen, b.width)
	}
	b.height++
	b.rowLen = 0

	return nil
}

func (b *builder) build() (*HeightMap, error) {
	if b.start < 0 || b.end < 0 {
		return nil, ErrMissingMarker
	}

	return &HeightMap{
		Width:      b.width,
		Height:     b.height,
		Start:      b.start,
		End:        b.end,
		elevations: b.cells,
	}, nil
}
