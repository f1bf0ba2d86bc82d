// Package ruleset reads the premium squares and letter points of a board from HCL files.
//
// A ruleset file has an optional letter_points map and any number of premium blocks:
//
//	letter_points = { a = 1, b = 3 }
//
//	premium "word" {
//	  multiplier = 3
//	  squares    = [[0, 0], [center, last]]
//	}
//
// The labels of premium blocks are "word" or "letter".
// Expressions can use the variables size, center, and last.
package ruleset

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jacobpatterson1549/selene-scrabble/game/board"
	"github.com/jacobpatterson1549/selene-scrabble/game/tile"
	"github.com/zclconf/go-cty/cty"
)

type (
	// Ruleset is the scoring setup of a board.
	Ruleset struct {
		// Squares are the positions with multipliers other than 1.
		Squares []Square
		// Points are the points for each letter.
		Points tile.Points
	}

	// Square is a premium position on the board.
	Square struct {
		Kind       Kind
		Multiplier int
		Row        int
		Col        int
	}

	// Kind is the type of multiplier a square has.
	Kind string

	// MultiplierSetter is a board that premium squares can be applied to.
	MultiplierSetter interface {
		SetWordMultiplier(row, col, multiplier int) error
		SetLetterMultiplier(row, col, multiplier int) error
	}

	// hclFile is the structure of a ruleset file for decoding.
	hclFile struct {
		LetterPoints map[string]int `hcl:"letter_points,optional"`
		Premiums     []hclPremium   `hcl:"premium,block"`
	}

	// hclPremium is a premium block of a ruleset file.
	hclPremium struct {
		Kind       string  `hcl:"kind,label"`
		Multiplier int     `hcl:"multiplier"`
		Squares    [][]int `hcl:"squares"`
	}
)

const (
	// WordKind squares multiply the score of words that stage a letter on them.
	WordKind Kind = "word"
	// LetterKind squares multiply the points of letters staged on them.
	LetterKind Kind = "letter"
)

//go:embed standard.hcl
var standardSrc []byte

// Standard returns the ruleset of the traditional board.
func Standard() (*Ruleset, error) {
	return Parse(standardSrc, "standard.hcl")
}

// Load reads a ruleset file.
func Load(filename string) (*Ruleset, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing ruleset %s: %w", filename, diags)
	}
	return decode(f, filename)
}

// Parse reads a ruleset from the source.
// The filename is only used in error messages.
func Parse(src []byte, filename string) (*Ruleset, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing ruleset %s: %w", filename, diags)
	}
	return decode(f, filename)
}

// evalContext provides the board dimensions to ruleset expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"size":   cty.NumberIntVal(board.Size),
			"center": cty.NumberIntVal(board.Size / 2),
			"last":   cty.NumberIntVal(board.Size - 1),
		},
	}
}

// decode converts the parsed file into a validated ruleset.
func decode(f *hcl.File, filename string) (*Ruleset, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decoding ruleset %s: %w", filename, diags)
	}
	points, err := letterPoints(parsed.LetterPoints)
	if err != nil {
		return nil, fmt.Errorf("decoding ruleset %s: %w", filename, err)
	}
	r := Ruleset{
		Points: points,
	}
	seen := make(map[Square]bool)
	for i, p := range parsed.Premiums {
		squares, err := p.squares()
		if err != nil {
			return nil, fmt.Errorf("decoding ruleset %s: premium %v: %w", filename, i, err)
		}
		for _, sq := range squares {
			k := Square{Kind: sq.Kind, Row: sq.Row, Col: sq.Col}
			if seen[k] {
				return nil, fmt.Errorf("decoding ruleset %s: premium %v: row %v, column %v is already a %v square", filename, i, sq.Row, sq.Col, sq.Kind)
			}
			seen[k] = true
		}
		r.Squares = append(r.Squares, squares...)
	}
	return &r, nil
}

// letterPoints converts the letter_points map, using the English points if none are specified.
func letterPoints(m map[string]int) (tile.Points, error) {
	if len(m) == 0 {
		return tile.EnglishPoints(), nil
	}
	points := make(tile.Points, len(m))
	for k, v := range m {
		l, err := tile.ParseLetter(k)
		if err != nil {
			return nil, fmt.Errorf("letter points: %w", err)
		}
		if v < 0 {
			return nil, fmt.Errorf("letter points: %q has negative points", k)
		}
		points[l] = v
	}
	return points, nil
}

// squares validates the premium block and lists its squares.
func (p hclPremium) squares() ([]Square, error) {
	kind := Kind(p.Kind)
	switch {
	case kind != WordKind && kind != LetterKind:
		return nil, fmt.Errorf("kind must be %q or %q, got %q", WordKind, LetterKind, p.Kind)
	case p.Multiplier < 1:
		return nil, fmt.Errorf("multiplier must be positive, got %v", p.Multiplier)
	}
	squares := make([]Square, len(p.Squares))
	for i, rc := range p.Squares {
		if len(rc) != 2 {
			return nil, fmt.Errorf("square %v must be a [row, column] pair, got %v", i, rc)
		}
		row, col := rc[0], rc[1]
		if row < 0 || row >= board.Size || col < 0 || col >= board.Size {
			return nil, fmt.Errorf("square %v at row %v, column %v is not on the board", i, row, col)
		}
		squares[i] = Square{
			Kind:       kind,
			Multiplier: p.Multiplier,
			Row:        row,
			Col:        col,
		}
	}
	return squares, nil
}

// Apply sets the multipliers of the premium squares on the board.
func (r Ruleset) Apply(b MultiplierSetter) error {
	for _, s := range r.Squares {
		var err error
		switch s.Kind {
		case WordKind:
			err = b.SetWordMultiplier(s.Row, s.Col, s.Multiplier)
		case LetterKind:
			err = b.SetLetterMultiplier(s.Row, s.Col, s.Multiplier)
		default:
			err = fmt.Errorf("unknown square kind %q", s.Kind)
		}
		if err != nil {
			return fmt.Errorf("applying ruleset: %w", err)
		}
	}
	return nil
}

// Count returns the number of squares of the kind with the multiplier.
func (r Ruleset) Count(kind Kind, multiplier int) int {
	n := 0
	for _, s := range r.Squares {
		if s.Kind == kind && s.Multiplier == multiplier {
			n++
		}
	}
	return n
}
