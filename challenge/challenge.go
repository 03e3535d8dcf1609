// Package challenge reads the textual MQ challenge file format described
// in spec.md §6: UTF-8, line-oriented, a handful of prefix-matched header
// lines in any order, a line of nine or more asterisks, then exactly m
// equation lines of whitespace-separated 0/1 tokens terminated by ';'.
//
// This is deliberately dumb I/O glue, not part of the kernel: it produces
// an in-memory coeffs.Store and never touches the derivative engine
// or enumerator.
package challenge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mqsolve/mqsolve/coeffs"
	"github.com/mqsolve/mqsolve/internal/log"
)

const eqStartPrefix = "*********"

// ParseError reports a malformed challenge file, including the 1-based
// line number at which parsing failed.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("challenge: line %d: %s", e.Line, e.Msg)
}

// System is the in-memory result of reading a challenge file: its
// dimensions and its coefficient store, already in canonical monomial
// order and ready for coeffs.Normalize.
type System struct {
	N     int
	M     int
	Store *coeffs.Store
}

// Read parses a challenge file from r. Only "Galois Field : GF(2)" is
// accepted; any other field is fatal. The Seed header, if present, is
// parsed only far enough to confirm it is an integer and is otherwise
// ignored — it carries no information the kernel needs.
func Read(r io.Reader) (*System, error) {
	logger := log.Logger().With().Str("component", "challenge").Logger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var n, m int
	haveN, haveM, haveGF := false, false, false
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, eqStartPrefix) {
			logger.Debug().Msg("reading equations")
			break
		}

		switch {
		case strings.HasPrefix(trimmed, "Galois Field"):
			field, err := parseHeaderValue(trimmed)
			if err != nil {
				return nil, &ParseError{lineNum, err.Error()}
			}
			if field != "GF(2)" {
				return nil, &ParseError{lineNum, fmt.Sprintf("unsupported field %q, only GF(2) is accepted", field)}
			}
			haveGF = true
			logger.Debug().Str("field", field).Msg("field")

		case strings.HasPrefix(trimmed, "Number of variables"):
			v, err := parseHeaderInt(trimmed)
			if err != nil {
				return nil, &ParseError{lineNum, fmt.Sprintf("cannot parse number of variables: %v", err)}
			}
			n = v
			haveN = true
			logger.Debug().Int("n", n).Msg("number of variables")

		case strings.HasPrefix(trimmed, "Number of polynomials"):
			v, err := parseHeaderInt(trimmed)
			if err != nil {
				return nil, &ParseError{lineNum, fmt.Sprintf("cannot parse number of polynomials: %v", err)}
			}
			m = v
			haveM = true
			logger.Debug().Int("m", m).Msg("number of equations")

		case strings.HasPrefix(trimmed, "Seed"):
			seed, err := parseHeaderValue(trimmed)
			if err != nil || !isInteger(seed) {
				return nil, &ParseError{lineNum, fmt.Sprintf("unable to parse seed: %q", seed)}
			}
			// Informational only. Accepted as an arbitrary-width integer
			// and ignored, rather than parsed into a fixed-width int that
			// could silently overflow (spec.md §9).
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("challenge: reading header: %w", err)
	}
	if !haveGF {
		return nil, &ParseError{lineNum, "missing \"Galois Field\" header"}
	}
	if !haveN {
		return nil, &ParseError{lineNum, "missing \"Number of variables\" header"}
	}
	if !haveM {
		return nil, &ParseError{lineNum, "missing \"Number of polynomials\" header"}
	}

	t := coeffs.NumTerms(n)
	store := coeffs.New(n, m)

	eqIdx := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if eqIdx >= m {
			return nil, &ParseError{lineNum, fmt.Sprintf("more than %d equation lines", m)}
		}

		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ';'
		})
		if len(tokens) != t {
			return nil, &ParseError{lineNum, fmt.Sprintf("equation %d has %d coefficients, want %d", eqIdx, len(tokens), t)}
		}
		for k, tok := range tokens {
			v, err := strconv.Atoi(tok)
			if err != nil || (v != 0 && v != 1) {
				return nil, &ParseError{lineNum, fmt.Sprintf("coefficient %d of equation %d is %q, want 0 or 1", k, eqIdx, tok)}
			}
			store.Set(eqIdx, k, byte(v))
		}
		eqIdx++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("challenge: reading equations: %w", err)
	}
	if eqIdx != m {
		return nil, &ParseError{lineNum, fmt.Sprintf("found %d equation lines, want %d", eqIdx, m)}
	}

	return &System{N: n, M: m, Store: store}, nil
}

// parseHeaderValue returns the text after the first ':' on the line,
// trimmed of surrounding whitespace.
func parseHeaderValue(line string) (string, error) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", fmt.Errorf("missing ':' in header line %q", line)
	}
	return strings.TrimSpace(line[idx+1:]), nil
}

// isInteger reports whether s is an optionally-signed, non-empty string of
// decimal digits, without bounding its magnitude to any fixed-width type.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseHeaderInt parses the integer after the first ':' on the line.
func parseHeaderInt(line string) (int, error) {
	value, err := parseHeaderValue(line)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", value)
	}
	return n, nil
}
