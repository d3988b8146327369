package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	goschemes "github.com/reoring/goschemes"
	"github.com/reoring/goschemes/algebra"
	"github.com/reoring/goschemes/scheme"
)

// ParseRing reads ring notation:
//
//	ZZ | QQ | GF(p) | Zmod(n) | <ring>[var] | Mat(<ring>,n)
func ParseRing(s string) (algebra.Ring, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "ZZ":
		return algebra.ZZ(), nil
	case s == "QQ":
		return algebra.QQ(), nil
	case strings.HasSuffix(s, "]"):
		i := strings.LastIndexByte(s, '[')
		if i <= 0 {
			return nil, fmt.Errorf("unbalanced brackets in %q", s)
		}
		base, err := ParseRing(s[:i])
		if err != nil {
			return nil, err
		}
		return algebra.PolynomialRingOver(base, strings.TrimSpace(s[i+1:len(s)-1])), nil
	case strings.HasPrefix(s, "GF(") && strings.HasSuffix(s, ")"):
		p, err := strconv.Atoi(strings.TrimSpace(s[3 : len(s)-1]))
		if err != nil {
			return nil, errors.Wrapf(err, "field order in %q", s)
		}
		return algebra.GF(p)
	case strings.HasPrefix(s, "Zmod(") && strings.HasSuffix(s, ")"):
		n, err := strconv.Atoi(strings.TrimSpace(s[5 : len(s)-1]))
		if err != nil {
			return nil, errors.Wrapf(err, "modulus in %q", s)
		}
		return algebra.Zmod(n)
	case strings.HasPrefix(s, "Mat(") && strings.HasSuffix(s, ")"):
		inner := s[4 : len(s)-1]
		i := strings.LastIndexByte(inner, ',')
		if i < 0 {
			return nil, fmt.Errorf("expected Mat(<ring>,n), got %q", s)
		}
		base, err := ParseRing(inner[:i])
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(inner[i+1:]))
		if err != nil {
			return nil, errors.Wrapf(err, "degree in %q", s)
		}
		return algebra.MatrixSpaceOver(base, n)
	}
	return nil, fmt.Errorf("unknown ring %q", s)
}

// ParseValue reads a value in command-line notation:
//
//	<ring>            a ring
//	<ring>-><ring>    the natural homomorphism
//	Spec(<ring>)      an affine scheme
//	P(n,<ring>)       projective space
//
// Failures are reported as Issues with CodeInvalidRing.
func ParseValue(s string) (goschemes.Input, error) {
	in, err := parseValue(strings.TrimSpace(s))
	if err != nil {
		it := goschemes.IssueAt("/", goschemes.CodeInvalidRing, map[string]any{"value": s})
		it.Cause = err
		return nil, goschemes.Issues{it}
	}
	return in, nil
}

func parseValue(s string) (goschemes.Input, error) {
	if from, to, ok := strings.Cut(s, "->"); ok {
		phi, err := naturalHom(from, to)
		if err != nil {
			return nil, err
		}
		return goschemes.MapInput{Map: phi}, nil
	}
	if strings.HasPrefix(s, "Spec(") && strings.HasSuffix(s, ")") {
		x, err := spec(s[5 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return goschemes.SchemeInput{Scheme: x}, nil
	}
	if strings.HasPrefix(s, "P(") && strings.HasSuffix(s, ")") {
		dim, ring, ok := strings.Cut(s[2:len(s)-1], ",")
		if !ok {
			return nil, fmt.Errorf("expected P(n,<ring>), got %q", s)
		}
		n, err := strconv.Atoi(strings.TrimSpace(dim))
		if err != nil {
			return nil, errors.Wrapf(err, "dimension in %q", s)
		}
		p, err := projective(n, ring)
		if err != nil {
			return nil, err
		}
		return goschemes.SchemeInput{Scheme: p}, nil
	}
	r, err := ParseRing(s)
	if err != nil {
		return nil, err
	}
	return goschemes.RingInput{Ring: r}, nil
}

func naturalHom(from, to string) (*algebra.RingHomomorphism, error) {
	r, err := ParseRing(from)
	if err != nil {
		return nil, err
	}
	s, err := ParseRing(to)
	if err != nil {
		return nil, err
	}
	return algebra.NaturalHom(r, s)
}

func spec(ring string) (*scheme.AffineScheme, error) {
	r, err := ParseRing(ring)
	if err != nil {
		return nil, err
	}
	return scheme.Spec(r)
}

func projective(n int, ring string) (*scheme.ProjectiveSpace, error) {
	r, err := ParseRing(ring)
	if err != nil {
		return nil, err
	}
	return scheme.Projective(n, r)
}
