// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Polynomial is a list of coefficients ordered from the smallest power to
// the largest, including x^0.
type Polynomial []float32

// Eval returns the y value for x.
func (p Polynomial) Eval(x float32) float32 {
	var y float64
	for i, coeff := range p {
		y += float64(coeff) * math.Pow(float64(x), float64(i))
	}
	return float32(y)
}

var termRe = regexp.MustCompile(`[+-]?[^+-]+`)

// ParsePolynomial parses a polynomial equation string such as
// "x^3 + 4x^2 - 2x + 1", using ^ for exponents. Whitespace is ignored.
// Terms with the same power accumulate.
func ParsePolynomial(equation string) (Polynomial, error) {
	stripped := strings.Join(strings.Fields(equation), "")
	if stripped == "" {
		return nil, fmt.Errorf("empty equation")
	}

	var coeffs Polynomial
	for _, term := range termRe.FindAllString(stripped, -1) {
		parts := strings.Split(term, "x")

		var power uint64
		if len(parts) > 1 {
			last := parts[len(parts)-1]
			if last != "" {
				exp, ok := strings.CutPrefix(last, "^")
				if !ok {
					return nil, fmt.Errorf("term %q: expected ^ before exponent", term)
				}
				var err error
				power, err = strconv.ParseUint(exp, 10, 32)
				if err != nil {
					return nil, fmt.Errorf("term %q: %w", term, err)
				}
			} else {
				power = 1
			}
		}

		val := float64(1)
		switch first := parts[0]; first {
		case "", "+":
		case "-":
			val = -1
		default:
			var err error
			val, err = strconv.ParseFloat(first, 32)
			if err != nil {
				return nil, fmt.Errorf("term %q: %w", term, err)
			}
		}

		if int(power) < len(coeffs) {
			coeffs[power] += float32(val)
		} else {
			for len(coeffs) < int(power) {
				coeffs = append(coeffs, 0)
			}
			coeffs = append(coeffs, float32(val))
		}
	}

	return coeffs, nil
}
