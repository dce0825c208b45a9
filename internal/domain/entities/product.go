package entities

import (
	"errors"
	"strings"
)

var (
	ErrUnknownProductType  = errors.New("unknown product type")
	ErrUnknownCoverageTier = errors.New("unknown coverage tier")
)

// ProductType is the fixed set of insurance products a quote can be requested for.
type ProductType string

const (
	ProductAuto     ProductType = "auto"
	ProductHealth   ProductType = "health"
	ProductHome     ProductType = "home"
	ProductTravel   ProductType = "travel"
	ProductBusiness ProductType = "business"
)

var productTypes = []ProductType{ProductAuto, ProductHealth, ProductHome, ProductTravel, ProductBusiness}

func ProductTypes() []ProductType {
	out := make([]ProductType, len(productTypes))
	copy(out, productTypes)
	return out
}

func (p ProductType) Valid() bool {
	for _, v := range productTypes {
		if v == p {
			return true
		}
	}
	return false
}

// ParseProductType normalizes raw input and rejects anything outside the enumeration.
func ParseProductType(raw string) (ProductType, error) {
	p := ProductType(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", ErrUnknownProductType
	}
	return p, nil
}

// CoverageTier selects the breadth of coverage requested from insurers.
type CoverageTier string

const (
	CoverageBasic         CoverageTier = "basic"
	CoverageIntermediate  CoverageTier = "intermediate"
	CoverageComprehensive CoverageTier = "comprehensive"
)

func (c CoverageTier) Valid() bool {
	switch c {
	case CoverageBasic, CoverageIntermediate, CoverageComprehensive:
		return true
	}
	return false
}

// ParseCoverageTier defaults an empty value to basic.
func ParseCoverageTier(raw string) (CoverageTier, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return CoverageBasic, nil
	}
	c := CoverageTier(v)
	if !c.Valid() {
		return "", ErrUnknownCoverageTier
	}
	return c, nil
}
