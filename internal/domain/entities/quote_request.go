package entities

// QuoteRequest is the normalized request fanned out to every eligible insurer.
//
// It is immutable once built: the input map is copied on construction and
// every accessor hands out a fresh copy, so concurrent adapters can share one
// value without coordination.
type QuoteRequest struct {
	productType  ProductType
	coverageTier CoverageTier
	inputData    map[string]any
}

// NewQuoteRequest validates the enumerations and snapshots inputData.
// inputData itself is opaque and not validated.
func NewQuoteRequest(productType, coverageTier string, inputData map[string]any) (QuoteRequest, error) {
	p, err := ParseProductType(productType)
	if err != nil {
		return QuoteRequest{}, err
	}
	c, err := ParseCoverageTier(coverageTier)
	if err != nil {
		return QuoteRequest{}, err
	}
	return QuoteRequest{
		productType:  p,
		coverageTier: c,
		inputData:    copyAnyMap(inputData),
	}, nil
}

func (r QuoteRequest) ProductType() ProductType   { return r.productType }
func (r QuoteRequest) CoverageTier() CoverageTier { return r.coverageTier }

func (r QuoteRequest) InputData() map[string]any {
	return copyAnyMap(r.inputData)
}

// Input returns a single input field without copying the whole map.
func (r QuoteRequest) Input(key string) (any, bool) {
	v, ok := r.inputData[key]
	return v, ok
}

func copyAnyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
