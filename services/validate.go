package services

import "regexp"

// Australian states accepted on a delivery address.
var validStates = map[string]bool{
	"ACT": true, "NSW": true, "NT": true, "QLD": true,
	"SA": true, "TAS": true, "VIC": true, "WA": true,
}

var (
	rePostcode = regexp.MustCompile(`^\d{4}$`)
	// 16 digits, groups of 4 with optional dashes: 1234-5678-9123-4567
	reCard = regexp.MustCompile(`^\d{4}(-?\d{4}){3}$`)
)

func validateDeliveryInfo(in *PlaceOrderIn) error {
	if in.Address == "" {
		return &InvalidInputError{Field: "address", Reason: "must not be empty"}
	}
	if in.Suburb == "" {
		return &InvalidInputError{Field: "suburb", Reason: "must not be empty"}
	}
	if !validStates[in.State] {
		return &InvalidInputError{Field: "state", Reason: "not a valid state"}
	}
	if !rePostcode.MatchString(in.Postcode) {
		return &InvalidInputError{Field: "postcode", Reason: "must be 4 digits"}
	}
	if !reCard.MatchString(in.CardNumber) {
		return &InvalidInputError{Field: "cardNumber", Reason: "must be 16 digits in groups of 4"}
	}
	return nil
}
