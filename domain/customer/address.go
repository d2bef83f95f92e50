package customer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Address is a value object: it is immutable and compared by value.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

// NewAddress builds a validated Address.
func NewAddress(street string, number int, zip string, city string) (Address, error) {
	address := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}

	if err := address.Validate(); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks that every part of the address is present.
func (a Address) Validate() error {
	switch {
	case strings.TrimSpace(a.street) == "":
		return errors.Join(ErrInvalidAddress, ErrStreetRequired)
	case a.number <= 0:
		return errors.Join(ErrInvalidAddress, ErrNumberMustBePositive)
	case strings.TrimSpace(a.zip) == "":
		return errors.Join(ErrInvalidAddress, ErrZipRequired)
	case strings.TrimSpace(a.city) == "":
		return errors.Join(ErrInvalidAddress, ErrCityRequired)
	}

	return nil
}

// Street returns the street.
func (a Address) Street() string {
	return a.street
}

// Number returns the house number.
func (a Address) Number() int {
	return a.number
}

// Zip returns the zip code.
func (a Address) Zip() string {
	return a.zip
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// Equals reports whether both addresses hold the same values.
func (a Address) Equals(other Address) bool {
	return a == other
}

// IsZero reports whether a is the zero Address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String formats the address for humans.
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}

type addressJSON struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

// MarshalJSON exposes the otherwise unexported parts.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street: a.street,
		Number: a.number,
		Zip:    a.zip,
		City:   a.city,
	})
}

// UnmarshalJSON rebuilds a validated Address.
func (a *Address) UnmarshalJSON(data []byte) error {
	raw := addressJSON{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	address, err := NewAddress(raw.Street, raw.Number, raw.Zip, raw.City)
	if err != nil {
		return err
	}

	*a = address

	return nil
}
