package customer

import "errors"

var (
	// ErrIDRequired is returned when a customer is built without an ID.
	ErrIDRequired = errors.New("ID is required")

	// ErrNameRequired is returned when a customer is built without a name.
	ErrNameRequired = errors.New("name is required")

	// ErrAddressMandatory is returned when activating a customer that has no address.
	ErrAddressMandatory = errors.New("address is mandatory to activate a customer")

	// ErrInvalidAddress is returned when an Address is missing one of its parts.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrStreetRequired is returned when an Address has no street.
	ErrStreetRequired = errors.New("street is required")

	// ErrNumberMustBePositive is returned when an Address number is zero or negative.
	ErrNumberMustBePositive = errors.New("number must be greater than zero")

	// ErrZipRequired is returned when an Address has no zip code.
	ErrZipRequired = errors.New("zip is required")

	// ErrCityRequired is returned when an Address has no city.
	ErrCityRequired = errors.New("city is required")

	// ErrNotFound is returned by repositories when no customer exists for the given ID.
	ErrNotFound = errors.New("customer not found")
)
