package domain

import (
	"github.com/ebdocs/ebinvoice/shared/xmldoc"
)

const maxAddressNameLength = 255

// Country represents a country name qualified by its ISO 3166-1 alpha-2 code.
type Country struct {
	Name string
	Code string
}

// Address represents the postal address block shared by biller and
// invoice recipient.
type Address struct {
	name    *string
	street  *string
	town    *string
	zip     *string
	country *Country
}

// NewAddress creates an empty address.
func NewAddress() *Address {
	return &Address{}
}

// SetName sets the addressee name, at most 255 characters.
func (a *Address) SetName(name string) error {
	if err := validateMaxLength("Name", name, maxAddressNameLength); err != nil {
		return err
	}
	a.name = &name
	return nil
}

// SetStreet sets the street line.
func (a *Address) SetStreet(street string) *Address {
	a.street = &street
	return a
}

// SetTown sets the town.
func (a *Address) SetTown(town string) *Address {
	a.town = &town
	return a
}

// SetZIP sets the postal code.
func (a *Address) SetZIP(zip string) *Address {
	a.zip = &zip
	return a
}

// SetCountry sets the country. The country code must be exactly 2 characters.
func (a *Address) SetCountry(country Country) error {
	if err := validateExactLength("CountryCode", country.Code, 2); err != nil {
		return err
	}
	a.country = &country
	return nil
}

// XML renders the address; unset fields are omitted.
func (a *Address) XML() *xmldoc.Element {
	e := xmldoc.NewElement("Address")

	if a.name != nil {
		e.WithTextElement("Name", *a.name)
	}
	if a.street != nil {
		e.WithTextElement("Street", *a.street)
	}
	if a.town != nil {
		e.WithTextElement("Town", *a.town)
	}
	if a.zip != nil {
		e.WithTextElement("ZIP", *a.zip)
	}
	if a.country != nil {
		e.WithElement(xmldoc.NewElement("Country").
			WithText(a.country.Name).
			WithAttr("CountryCode", a.country.Code))
	}

	return e
}
