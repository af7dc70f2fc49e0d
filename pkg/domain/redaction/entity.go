package redaction

import (
	"fmt"
	"unicode/utf8"
)

// Prefix is the placeholder family an entity category collapses into.
type Prefix string

const (
	PrefixPerson  Prefix = "PERSON"
	PrefixEmail   Prefix = "EMAIL"
	PrefixPhone   Prefix = "PHONE"
	PrefixAddress Prefix = "ADDRESS"
	PrefixID      Prefix = "ID"
)

// Detector categories accepted for redaction.
const (
	CategoryPerson                 = "Person"
	CategoryEmail                  = "Email"
	CategoryPhoneNumber            = "PhoneNumber"
	CategoryAddress                = "Address"
	CategoryIPAddress              = "IPAddress"
	CategoryUSSocialSecurityNumber = "USSocialSecurityNumber"
	CategoryUSDriversLicenseNumber = "USDriversLicenseNumber"
	CategoryUSUKPassportNumber     = "USUKPassportNumber"
	CategoryUSIndividualTaxpayerID = "USIndividualTaxpayerIdentification"
	CategoryCreditCardNumber       = "CreditCardNumber"
	CategoryUSBankAccountNumber    = "USBankAccountNumber"
	CategoryIBAN                   = "InternationalBankingAccountNumber"
	CategoryABARoutingNumber       = "ABARoutingNumber"
	CategorySWIFTCode              = "SWIFTCode"
)

var categoryPrefixes = map[string]Prefix{
	CategoryPerson:                 PrefixPerson,
	CategoryEmail:                  PrefixEmail,
	CategoryPhoneNumber:            PrefixPhone,
	CategoryAddress:                PrefixAddress,
	CategoryIPAddress:              PrefixID,
	CategoryUSSocialSecurityNumber: PrefixID,
	CategoryUSDriversLicenseNumber: PrefixID,
	CategoryUSUKPassportNumber:     PrefixID,
	CategoryUSIndividualTaxpayerID: PrefixID,
	CategoryCreditCardNumber:       PrefixID,
	CategoryUSBankAccountNumber:    PrefixID,
	CategoryIBAN:                   PrefixID,
	CategoryABARoutingNumber:       PrefixID,
	CategorySWIFTCode:              PrefixID,
}

// PrefixFor maps a detector category to its placeholder prefix. The second
// return value is false for categories outside the redaction set.
func PrefixFor(category string) (Prefix, bool) {
	p, ok := categoryPrefixes[category]
	return p, ok
}

// Categories returns the redaction category set.
func Categories() []string {
	out := make([]string, 0, len(categoryPrefixes))
	for c := range categoryPrefixes {
		out = append(out, c)
	}
	return out
}

// Entity is a detected sensitive span. Offset and Length are measured in
// runes of the original, unchunked text.
type Entity struct {
	Text        string
	Category    string
	Prefix      Prefix
	Offset      int
	Length      int
	Confidence  float64
	Placeholder string
}

func (e Entity) End() int {
	return e.Offset + e.Length
}

// Valid reports whether the span fits inside a text of textLen runes and
// carries a known prefix.
func (e Entity) Valid(textLen int) bool {
	if e.Offset < 0 || e.Length <= 0 || e.End() > textLen {
		return false
	}
	switch e.Prefix {
	case PrefixPerson, PrefixEmail, PrefixPhone, PrefixAddress, PrefixID:
		return true
	}
	return false
}

func (e Entity) Overlaps(o Entity) bool {
	return e.Offset < o.End() && o.Offset < e.End()
}

func FormatPlaceholder(p Prefix, n int) string {
	return fmt.Sprintf("[%s_%d]", p, n)
}

// EntityMap is the ordered set of entities with their placeholders. It lives
// for one request and must never leave the server.
type EntityMap []Entity

func (m EntityMap) Empty() bool {
	return len(m) == 0
}

// CountByPrefix summarizes the map without exposing any value.
func (m EntityMap) CountByPrefix() map[Prefix]int {
	counts := make(map[Prefix]int)
	for _, e := range m {
		counts[e.Prefix]++
	}
	return counts
}

// RedactionResult is the output of one redaction call.
type RedactionResult struct {
	RedactedText string
	EntityMap    EntityMap
}

// Unredacted is the fail-open result: the input as is, with no entities.
func Unredacted(text string) RedactionResult {
	return RedactionResult{RedactedText: text}
}

func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
