package runenorm

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnicodeVersion is the version of the Unicode Character Database the
// normalization tables are derived from. There is no runtime upgrade path: a
// new Unicode release requires a new build against updated data.
const UnicodeVersion = norm.Version

// A Form denotes one of the four Unicode Normalization Forms.
//
// For a Form f, the documentation uses f(x) to mean the code points x
// converted to that form. Only the four constants below are valid; normalizing
// or checking with any other value panics with an [AssertError].
type Form int

const (
	NFC  Form = iota // Canonical Decomposition, followed by Canonical Composition
	NFD              // Canonical Decomposition
	NFKC             // Compatibility Decomposition, followed by Canonical Composition
	NFKD             // Compatibility Decomposition
)

// ErrUnknownForm is returned by [ParseForm] for names that do not denote a
// normalization form.
var ErrUnknownForm = errors.New("unknown normalization form")

// policy is everything the engine needs to know about a form.
type policy struct {
	qc      uint8 // quick-check "Yes" bit of this form
	compat  bool  // use the compatibility decomposition
	compose bool  // run canonical composition after ordering
}

var policies = [...]policy{
	NFC:  {qc: qcNFC, compose: true},
	NFD:  {qc: qcNFD},
	NFKC: {qc: qcNFKC, compat: true, compose: true},
	NFKD: {qc: qcNFKD, compat: true},
}

var formNames = [...]string{
	NFC:  "NFC",
	NFD:  "NFD",
	NFKC: "NFKC",
	NFKD: "NFKD",
}

// policy returns the policy of f. Invalid forms panic.
func (f Form) policy() policy {
	if f < 0 || int(f) >= len(policies) {
		panic(AssertError(fmt.Sprintf("invalid normalization form %s", f.Name())))
	}
	return policies[f]
}

// Name returns the conventional name of the form, for example "NFKC".
func (f Form) Name() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// ParseForm returns the form with the given name. Matching ignores case.
func ParseForm(name string) (Form, error) {
	for f, n := range formNames {
		if strings.EqualFold(n, name) {
			return Form(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}
