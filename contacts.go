package watchdesk

import (
	"fmt"
	"iter"
	"strings"
)

// ContactKind categorizes a counterparty.
type ContactKind int

const (
	KindOther ContactKind = iota
	KindLead
	KindCustomer
	KindTrader
	KindJeweler
)

func (k ContactKind) String() string {
	switch k {
	case KindLead:
		return "lead"
	case KindCustomer:
		return "customer"
	case KindTrader:
		return "trader"
	case KindJeweler:
		return "jeweler"
	default:
		return "contact"
	}
}

// Label returns the display label of the kind. Unknown kinds render the
// generic label rather than failing.
func (k ContactKind) Label() string {
	switch k {
	case KindLead:
		return "Lead"
	case KindCustomer:
		return "Customer"
	case KindTrader:
		return "Trader"
	case KindJeweler:
		return "Jeweler"
	default:
		return "Contact"
	}
}

// ParseContactKind maps a string onto a ContactKind. Unknown values fall
// back to the generic KindOther, they are display hints, not data.
func ParseContactKind(s string) ContactKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lead":
		return KindLead
	case "customer":
		return KindCustomer
	case "trader":
		return KindTrader
	case "jeweler":
		return KindJeweler
	default:
		return KindOther
	}
}

// Contact is a counterparty: a lead, customer, trader, or jeweler the desk
// buys from or sells to.
type Contact struct {
	ID   string
	Name string
	Kind ContactKind
}

// MarshalJSON writes the contact in its canonical snapshot form.
func (c Contact) MarshalJSON() ([]byte, error) {
	var o jsonObjectWriter
	o.Append("entry", "contact")
	o.Append("id", c.ID)
	o.Optional("name", c.Name)
	o.Optional("kind", c.Kind.String())
	return o.MarshalJSON()
}

// Role is the capacity in which a contact relates to a watch record.
type Role int

const (
	// RoleBuyer marks the contact the watch was sold to.
	RoleBuyer Role = iota
	// RoleSeller marks the contact the watch was purchased from.
	RoleSeller
)

func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	default:
		return "unknown"
	}
}

// ParseRole parses a Role from a string.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buyer":
		return RoleBuyer, nil
	case "seller":
		return RoleSeller, nil
	default:
		return RoleBuyer, fmt.Errorf("unknown association role %q", s)
	}
}

// Association links a contact to a watch record under a role.
type Association struct {
	ContactID string
	WatchID   string
	Role      Role
}

// MarshalJSON writes the association in its canonical snapshot form.
func (a Association) MarshalJSON() ([]byte, error) {
	var o jsonObjectWriter
	o.Append("entry", "association")
	o.Append("contactId", a.ContactID)
	o.Append("watchId", a.WatchID)
	o.Append("role", a.Role.String())
	return o.MarshalJSON()
}

type slot struct {
	watchID string
	role    Role
}

// ContactBook holds the contacts and their watch associations.
//
// For a given watch, at most one contact holds the buyer role and at most
// one the seller role. Assigning an already-held slot overwrites the prior
// holder; the book reports the displacement so the presentation layer can
// warn, but does not reject it.
type ContactBook struct {
	contacts     []Contact
	index        map[string]int // contact id -> position in contacts
	associations []Association
	slots        map[slot]int // (watch, role) -> position in associations
}

// NewContactBook creates an empty contact book.
func NewContactBook() *ContactBook {
	return &ContactBook{
		index: make(map[string]int),
		slots: make(map[slot]int),
	}
}

// Add inserts a contact, replacing any contact with the same id.
func (b *ContactBook) Add(c Contact) {
	if i, ok := b.index[c.ID]; ok {
		b.contacts[i] = c
		return
	}
	b.index[c.ID] = len(b.contacts)
	b.contacts = append(b.contacts, c)
}

// Contact returns the contact with this id.
func (b *ContactBook) Contact(id string) (Contact, bool) {
	i, ok := b.index[id]
	if !ok {
		return Contact{}, false
	}
	return b.contacts[i], true
}

// Len returns the number of contacts in the book.
func (b *ContactBook) Len() int { return len(b.contacts) }

// Contacts returns an iterator over contacts in insertion order.
func (b *ContactBook) Contacts() iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		for _, c := range b.contacts {
			if !yield(c) {
				return
			}
		}
	}
}

// Assign records an association. When another contact already holds the
// same (watch, role) slot, it is displaced and its id returned; otherwise
// displaced is empty.
func (b *ContactBook) Assign(a Association) (displaced string) {
	s := slot{watchID: a.WatchID, role: a.Role}
	if i, ok := b.slots[s]; ok {
		prior := b.associations[i].ContactID
		b.associations[i] = a
		if prior != a.ContactID {
			return prior
		}
		return ""
	}
	b.slots[s] = len(b.associations)
	b.associations = append(b.associations, a)
	return ""
}

// Associations returns an iterator over this contact's associations, in
// assignment order.
func (b *ContactBook) Associations(contactID string) iter.Seq[Association] {
	return func(yield func(Association) bool) {
		for _, a := range b.associations {
			if a.ContactID != contactID {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// AllAssociations returns an iterator over every association in the book.
func (b *ContactBook) AllAssociations() iter.Seq[Association] {
	return func(yield func(Association) bool) {
		for _, a := range b.associations {
			if !yield(a) {
				return
			}
		}
	}
}
