package watchdesk

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
)

// Import of the web dashboard's JSON export. The export is one JSON
// document; the interesting collections are addressed by jsonpath so the
// import survives the envelope fields the dashboard adds around them.

const (
	watchesPath      = "$.watches[*]"
	contactsPath     = "$.contacts[*]"
	associationsPath = "$.associations[*]"
	seasonPath       = "$.leaderboard.season"
	participantsPath = "$.leaderboard.participants[*]"
)

// ImportExport reads a dashboard export and returns the inventory and
// contact book it contains, amounts interpreted in the given reporting
// currency. Records without an id are assigned a fresh one. Malformed
// optional fields are normalized to absent; malformed associations are
// skipped with a warning.
func ImportExport(r io.Reader, currency string) (*Inventory, *ContactBook, error) {
	jobj, err := decodeDocument(r)
	if err != nil {
		return nil, nil, err
	}

	inv := NewInventory(currency)
	for _, v := range lookup(jobj, watchesPath) {
		m, ok := v.(map[string]any)
		if !ok {
			log.Printf("import: skipping watch entry of type %T", v)
			continue
		}
		inv.Append(watchOf(m, currency))
	}

	book := NewContactBook()
	for _, v := range lookup(jobj, contactsPath) {
		m, ok := v.(map[string]any)
		if !ok {
			log.Printf("import: skipping contact entry of type %T", v)
			continue
		}
		id := stringOf(m["id"])
		if id == "" {
			id = uuid.NewString()
		}
		book.Add(Contact{
			ID:   id,
			Name: stringOf(m["name"]),
			Kind: ParseContactKind(stringOf(m["kind"])),
		})
	}

	for _, v := range lookup(jobj, associationsPath) {
		m, ok := v.(map[string]any)
		if !ok {
			log.Printf("import: skipping association entry of type %T", v)
			continue
		}
		role, err := ParseRole(stringOf(m["role"]))
		if err != nil {
			log.Printf("import: skipping association: %v", err)
			continue
		}
		a := Association{
			ContactID: stringOf(m["contactId"]),
			WatchID:   stringOf(m["watchId"]),
			Role:      role,
		}
		if a.ContactID == "" || a.WatchID == "" {
			log.Printf("import: skipping association with missing reference")
			continue
		}
		if displaced := book.Assign(a); displaced != "" {
			log.Printf("import: watch %s %s reassigned from contact %s to %s", a.WatchID, a.Role, displaced, a.ContactID)
		}
	}

	return inv, book, nil
}

// ImportLeaderboard reads the leaderboard section of a dashboard export:
// the season identifier and each participant with their own record set.
func ImportLeaderboard(r io.Reader, currency string) (season string, participants []Participant, err error) {
	jobj, err := decodeDocument(r)
	if err != nil {
		return "", nil, err
	}

	if v, err := jsonpath.Get(seasonPath, jobj); err == nil {
		season = stringOf(v)
	}

	for _, v := range lookup(jobj, participantsPath) {
		m, ok := v.(map[string]any)
		if !ok {
			log.Printf("import: skipping participant entry of type %T", v)
			continue
		}
		p := Participant{
			ID:        stringOf(m["id"]),
			Name:      stringOf(m["name"]),
			Inventory: NewInventory(currency),
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if watches, ok := m["watches"].([]any); ok {
			for _, wv := range watches {
				wm, ok := wv.(map[string]any)
				if !ok {
					continue
				}
				p.Inventory.Append(watchOf(wm, currency))
			}
		}
		participants = append(participants, p)
	}
	return season, participants, nil
}

func decodeDocument(r io.Reader) (any, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid export document: %w", err)
	}
	return jobj, nil
}

// lookup resolves a jsonpath wildcard to a list, empty when the path does
// not resolve. An export without a section is a valid, empty export.
func lookup(jobj any, path string) []any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil
	}
	return jlist
}

// watchOf normalizes one exported watch object.
func watchOf(m map[string]any, currency string) Watch {
	id := stringOf(m["id"])
	if id == "" {
		id = uuid.NewString()
	}
	w := Watch{
		ID:        id,
		Brand:     stringOf(m["brand"]),
		Model:     stringOf(m["model"]),
		Reference: stringOf(m["reference"]),
		InDate:    dateOf(m["inDate"]),
		DateSold:  dateOf(m["dateSold"]),
		SellerID:  stringOf(m["sellerContactId"]),
		BuyerID:   stringOf(m["buyerContactId"]),
	}
	if v, ok := amountOf(m["purchasePrice"], currency); ok {
		w.PurchasePrice = &v
	}
	if v, ok := amountOf(m["priceSold"], currency); ok {
		w.PriceSold = &v
	}
	w.AccessoriesCost, _ = amountOf(m["accessoriesCost"], currency)
	w.Fees, _ = amountOf(m["fees"], currency)
	w.Shipping, _ = amountOf(m["shipping"], currency)
	w.Taxes, _ = amountOf(m["taxes"], currency)
	return w
}
