package watchdesk

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeInventory decodes an inventory snapshot from a stream of JSONL data:
// one watch record per line, amounts expressed in the given reporting
// currency. Field-level problems (missing or malformed optional values) are
// normalized away; only lines that are not JSON objects are errors.
func DecodeInventory(r io.Reader, currency string) (*Inventory, error) {
	inv := NewInventory(currency)
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line watchLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("invalid inventory line %d: %w", n, err)
		}
		if line.ID == "" {
			return nil, fmt.Errorf("invalid inventory line %d: missing id", n)
		}
		inv.Append(line.normalize(currency))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}
	return inv, nil
}

// EncodeInventory writes the inventory in its canonical JSONL form.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	for _, watch := range inv.Watches() {
		b, err := json.Marshal(watch)
		if err != nil {
			return fmt.Errorf("encoding watch %q: %w", watch.ID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeContactBook decodes contacts and their watch associations from a
// stream of JSONL data. Each line carries an "entry" discriminator, either
// "contact" or "association".
func DecodeContactBook(r io.Reader) (*ContactBook, error) {
	book := NewContactBook()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Entry string `json:"entry"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("invalid contacts line %d: %w", n, err)
		}

		switch identifier.Entry {
		case "contact":
			var line struct {
				ID   string `json:"id"`
				Name string `json:"name"`
				Kind string `json:"kind"`
			}
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid contact line %d: %w", n, err)
			}
			if line.ID == "" {
				return nil, fmt.Errorf("invalid contact line %d: missing id", n)
			}
			book.Add(Contact{ID: line.ID, Name: line.Name, Kind: ParseContactKind(line.Kind)})
		case "association":
			var line struct {
				ContactID string `json:"contactId"`
				WatchID   string `json:"watchId"`
				Role      string `json:"role"`
			}
			if err := json.Unmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("invalid association line %d: %w", n, err)
			}
			role, err := ParseRole(line.Role)
			if err != nil {
				return nil, fmt.Errorf("invalid association line %d: %w", n, err)
			}
			book.Assign(Association{ContactID: line.ContactID, WatchID: line.WatchID, Role: role})
		default:
			return nil, fmt.Errorf("invalid contacts line %d: unknown entry %q", n, identifier.Entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}
	return book, nil
}

// EncodeContactBook writes the contact book in its canonical JSONL form,
// contacts first, then associations.
func EncodeContactBook(w io.Writer, book *ContactBook) error {
	for c := range book.Contacts() {
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encoding contact %q: %w", c.ID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	for a := range book.AllAssociations() {
		b, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encoding association %q/%q: %w", a.ContactID, a.WatchID, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}
