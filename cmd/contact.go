package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/calibre47/watchdesk"
	"github.com/calibre47/watchdesk/date"
	"github.com/calibre47/watchdesk/renderer"
	"github.com/google/subcommands"
)

// contactCmd holds the flags for the 'contact' subcommand.
type contactCmd struct {
	id   string
	date string
}

func (*contactCmd) Name() string     { return "contact" }
func (*contactCmd) Synopsis() string { return "display the trading relationship with a contact" }
func (*contactCmd) Usage() string {
	return `wd contact -c <id|name> [-d <date>]

  Displays the trading relationship with a contact: purchases from them,
  sales to them, recent activity and the favorite brand traded together.
`
}

func (c *contactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "c", "", "Contact id, or contact name when no id matches")
	f.StringVar(&c.date, "d", "", "Reference date for recent activity (defaults to today)")
}

func (c *contactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -c <id|name> is required")
		return subcommands.ExitUsageError
	}
	day := date.Today()
	if c.date != "" {
		var err error
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	book, err := DecodeContactBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding contact book: %v\n", err)
		return subcommands.ExitFailure
	}

	contact, ok := findContact(book, c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no contact matches %q\n", c.id)
		return subcommands.ExitFailure
	}

	report := watchdesk.NewContactReport(contact, inv, book, day)
	printMarkdown(renderer.ContactMarkdown(report))
	return subcommands.ExitSuccess
}

// findContact resolves by id first, then by case-insensitive name.
func findContact(book *watchdesk.ContactBook, key string) (watchdesk.Contact, bool) {
	if c, ok := book.Contact(key); ok {
		return c, true
	}
	for c := range book.Contacts() {
		if strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return watchdesk.Contact{}, false
}
