// Package cmd implements the CLI application to manage a watch trading desk.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/calibre47/watchdesk"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables understood by the application. They provide the
// defaults for the global flags below, so a desk can be configured once in a
// .env file next to its data files.
const (
	EnvInventoryFile = "WATCHDESK_INVENTORY"
	EnvContactsFile  = "WATCHDESK_CONTACTS"
	EnvCurrency      = "WATCHDESK_CURRENCY"
	EnvTarget        = "WATCHDESK_TARGET"
	EnvUser          = "WATCHDESK_USER"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&reportCmd{},
	&monthlyCmd{},
	&goalCmd{},
	&leaderboardCmd{},
	&contactCmd{},
	&importCmd{},
	&fmtCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	inventoryFile   *string
	contactsFile    *string
	defaultCurrency *string
	yearlyTarget    *string
	currentUser     *string
)

func init() {
	// .env is optional, environment variables win over it.
	_ = godotenv.Load()

	inventoryFile = flag.String("inventory-file", getEnv(EnvInventoryFile, "inventory.jsonl"), "Path to the inventory file (JSONL format)")
	contactsFile = flag.String("contacts-file", getEnv(EnvContactsFile, "contacts.jsonl"), "Path to the contact book file (JSONL format)")
	defaultCurrency = flag.String("currency", getEnv(EnvCurrency, "USD"), "Default currency for amounts without one")
	yearlyTarget = flag.String("target", getEnv(EnvTarget, "100000"), "Yearly profit target in the default currency")
	currentUser = flag.String("user", getEnv(EnvUser, ""), "Participant id of the current user on leaderboards")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Target returns the yearly profit target from the global flag.
func Target() (watchdesk.Money, error) {
	v, err := strconv.ParseFloat(*yearlyTarget, 64)
	if err != nil {
		return watchdesk.Money{}, fmt.Errorf("parsing target %q: %w", *yearlyTarget, err)
	}
	return watchdesk.M(v, *defaultCurrency), nil
}

// DecodeInventory decodes the inventory from the app inventory file.
func DecodeInventory() (inv *watchdesk.Inventory, err error) {
	f, err := os.Open(*inventoryFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, inventory file does not exist, starting from an empty inventory instead")
		return watchdesk.NewInventory(*defaultCurrency), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return watchdesk.DecodeInventory(f, *defaultCurrency)
}

// EncodeInventory writes the inventory back into the app inventory file.
func EncodeInventory(inv *watchdesk.Inventory) error {
	f, err := os.Create(*inventoryFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return watchdesk.EncodeInventory(f, inv)
}

// DecodeContactBook decodes the contact book from the app contacts file.
func DecodeContactBook() (book *watchdesk.ContactBook, err error) {
	f, err := os.Open(*contactsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, contacts file does not exist, starting from an empty contact book instead")
		return watchdesk.NewContactBook(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return watchdesk.DecodeContactBook(f)
}

// EncodeContactBook writes the contact book back into the app contacts file.
func EncodeContactBook(book *watchdesk.ContactBook) error {
	f, err := os.Create(*contactsFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return watchdesk.EncodeContactBook(f, book)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. no TTY detection possible).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
