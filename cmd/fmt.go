package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the desk files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `wd fmt

  Validates and formats the inventory and contact book files. This command
  reads all records, normalizes their amounts and dates, sorts watches by
  acquisition date, and writes them back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	book, err := DecodeContactBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load contact book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing inventory file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeContactBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing contacts file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q and %q.\n", *inventoryFile, *contactsFile)
	return subcommands.ExitSuccess
}
