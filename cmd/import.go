package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/calibre47/watchdesk"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a dashboard export into the desk files" }
func (*importCmd) Usage() string {
	return `wd import -f <export-file>

  Reads a dashboard export document (JSON) and replaces the inventory and
  contact book files with its content. Records with missing ids get one
  minted, malformed entries are skipped with a warning.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Dashboard export file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <export-file> is required")
		return subcommands.ExitUsageError
	}
	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	inv, book, err := watchdesk.ImportExport(r, *defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: importing export file: %v\n", err)
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

	fmt.Printf("Imported %d watches and %d contacts from %s\n", inv.Len(), book.Len(), c.file)
	return subcommands.ExitSuccess
}
