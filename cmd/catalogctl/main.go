// Command catalogctl manages the product catalog from the shell: import a
// spreadsheet, browse the catalog, classify a product and run schema
// migrations against the primary database.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
