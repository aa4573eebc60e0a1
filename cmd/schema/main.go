// Command schema writes the JSON schema of the feedreader config, used to refresh pkg/config/schema.json.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedreader/pkg/config"
)

type options struct {
	Output string `short:"o" long:"output" default:"pkg/config/schema.json" description:"schema output file"`
	Stdout bool   `long:"stdout" description:"print schema instead of writing a file"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if err := generate(opts); err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}
}

func generate(opts options) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if opts.Stdout {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.Output, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	fmt.Printf("schema written to %s\n", opts.Output)
	return nil
}
