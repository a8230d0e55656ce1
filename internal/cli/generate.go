package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/galogen/internal/emitter"
	"github.com/google/galogen/internal/registry"
	"github.com/google/galogen/internal/xmltree"
)

// generate runs one full generation pass over the registry file.
// Warnings go to errOut; the success line goes to out.
func generate(registryPath string, opts *options, out, errOut io.Writer) error {
	f, err := os.Open(registryPath)
	if err != nil {
		return fmt.Errorf("opening registry file: %w", err)
	}
	defer f.Close()

	root, err := xmltree.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing registry file %s: %w", registryPath, err)
	}

	store, err := registry.Load(root, opts.cfg.API)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	res, err := registry.Resolve(root, store, opts.cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(errOut, "WARNING: %s\n", w)
	}

	em, err := emitter.New(opts.generator)
	if err != nil {
		return err
	}

	driver := registry.NewDriver(store)
	if err := driver.Emit(opts.cfg, res.Required, opts.filename, em); err != nil {
		return err
	}

	fmt.Fprintln(out, "Generation finished successfully!")
	return nil
}
