package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdDump = &cobra.Command{
	Use:   "dump KEY=VALUE...",
	Short: "Insert pairs and print the table slot by slot",
	Long: `
The "dump" command inserts the KEY=VALUE pairs given as arguments, removes the
keys given with --remove, and prints every slot of the resulting table. A
--resize target, if set, is applied before printing.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd, globalOptions, dumpOptions, args)
	},
}

// DumpOptions bundles all options for the dump command.
type DumpOptions struct {
	Remove []string
	Resize int
}

var dumpOptions DumpOptions

func init() {
	cmdRoot.AddCommand(cmdDump)

	f := cmdDump.Flags()
	f.StringSliceVar(&dumpOptions.Remove, "remove", nil, "keys to remove after inserting")
	f.IntVar(&dumpOptions.Resize, "resize", 0, "resize the table to `n` before printing")
}

func runDump(cmd *cobra.Command, gopts GlobalOptions, opts DumpOptions, args []string) error {
	m, err := newMap[string](gopts)
	if err != nil {
		return err
	}
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.Errorf("argument %q is not a KEY=VALUE pair", arg)
		}
		m.Put(key, val)
	}
	for _, key := range opts.Remove {
		if _, ok := m.Remove(key); !ok {
			log.WithField("key", key).Warn("key not found")
		}
	}
	if opts.Resize != 0 {
		if err := m.ResizeTable(opts.Resize); err != nil {
			return errors.Wrap(err, "dump")
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), m)
	fmt.Fprintf(cmd.OutOrStdout(), "size: %d, capacity: %d, load: %.2f, empty: %d\n",
		m.Size(), m.Capacity(), m.TableLoad(), m.EmptyBuckets())
	return nil
}
