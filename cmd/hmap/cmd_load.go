package main

import (
	"strconv"

	"github.com/scottcagno/hmap/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdLoad = &cobra.Command{
	Use:   "load",
	Short: "Insert generated keys and report the table load",
	Long: `
The "load" command inserts "key0", "key1", ... into a fresh map and logs the
number of empty buckets, the table load, the size and the capacity at every
checkpoint.

EXIT STATUS
===========

Exit status is 0 if the command was successful, and non-zero if there was any error.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(globalOptions, loadOptions)
	},
}

// LoadOptions bundles all options for the load command.
type LoadOptions struct {
	Count  int
	Every  int
	Prefix string
}

var loadOptions LoadOptions

func init() {
	cmdRoot.AddCommand(cmdLoad)

	f := cmdLoad.Flags()
	f.IntVar(&loadOptions.Count, "count", 150, "number of keys to insert")
	f.IntVar(&loadOptions.Every, "every", 25, "report after every `n` inserts")
	f.StringVar(&loadOptions.Prefix, "prefix", "key", "key prefix")
}

func runLoad(gopts GlobalOptions, opts LoadOptions) error {
	m, err := newMap[int](gopts)
	if err != nil {
		return err
	}
	if opts.Every < 1 {
		opts.Every = 1
	}
	defer util.TimeThis(log.StandardLogger(), "load finished")()
	for i := 0; i < opts.Count; i++ {
		m.Put(opts.Prefix+strconv.Itoa(i), i*100)
		if (i+1)%opts.Every == 0 || i == opts.Count-1 {
			log.WithFields(log.Fields{
				"inserted":      i + 1,
				"empty_buckets": m.EmptyBuckets(),
				"table_load":    strconv.FormatFloat(m.TableLoad(), 'f', 2, 64),
				"size":          m.Size(),
				"capacity":      m.Capacity(),
			}).Info("checkpoint")
		}
	}
	return nil
}
