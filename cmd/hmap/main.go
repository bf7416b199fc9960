package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/scottcagno/hmap/pkg/hash/strhash"
	"github.com/scottcagno/hmap/pkg/hashmap"
	"github.com/scottcagno/hmap/pkg/hashmap/chained"
	"github.com/scottcagno/hmap/pkg/hashmap/openaddr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:     "hmap",
	Short:   "Exercise the open addressing and chained hash maps",
	Version: version,
	Long: `
hmap drives the prime sized hash maps from the command line. It is meant for
poking at probing, chaining, resizing and load behaviour by hand.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if globalOptions.Verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(0)
	},
}

// GlobalOptions bundles the options shared by every command.
type GlobalOptions struct {
	Impl     string
	Hash     string
	Capacity int
	Verbose  bool
}

var globalOptions GlobalOptions

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVar(&globalOptions.Impl, "impl", "oa", "map implementation, 'oa' (open addressing) or 'sc' (separate chaining)")
	f.StringVar(&globalOptions.Hash, "hash", "sum", "hash function, one of 'sum', 'weighted' or 'xxhash'")
	f.IntVar(&globalOptions.Capacity, "capacity", hashmap.DefaultCapacity, "initial capacity, rounded up to a prime")
	f.BoolVarP(&globalOptions.Verbose, "verbose", "v", false, "log table rebuilds")
}

// newMap builds the map selected by the global options
func newMap[V any](opts GlobalOptions) (hashmap.Map[V], error) {
	fn, ok := strhash.ByName(opts.Hash)
	if !ok {
		return nil, errors.Errorf("unknown hash function %q", opts.Hash)
	}
	conf := &hashmap.Config{
		Capacity: opts.Capacity,
		HashFunc: fn,
		Logger:   log.StandardLogger(),
	}
	switch opts.Impl {
	case "oa":
		return openaddr.NewHashMapConfig[V](conf), nil
	case "sc":
		return chained.NewHashMapConfig[V](conf), nil
	}
	return nil, errors.Errorf("unknown map implementation %q", opts.Impl)
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
