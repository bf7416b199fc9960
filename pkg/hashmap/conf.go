package hashmap

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/scottcagno/hmap/pkg/hash/strhash"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultCapacity is the table size used when none is configured
	DefaultCapacity = 11

	// minimum size bound, the smallest prime
	minCapacityAllowed = 2
)

// default config
var defaultConfig = &Config{
	Capacity: DefaultCapacity,
	HashFunc: strhash.SumOfCodes,
	Logger:   logrus.StandardLogger(),
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	conf := *defaultConfig
	return &conf
}

// Config holds configuration settings for a hash map instance
type Config struct {
	Capacity int                // initial table size, rounded up to a prime
	HashFunc strhash.HashFunc   // hash function, fixed for the life of the map
	Logger   logrus.FieldLogger // logger used for table rebuilds
}

// Check is a helper to make sure the configuration options are
// correct. It returns a copy with any missing options filled in and
// leaves conf itself untouched. A nil config yields the default
// configuration.
func (c *Config) Check() *Config {
	if c == nil {
		return DefaultConfig()
	}
	conf := *c
	if conf.Capacity <= 0 {
		conf.Capacity = DefaultCapacity
	}
	if conf.Capacity < minCapacityAllowed {
		conf.Capacity = minCapacityAllowed
	}
	if !IsPrime(conf.Capacity) {
		conf.Capacity = NextPrime(conf.Capacity)
	}
	if conf.HashFunc == nil {
		conf.HashFunc = defaultConfig.HashFunc
	}
	if conf.Logger == nil {
		conf.Logger = defaultConfig.Logger
	}
	return &conf
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Capacity: ")
	sb.WriteString(strconv.Itoa(conf.Capacity))
	sb.WriteString("\n")
	sb.WriteString("HashFunc: ")
	if conf.HashFunc == nil {
		sb.WriteString("<nil>")
	} else {
		sb.WriteString(funcName(conf.HashFunc))
	}
	return sb.String()
}

func funcName(fn strhash.HashFunc) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	return name[strings.LastIndex(name, ".")+1:]
}
