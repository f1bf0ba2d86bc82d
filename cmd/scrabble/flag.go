package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
// Environment variables are read first and can be overridden by command line flags.
type mainFlags struct {
	WordsFile      string        `env:"WORDS_FILE"`
	DatabaseDriver string        `env:"DATABASE_DRIVER"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	QueryPeriod    time.Duration `env:"QUERY_PERIOD" envDefault:"5s"`
	RulesetFile    string        `env:"RULESET_FILE"`
	LoadWords      bool          `env:"LOAD_WORDS"`
	VerifyWords    bool          `env:"VERIFY_WORDS"`
	DebugGame      bool          `env:"DEBUG_GAME"`
}

var environmentVariables = []string{
	"WORDS_FILE",
	"DATABASE_DRIVER",
	"DATABASE_URL",
	"QUERY_PERIOD",
	"RULESET_FILE",
	"LOAD_WORDS",
	"VERIFY_WORDS",
	"DEBUG_GAME",
}

// usage prints how to run the game to the flagset's output.
func usage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Plays moves on a board from commands read on standard input\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables and a .env file when possible: [%s]\n", strings.Join(environmentVariables, ","))
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the mainFlags, using the current values as defaults.
func (m *mainFlags) newFlagSet(programName string) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	fs.StringVar(&m.WordsFile, "words-file", m.WordsFile, "The list of valid lower-case words.  Used as the dictionary when there is no database.")
	fs.StringVar(&m.DatabaseDriver, "db-driver", m.DatabaseDriver, "The database that stores the dictionary: postgres, sqlite, mongodb, or firestore.")
	fs.StringVar(&m.DatabaseURL, "data-source", m.DatabaseURL, "The data source of the database: a connection URI, file path, or firestore project id.")
	fs.DurationVar(&m.QueryPeriod, "query-period", m.QueryPeriod, "The maximum amount of time a single database call may take.")
	fs.StringVar(&m.RulesetFile, "ruleset", m.RulesetFile, "The HCL file with the premium squares and letter points.  The standard board is used if not specified.")
	fs.BoolVar(&m.LoadWords, "load-words", m.LoadWords, "Adds the words from the words file to the database dictionary at startup.")
	fs.BoolVar(&m.VerifyWords, "verify", m.VerifyWords, "Checks every committed word in the dictionary.")
	fs.BoolVar(&m.DebugGame, "debug", m.DebugGame, "Logs commands and moves.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, environ map[string]string) (*mainFlags, error) {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	var m mainFlags
	opts := env.Options{
		Environment: environ,
	}
	if err := env.ParseWithOptions(&m, opts); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	fs := m.newFlagSet(osArgs[0])
	if err := fs.Parse(osArgs[1:]); err != nil {
		return nil, err
	}
	return &m, nil
}
