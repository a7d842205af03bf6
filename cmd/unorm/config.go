package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
	"github.com/scalecode-solutions/runenorm"
)

const (
	defaultForm     = "NFC"
	defaultLogLevel = "info"
)

// config defines the configuration options for unorm.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Form        string `short:"f" long:"form" description:"Normalization form {NFC, NFD, NFKC, NFKD}"`
	Check       bool   `short:"c" long:"check" description:"Report whether each input is normalized instead of normalizing it"`
	StreamSafe  bool   `long:"streamsafe" description:"Insert U+034F COMBINING GRAPHEME JOINER into runs of more than 30 combining marks"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write log output to this file, rotated every 10 MiB"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	form runenorm.Form
}

// loadConfig initializes and parses the config using the given command line
// options. The remaining arguments name the input files, "-" or no argument
// at all meaning standard input.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Form:       defaultForm,
		DebugLevel: defaultLogLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [FILE...]"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Validate the normalization form.
	cfg.form, err = runenorm.ParseForm(cfg.Form)
	if err != nil {
		err := fmt.Errorf("loadConfig: %w", err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate the logging level.
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: The specified debug level [%v] is invalid"
		err := fmt.Errorf(str, "loadConfig", cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	if len(remainingArgs) == 0 {
		remainingArgs = []string{"-"}
	}
	return &cfg, remainingArgs, nil
}
