// Command unorm normalizes text to one of the Unicode Normalization Forms.
//
// Each named file, or standard input when there is none, is normalized and
// written to standard output. With --check nothing is normalized; instead
// one line per input reports the quick check result and whether the input
// is normalized, and the exit status is 1 if any input is not.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scalecode-solutions/runenorm"
	"golang.org/x/text/transform"
)

const appVersion = "1.0.0"

// errNotNormalized is returned when --check finds an input that is not in
// the requested form.
var errNotNormalized = errors.New("input not normalized")

// openInput opens the named input, "-" being standard input.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(name)
}

// normalizeInputs streams every input through a normalizing transformer.
func normalizeInputs(cfg *config, names []string, stdin io.Reader, stdout io.Writer) error {
	t := cfg.form.Transformer()
	t.SetStreamSafe(cfg.StreamSafe)
	for _, name := range names {
		in, err := openInput(name, stdin)
		if err != nil {
			return err
		}
		n, err := io.Copy(stdout, transform.NewReader(in, t))
		in.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Debugf("Wrote %d bytes of %s for %s", n, cfg.form.Name(), name)
	}
	return nil
}

// checkInputs reports for every input whether it is in the configured form.
// It returns errNotNormalized if at least one is not.
func checkInputs(cfg *config, names []string, stdin io.Reader, stdout io.Writer) error {
	allNormal := true
	for _, name := range names {
		in, err := openInput(name, stdin)
		if err != nil {
			return err
		}
		b, err := io.ReadAll(in)
		in.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		qc := cfg.form.QuickCheck(b)
		normal := cfg.form.IsNormal(b)
		fmt.Fprintf(stdout, "%s: %s quick check %v, normalized %v\n",
			name, cfg.form.Name(), qc, normal)
		if !normal {
			allNormal = false
		}
	}
	if !allNormal {
		return errNotNormalized
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	// Load configuration and parse command line.
	cfg, names, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Printf("unorm version %s (Unicode %s)\n", appVersion,
			runenorm.UnicodeVersion)
		return nil
	}

	// Setup logging.
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}
	setLogLevels(cfg.DebugLevel)

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	if cfg.Check {
		err = checkInputs(cfg, names, os.Stdin, stdout)
	} else {
		err = normalizeInputs(cfg, names, os.Stdin, stdout)
	}
	if err != nil && !errors.Is(err, errNotNormalized) {
		log.Errorf("%v", err)
	}
	return err
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
