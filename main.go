// Command planar evaluates analytic geometry scripts.
//
// Usage:
//
//	planar [-config file] [-format text|json] [-timeout 5s] [script ...]
//
// With no script arguments, or the argument "-", the script is read from
// standard input. Output lines produced by (show ...) go to stdout; errors
// and warnings go to stderr in text mode and into the record in json mode.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("planar: ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals. It returns the exit status:
// 0 on success, 1 if any script reported errors, 2 on bad usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("planar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON config file (// comments allowed)")
	format := fs.String("format", "", "output format: text or json (overrides config)")
	timeout := fs.Duration("timeout", 0, "evaluation timeout (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	conf, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *format != "" {
		conf.Format = *format
	}
	if *timeout > 0 {
		conf.EvalTimeoutMS = int(timeout.Milliseconds())
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	scripts := fs.Args()
	if len(scripts) == 0 {
		scripts = []string{"-"}
	}

	app := NewAppFromConfig(conf)
	status := 0

	// Scripts are evaluated one at a time; zygomys sandboxes share global
	// state and must not be created concurrently.
	for _, name := range scripts {
		source, err := readScript(name, stdin)
		if err != nil {
			fmt.Fprintln(stderr, err)
			status = 1
			continue
		}
		result := app.Evaluate(source)
		if len(result.Errors) > 0 {
			status = 1
		}

		switch conf.Format {
		case "json":
			err = writeJSON(stdout, name, result)
		default:
			err = writeText(stdout, stderr, name, result, conf.ShowWarnings, len(scripts) > 1)
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return status
}

func readScript(name string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(b), nil
}

// scriptRecord is one line of json output.
type scriptRecord struct {
	Script string `json:"script"`
	EvalResult
}

func writeJSON(w io.Writer, name string, result EvalResult) error {
	if err := json.NewEncoder(w).Encode(scriptRecord{Script: name, EvalResult: result}); err != nil {
		return fmt.Errorf("encoding result for %s: %w", name, err)
	}
	return nil
}

func writeText(stdout, stderr io.Writer, name string, result EvalResult, showWarnings, header bool) error {
	if header {
		if _, err := fmt.Fprintf(stdout, "==> %s <==\n", name); err != nil {
			return err
		}
	}
	for _, line := range result.Output {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return err
		}
	}
	for _, e := range result.Errors {
		fmt.Fprintf(stderr, "%s: error: %s\n", location(name, e), e.Message)
	}
	if showWarnings {
		for _, w := range result.Warnings {
			fmt.Fprintf(stderr, "%s: warning: %s\n", location(name, w), w.Message)
		}
	}
	return nil
}

// location renders where a finding applies: script:line, or script(entity).
func location(script string, e EvalErrorData) string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d", script, e.Line)
	case e.Name != "":
		return fmt.Sprintf("%s(%s)", script, e.Name)
	}
	return script
}
