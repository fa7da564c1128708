package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/lkwg82/enforcer-rules/internal/resolver"
	"github.com/lkwg82/enforcer-rules/internal/rule"
)

// Exit codes, one per failure class.
const (
	exitOK          = 0
	exitError       = 1 // usage or unexpected failure
	exitViolation   = 2 // banned repositories found
	exitRuleConfig  = 3 // rule configuration missing or invalid
	exitResolveFail = 4 // chain resolution failed
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ()))
}

// run orchestrates one evaluation: parse flags, load the rule
// configuration, resolve the chain, evaluate, report. It returns an exit
// code and is separated from main() to enable testing.
func run(args []string, environ []string) int {
	fs := pflag.NewFlagSet("enforcer", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	rulesPath := fs.String("rules", "", "rule configuration YAML (defaults apply when omitted)")
	chainPath := fs.String("chain", "", "chain manifest YAML written by the host resolver (required)")
	groupID := fs.String("group", "", "expected groupId of the manifest's first model")
	artifactID := fs.String("artifact", "", "expected artifactId of the manifest's first model")
	version := fs.String("version", "", "expected version of the manifest's first model")
	message := fs.String("message", "", "extra text appended to the violation diagnostic")
	ciMode := fs.Bool("ci", false, "emit GitHub Actions annotations")
	jsonOutput := fs.Bool("json", false, "emit the evaluation result as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	if *chainPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --chain is required")
		return exitError
	}

	cfg := rule.DefaultConfig()
	if *rulesPath != "" {
		var err error
		cfg, err = rule.LoadConfigFromPath(*rulesPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "rule configuration not found: %s\n", *rulesPath)
				return exitRuleConfig
			}
			fmt.Fprintf(os.Stderr, "failed to parse rule configuration: %v\n", err)
			return exitRuleConfig
		}
	}
	if *message != "" {
		cfg.Message = *message
	}

	ci := *ciMode || getEnvBool(environ, "CI")

	var chainResolver resolver.ChainResolver = resolver.ManifestResolver{}
	chain, err := chainResolver.Resolve(*groupID, *artifactID, *version, *chainPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chain resolution failed: %v\n", err)
		return exitResolveFail
	}

	result := rule.Evaluate(chain, cfg)

	if *jsonOutput {
		out, err := rule.FormatJSON(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot format result: %v\n", err)
			return exitError
		}
		fmt.Println(out)
	}

	if !result.Passed {
		// Report all violations to stderr (unless JSON mode already printed)
		if !*jsonOutput {
			if ci {
				fmt.Fprint(os.Stderr, rule.FormatCI(result, cfg))
			} else {
				fmt.Fprint(os.Stderr, rule.FormatCLI(result, cfg))
			}
		}
		return exitViolation
	}

	// Silent success: no output unless --json asked for it.
	return exitOK
}

// getEnvBool checks if an environment variable is set to a truthy value
func getEnvBool(environ []string, name string) bool {
	prefix := name + "="
	for _, env := range environ {
		if strings.HasPrefix(env, prefix) {
			val := strings.ToLower(strings.TrimPrefix(env, prefix))
			return val == "true" || val == "1" || val == "yes"
		}
	}
	return false
}
