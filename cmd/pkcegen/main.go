package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caasmo/pkcegen/config"
	"github.com/caasmo/pkcegen/crypto"
	"github.com/caasmo/pkcegen/oauth2"
)

// swapped in tests to simulate an unavailable random source
var (
	newPair  = crypto.NewPKCEPairAlphabet
	newState = crypto.Oauth2State
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pkcegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFlag := fs.String("config", "", "Path to a TOML configuration file")
	lengthFlag := fs.Int("length", crypto.OauthCodeVerifierLength, "Length of the code verifier")
	jsonFlag := fs.Bool("json", false, "Write the result as JSON")
	verboseFlag := fs.Bool("v", false, "Enable debug logging on stderr")

	fs.Usage = func() {
		help := CommandHelp{
			Usage:       "pkcegen [options]",
			Description: "Generates a PKCE (RFC 7636) code verifier and its S256 code challenge.\nWith an [oauth2] section in the configuration, also prints the authorization URL.",
			Options:     fs,
			Examples: []string{
				"pkcegen",
				"pkcegen -length 64 -json",
				"pkcegen -config pkcegen.toml",
			},
		}
		help.Print(stderr)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	switch rest := fs.Args(); {
	case len(rest) == 1 && rest[0] == "help":
		fs.Usage()
		return nil
	case len(rest) == 1:
		fs.Usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, rest[0])
	case len(rest) > 1:
		fs.Usage()
		return fmt.Errorf("%w: %v", ErrTooManyArguments, rest)
	}

	logger := newLogger(stderr, *verboseFlag)

	cfg := config.NewDefaultConfig()
	if *configFlag != "" {
		var err error
		cfg, err = config.LoadFile(*configFlag, logger)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// an explicit -length overrides the configuration file
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "length" {
			cfg.Verifier.Length = *lengthFlag
		}
	})
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	for _, w := range config.Warnings(cfg) {
		logger.Warn(w)
	}

	alphabet, err := config.AlphabetSymbols(cfg.Verifier.Alphabet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	pair, err := newPair(cfg.Verifier.Length, alphabet)
	if err != nil {
		logger.Error("failed to generate PKCE pair", "error", err)
		return fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	logger.Debug("generated PKCE pair", "length", len(pair.Verifier), "alphabet", cfg.Verifier.Alphabet, "method", pair.Method)

	res := result{Pair: pair}
	if cfg.OAuth2 != nil {
		state, err := newState()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGenerate, err)
		}
		res.State = state
		res.AuthorizationURL = oauth2.AuthCodeURL(cfg.OAuth2, state, pair)
		logger.Debug("built authorization URL", "provider", cfg.OAuth2.Name, "auth_url", cfg.OAuth2.AuthURL)
	}

	write := writeText
	if *jsonFlag {
		write = writeJSON
	}
	if err := write(stdout, res); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
