// Package convert drives the end-to-end run: load a decrypted Authy export,
// resolve every token, and write the otpauth:// URIs.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TimLChan/authy-to-otpauth/authy"
	"github.com/TimLChan/authy-to-otpauth/authy/otpauth"
	"github.com/TimLChan/authy-to-otpauth/png"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "convert")

// Options configures a single conversion run.
type Options struct {

	// Input is the path of the decrypted Authy JSON export.
	Input string

	// Output is the path the newline-joined URIs are written to.
	Output string

	// QRDir, when non-empty, names a directory that additionally receives
	// one QR code PNG per token. It is created if missing.
	QRDir string

	// Ask lets the operator confirm ambiguous issuer and account choices.
	// Nil accepts every proposal unattended.
	Ask authy.Prompter
}

// Run converts the export named by opts into one otpauth:// URI per token.
// Every failure is logged here for the operator before it is returned, so
// callers can decide the exit code without reporting twice.
func Run(opts Options) error {

	export, err := authy.LoadExport(opts.Input)
	if err != nil {
		reportLoadError(opts.Input, err)
		return err
	}

	if len(export.Tokens) == 0 {
		logger.Error("no tokens found in the input file")
		return authy.ErrNoTokens
	}

	uris := make([]string, 0, len(export.Tokens))
	resolutions := make([]authy.Resolution, 0, len(export.Tokens))

	for _, token := range export.Tokens {
		res, err := authy.Resolve(token, opts.Ask)
		if err != nil {
			logger.Errorf("%v", err)
			return err
		}

		logger.Infof("processed totp - issuer: %s | account: %s", res.Issuer, res.Account)

		uris = append(uris, otpauth.URI(res.Issuer, res.Account, token.DecryptedSeed, token.DigitsOrDefault()))
		resolutions = append(resolutions, res)
	}

	if err := os.WriteFile(opts.Output, []byte(strings.Join(uris, "\n")), 0644); err != nil {
		logger.Errorf("%v", err)
		return fmt.Errorf("write output: %w", err)
	}

	if opts.QRDir != "" {
		if err := writeQrCodes(opts.QRDir, uris, resolutions); err != nil {
			logger.Errorf("%v", err)
			return err
		}
	}

	logger.Infof("converted %d token(s)", len(uris))
	logger.Infof("URIs written to: %s", opts.Output)
	if opts.QRDir != "" {
		logger.Infof("QR codes written to: %s", opts.QRDir)
	}

	return nil
}

// reportLoadError logs the operator-facing message for a LoadExport failure.
// Missing files and broken JSON get friendly wording, everything else is
// passed through.
func reportLoadError(input string, err error) {

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Errorf("could not find '%s'", input)
	case errors.As(err, &syntaxErr):
		logger.Errorf("invalid JSON in '%s': %v", input, syntaxErr)
	case errors.As(err, &typeErr):
		logger.Errorf("invalid JSON in '%s': %v", input, typeErr)
	default:
		logger.Errorf("%v", err)
	}
}

func writeQrCodes(dir string, uris []string, resolutions []authy.Resolution) error {

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create QR directory: %w", err)
	}

	for i, uri := range uris {
		name := fmt.Sprintf("%03d_%s.png", i+1, fileSlug(resolutions[i]))

		if err := png.WriteFile(filepath.Join(dir, name), uri); err != nil {
			return fmt.Errorf("write QR code %s: %w", name, err)
		}

		logger.Debugf("QR code written: %s", name)
	}

	return nil
}

// fileSlug turns a resolution into a filename-safe tag. Anything outside
// the portable filename set becomes an underscore.
func fileSlug(res authy.Resolution) string {

	tag := res.Account
	if res.Issuer != "" {
		tag = res.Issuer + "_" + res.Account
	}

	out := []byte(tag)
	for i, c := range out {
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '.', c == '-', c == '_':
		default:
			out[i] = '_'
		}
	}

	if len(out) == 0 {
		return "token"
	}

	return string(out)
}
