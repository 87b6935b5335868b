package main

import (
	"os"

	"github.com/TimLChan/authy-to-otpauth/authy"
	"github.com/TimLChan/authy-to-otpauth/authy/convert"
	"github.com/TimLChan/authy-to-otpauth/authy/util"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// overridden at release time via -ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {

	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {

	var (
		input       string
		output      string
		qrDir       string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "authy-to-otpauth",
		Short:   "Convert decrypted Authy TOTP tokens into otpauth:// URIs",
		Version: version + " (commit " + commit + ")",
		Example: `  authy-to-otpauth
  authy-to-otpauth -i my_tokens.json -o my_uris.txt
  authy-to-otpauth --interactive
  authy-to-otpauth --qr-dir qr`,
		Run: func(cmd *cobra.Command, _ []string) {

			var ask authy.Prompter
			if interactive {
				ask = authy.StdinPrompter(cmd.InOrStdin())
			}

			// Conversion failures are logged by the driver and the process
			// still exits zero. Only flag misuse fails the command.
			_ = convert.Run(convert.Options{
				Input:  input,
				Output: output,
				QRDir:  qrDir,
				Ask:    ask,
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i",
		util.GetEnvOr("AUTHY2OTP_INPUT", "decrypted_tokens.json"),
		"path of the decrypted Authy token export")
	cmd.Flags().StringVarP(&output, "output", "o",
		util.GetEnvOr("AUTHY2OTP_OUTPUT", "otpauth_uris.txt"),
		"path the otpauth:// URIs are written to")
	cmd.Flags().StringVar(&qrDir, "qr-dir",
		util.GetEnvOr("AUTHY2OTP_QR_DIR", ""),
		"also write one QR code PNG per token into this directory")
	cmd.Flags().BoolVar(&interactive, "interactive", false,
		"confirm inferred issuer and account names on the terminal")

	return cmd
}
