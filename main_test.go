package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_rootCmd_flagDefaults(t *testing.T) {

	cmd := rootCmd()

	assert.Equal(t, "decrypted_tokens.json", cmd.Flags().Lookup("input").DefValue)
	assert.Equal(t, "otpauth_uris.txt", cmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "", cmd.Flags().Lookup("qr-dir").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("interactive").DefValue)
}

func Test_rootCmd_envOverridesDefaults(t *testing.T) {

	t.Setenv("AUTHY2OTP_INPUT", "alt_tokens.json")
	t.Setenv("AUTHY2OTP_OUTPUT", "alt_uris.txt")
	t.Setenv("AUTHY2OTP_QR_DIR", "alt_qr")

	cmd := rootCmd()

	assert.Equal(t, "alt_tokens.json", cmd.Flags().Lookup("input").DefValue)
	assert.Equal(t, "alt_uris.txt", cmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "alt_qr", cmd.Flags().Lookup("qr-dir").DefValue)
}

func Test_rootCmd_convertsFile(t *testing.T) {

	dir := t.TempDir()
	input := filepath.Join(dir, "decrypted_tokens.json")
	output := filepath.Join(dir, "otpauth_uris.txt")

	err := os.WriteFile(input, []byte(`{
  "decrypted_authenticator_tokens": [
    {"name": "Acme: jsmith", "issuer": "Acme", "decrypted_seed": "SECRET123", "digits": 6}
  ]
}`), 0644)
	if err != nil {
		t.Fatalf("can't write input file: %v", err)
	}

	cmd := rootCmd()
	cmd.SetArgs([]string{"-i", input, "-o", output})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("can't read output file: %v", err)
	}
	assert.Equal(t,
		"otpauth://totp/Acme%3Ajsmith?secret=SECRET123&issuer=Acme&digits=6&algorithm=SHA1",
		string(content))
}

func Test_rootCmd_interactiveReadsFromCommandInput(t *testing.T) {

	dir := t.TempDir()
	input := filepath.Join(dir, "decrypted_tokens.json")
	output := filepath.Join(dir, "otpauth_uris.txt")

	err := os.WriteFile(input, []byte(`{
  "decrypted_authenticator_tokens": [
    {"name": "jsmith", "decrypted_seed": "SECRET123"}
  ]
}`), 0644)
	if err != nil {
		t.Fatalf("can't write input file: %v", err)
	}

	cmd := rootCmd()
	cmd.SetIn(strings.NewReader("NewCorp\n"))
	cmd.SetArgs([]string{"-i", input, "-o", output, "--interactive"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("can't read output file: %v", err)
	}
	assert.Equal(t,
		"otpauth://totp/NewCorp%3Ajsmith?secret=SECRET123&issuer=NewCorp&digits=6&algorithm=SHA1",
		string(content))
}

func Test_rootCmd_failedConversionStillSucceeds(t *testing.T) {

	cmd := rootCmd()
	cmd.SetArgs([]string{"-i", filepath.Join(t.TempDir(), "nope.json")})

	assert.NoError(t, cmd.Execute(), "conversion errors are logged, not raised")
}
