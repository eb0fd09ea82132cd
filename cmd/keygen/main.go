// Command keygen prints a fresh PASETO v4 key pair as environment variables.
package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"aidanwoods.dev/go-paseto"
)

func writeKeys(w io.Writer) {
	secret := paseto.NewV4AsymmetricSecretKey()
	public := secret.Public()

	fmt.Fprintln(w, "# Generated PASETO v4 key pair, keep the private key secret")
	fmt.Fprintf(w, "PASETO_PRIVATE_KEY=%s\n", base64.StdEncoding.EncodeToString(secret.ExportBytes()))
	fmt.Fprintf(w, "PASETO_PUBLIC_KEY=%s\n", base64.StdEncoding.EncodeToString(public.ExportBytes()))
}

func main() {
	writeKeys(os.Stdout)
}
