// Command hashpass prints a bcrypt hash for OPERATOR_PASSWORD_HASH.
// It reads the password from the first line of stdin.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"salon-booking/internal/pkg/password"
)

func main() {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(os.Stderr, "hashpass: read password from stdin:", err)
		os.Exit(1)
	}
	hash, err := password.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpass: %v (need %d to %d bytes)\n", err, password.MinLength, password.MaxBytes)
		os.Exit(1)
	}
	fmt.Println(hash)
}
