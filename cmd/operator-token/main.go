// Command operator-token signs a bearer token for the /api/admin endpoints.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/stpnv0/SafeMeet/internal/middleware"
)

var exitFn = os.Exit

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		exitFn(1)
	}
	exitFn(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("operator-token", flag.ContinueOnError)
	flags.SetOutput(stderr)
	subject := flags.String("subject", "", "operator id recorded as reviewer/actor")
	role := flags.String("role", middleware.RoleOperator, "operator or admin")
	ttl := flags.Duration("ttl", 12*time.Hour, "token lifetime")
	secret := flags.String("secret", getenv("AUTH_JWT_SECRET"), "signing secret (defaults to AUTH_JWT_SECRET)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	token, err := middleware.IssueOperatorToken(*secret, *subject, *role, *ttl)
	if err != nil {
		fmt.Fprintf(stderr, "issue token: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, token)
	return 0
}
