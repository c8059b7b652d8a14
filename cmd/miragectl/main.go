// Command miragectl is a small terminal client for the mirage API: register
// or log in, upload images for analysis and list past results. The session
// token is kept in a JSON file under the user config directory, so the login
// survives between invocations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mirage/internal/client"
)

const usage = `Usage: miragectl [-server URL] <command> [arguments]

Commands:
  register -name NAME -email EMAIL -password PASSWORD
  login    -email EMAIL -password PASSWORD
  logout
  status
  upload   -file PATH [-method basic|advanced]
  images
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "miragectl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("miragectl", flag.ExitOnError)
	server := global.String("server", envOr("MIRAGE_SERVER", "http://localhost:8080"), "API base URL")
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if err := global.Parse(args); err != nil {
		return err
	}

	if global.NArg() == 0 {
		global.Usage()

		return errors.New("missing command")
	}

	session, err := client.NewSession(sessionDir())
	if err != nil {
		return err
	}
	api := client.New(*server, session)
	ctx := context.Background()

	command := global.Arg(0)
	rest := global.Args()[1:]

	switch command {
	case "register":
		return runRegister(ctx, api, rest)
	case "login":
		return runLogin(ctx, api, rest)
	case "logout":
		return session.Logout()
	case "status":
		return runStatus(session)
	case "upload":
		return runUpload(ctx, api, rest)
	case "images":
		return runImages(ctx, api)
	default:
		global.Usage()

		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 6 characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := api.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("Registered and logged in as %s\n", account.Email)

	return nil
}

func runLogin(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	account, err := api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", account.Email)

	return nil
}

func runStatus(session *client.Session) error {
	if session.Status() == client.StatusAnonymous {
		fmt.Println("Not logged in.")

		return nil
	}

	if account := session.Account(); account != nil {
		fmt.Printf("Logged in as %s\n", account.Email)
	} else {
		fmt.Println("Logged in.")
	}

	return nil
}

func runUpload(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	path := fs.String("file", "", "image file to analyze")
	method := fs.String("method", "basic", "detection method: basic or advanced")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return errors.New("upload requires -file")
	}

	file, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer file.Close()

	record, err := api.Upload(ctx, *path, *method, file)
	if err != nil {
		return err
	}

	fmt.Print(client.RenderRecord(record))

	return nil
}

func runImages(ctx context.Context, api *client.Client) error {
	records, err := api.Images(ctx)
	if err != nil {
		return err
	}

	fmt.Print(client.RenderRecords(records))

	return nil
}

func sessionDir() string {
	if dir := os.Getenv("MIRAGE_CONFIG_DIR"); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, "mirage")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
