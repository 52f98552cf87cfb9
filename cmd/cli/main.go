// Command cli is a small operator console for the vehicle service. It logs
// in with the admin credentials and pulls a full export document to a local
// file, suitable for backups or migrating between deployments.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	addr := flag.String("addr", "http://localhost:8000", "base URL of the running service")
	username := flag.String("username", "admin", "admin username")
	out := flag.String("out", "export.json", "file to write the export document to")
	flag.Parse()

	if err := run(*addr, *username, *out); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(addr, username, out string) error {
	fmt.Printf("Password for %s: ", username)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("could not read password: %w", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	base := strings.TrimRight(addr, "/")

	if err := login(client, base, username, string(password)); err != nil {
		return err
	}
	color.Green("login ok")

	n, err := export(client, base, out)
	if err != nil {
		return err
	}
	color.Green("wrote %d bytes to %s", n, out)
	return nil
}

func login(client *http.Client, base, username, password string) error {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	resp, err := client.PostForm(base+"/admin/login/", form)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login rejected (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func export(client *http.Client, base, out string) (int64, error) {
	resp, err := client.Get(base + "/admin/export/")
	if err != nil {
		return 0, fmt.Errorf("export request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("export failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	f, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("could not create %s: %w", out, err)
	}
	defer f.Close() //nolint:errcheck

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return 0, fmt.Errorf("could not write %s: %w", out, err)
	}
	return n, nil
}
