// Package cli implements zpersona's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"golang.org/x/term"

	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/locale"
	"github.com/zarlcorp/zpersona/internal/maildomain"
)

// DataDir returns the default data directory for zpersona.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zpersona"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zpersona"
	}
	return home + "/.local/share/zpersona"
}

// ReadPassword prompts for a password on stderr and reads it without echo.
func ReadPassword(prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) (string, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return "", err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}

// IsFirstRun checks whether the store has been initialized.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/salt")
	return err != nil
}

// OpenStore prompts for a password and opens the store, returning both
// the store and the identities collection (keyed by email).
func OpenStore(dir string) (*zstore.Store, *zstore.Collection[identity.Record], error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	var pass string
	var err error
	if IsFirstRun(dir) {
		pass, err = ReadNewPassword(os.Stderr)
	} else {
		pass, err = ReadPassword("master password: ", os.Stderr)
	}
	if err != nil {
		return nil, nil, err
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	s, err := zstore.Open(fsys, []byte(pass))
	if err != nil {
		return nil, nil, err
	}

	col, err := zstore.NewCollection[identity.Record](s, "identities")
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return s, col, nil
}

// CmdEmail generates and prints a random email for the default country.
func CmdEmail() {
	g := identity.New()
	first, last, err := g.Name(locale.Default())
	if err != nil {
		fail(err)
	}
	email, err := g.Email(first, last, maildomain.Random)
	if err != nil {
		fail(err)
	}
	fmt.Println(email)
}

// CmdIdentity generates and prints a complete identity.
func CmdIdentity(args []string) {
	asJSON := hasFlag(args, "--json")
	save := hasFlag(args, "--save")
	code := flagValue(args, "--country")
	domain := flagValue(args, "--domain")

	if code == "" {
		code = locale.Default().Code
	}

	g := identity.New()
	id, err := g.GenerateCode(strings.ToUpper(code), domain)
	if err != nil {
		if errors.Is(err, locale.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "zpersona: unknown country %q (see: zpersona countries)\n", code)
			os.Exit(1)
		}
		fail(err)
	}

	if asJSON {
		printJSON(id)
	} else {
		printIdentity(id)
	}

	if save {
		dir := DataDir()
		s, col, err := OpenStore(dir)
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := col.Put(id.Email, id); err != nil {
			fail(fmt.Errorf("save: %w", err))
		}
		fmt.Fprintln(os.Stderr, "saved")
	}
}

// CmdCountries lists the supported countries.
func CmdCountries() {
	for _, c := range locale.All() {
		fmt.Printf("  %s  %-16s %s\n", c.Code, c.Name, c.PhoneFormat)
	}
}

// CmdDomains lists the email domain pool plus the random sentinel.
func CmdDomains() {
	fmt.Printf("  %s (default)\n", maildomain.Random)
	for _, d := range maildomain.All() {
		fmt.Printf("  %s\n", d)
	}
}

// CmdList lists all saved identities.
func CmdList(args []string) {
	asJSON := hasFlag(args, "--json")

	dir := DataDir()
	s, col, err := OpenStore(dir)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	ids, err := col.List()
	if err != nil {
		fail(fmt.Errorf("list: %w", err))
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].CreatedAt.After(ids[j].CreatedAt)
	})

	if len(ids) == 0 {
		fmt.Println("no saved identities")
		return
	}

	if asJSON {
		printJSON(ids)
		return
	}

	for _, id := range ids {
		fmt.Printf("  %-20s %-30s %s %s\n",
			id.FirstName+" "+id.LastName,
			id.Email,
			id.Country,
			id.CreatedAt.Format("2006-01-02"),
		)
	}
}

// CmdForget deletes a saved identity by email.
func CmdForget(email string) {
	dir := DataDir()
	s, col, err := OpenStore(dir)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	if err := col.Delete(email); err != nil {
		fail(fmt.Errorf("forget: %w", err))
	}
	fmt.Printf("forgot %s\n", email)
}

func printIdentity(id identity.Record) {
	fmt.Printf("  name:     %s %s\n", id.FirstName, id.LastName)
	fmt.Printf("  country:  %s\n", id.Country)
	fmt.Printf("  email:    %s\n", id.Email)
	fmt.Printf("  phone:    %s\n", id.Phone)
	fmt.Printf("  birthday: %s\n", id.Birthday.Format("2006-01-02"))
	fmt.Printf("  password: %s\n", id.Password)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail(fmt.Errorf("encode json: %w", err))
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
	os.Exit(1)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the argument following flag, or "" if absent.
func flagValue(args []string, flag string) string {
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
