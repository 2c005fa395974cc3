package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/amirasaad/backoffice/infra"
	"github.com/amirasaad/backoffice/infra/initializer"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	okf   = color.New(color.FgGreen).PrintfFunc()
	warnf = color.New(color.FgYellow).PrintfFunc()
	errf  = color.New(color.FgRed, color.Bold).FprintfFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func usage() {
	fmt.Println("Usage: backoffice <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Printf("  %s                              apply pending migrations\n", bold("migrate up"))
	fmt.Printf("  %s                            roll back the last migration\n", bold("migrate down"))
	fmt.Printf("  %s           create an admin (prompts for the password)\n", bold("create-admin <username> <email>"))
	fmt.Printf("  %s  issue an API key, optional expiry like 720h\n", bold("issue-key <owner> <name> <perm,...> [ttl]"))
	fmt.Printf("  %s                               run one reconciliation sweep\n", bold("reconcile"))
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cfg, err := config.Load()
	if err != nil {
		fail(fmt.Errorf("load configuration: %w", err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "migrate":
		err = runMigrate(cfg, args)
	case "create-admin":
		err = withApp(cfg, func(a *app.App) error { return runCreateAdmin(ctx, a, args) })
	case "issue-key":
		err = withApp(cfg, func(a *app.App) error { return runIssueKey(ctx, a, args) })
	case "reconcile":
		err = withApp(cfg, func(a *app.App) error { return runReconcile(ctx, a) })
	default:
		warnf("Unknown command: %s\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	errf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func withApp(cfg *config.App, fn func(*app.App) error) error {
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	defer cleanup()
	if err != nil {
		return err
	}
	return fn(app.New(deps, cfg))
}

func runMigrate(cfg *config.App, args []string) error {
	if len(args) != 1 || (args[0] != "up" && args[0] != "down") {
		return errors.New("usage: migrate up|down")
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if err := infra.Migrate(db, args[0], slog.Default()); err != nil {
		return err
	}
	okf("Migrations %s applied\n", args[0])
	return nil
}

func runCreateAdmin(ctx context.Context, a *app.App, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: create-admin <username> <email>")
	}
	password, err := readPassword()
	if err != nil {
		return err
	}
	u, err := a.UserService.CreateUser(ctx, dto.UserCreate{
		Username: args[0],
		Email:    args[1],
		Password: password,
		Role:     string(user.RoleAdmin),
	})
	if err != nil {
		return err
	}
	okf("Created %s %s (%s)\n", u.Role, u.Username, u.ID)
	return nil
}

// readPassword prompts without echo on a terminal and reads one line
// from stdin otherwise.
func readPassword() (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func runIssueKey(ctx context.Context, a *app.App, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return errors.New("usage: issue-key <owner-username> <name> <perm,...> [ttl]")
	}
	owner, name, perms := args[0], args[1], args[2]
	var ttl time.Duration
	if len(args) == 4 {
		d, err := time.ParseDuration(args[3])
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid ttl %q", args[3])
		}
		ttl = d
	}
	u, err := a.UserService.GetUserByUsername(ctx, owner)
	if err != nil {
		return fmt.Errorf("owner %q: %w", owner, err)
	}
	in := dto.APIKeyCreate{Name: name}
	for _, p := range strings.Split(perms, ",") {
		if p = strings.TrimSpace(p); p != "" {
			in.Permissions = append(in.Permissions, p)
		}
	}
	if ttl > 0 {
		exp := time.Now().Add(ttl).UTC()
		in.ExpiresAt = &exp
	}
	key, secret, err := a.APIKeyService.Issue(ctx, u.ID, in)
	if err != nil {
		return err
	}
	okf("Issued key %s for %s\n", key.ID, u.Username)
	warnf("Store it now, it is not shown again:\n")
	fmt.Println(secret)
	return nil
}

func runReconcile(ctx context.Context, a *app.App) error {
	res, err := a.TransactionService.Sweep(ctx)
	if err != nil {
		return err
	}
	okf("Sweep finished: %d retried, %d matched, %d expired\n", res.Retried, res.Matched, res.Expired)
	return nil
}
