package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ecelliitbhu/ecell-backend/pkg/database"
)

var (
	// swapped in tests
	readPasswordFunc = term.ReadPassword
	migrateUpFunc    = database.RunMigrations
	migrateDownFunc  = database.RollbackMigrations

	errHelp = errors.New("help provided")
)

// adminSetter the slice of AuthService the CLI needs
type adminSetter interface {
	SetAdmin(ctx context.Context, email, password string) error
}

type commandLine struct {
	db     *sql.DB
	admins adminSetter
	logger *zap.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  addadmin -email EMAIL         create an admin or reset its password (prompted)")
	fmt.Fprintln(cli.out, "  migrate up                    apply pending migrations")
	fmt.Fprintln(cli.out, "  migrate down [-steps N]       roll back N migrations (default 1)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "addadmin":
		return cli.addAdminCmd(args[2:])
	case "migrate":
		return cli.migrateCmd(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) addAdminCmd(args []string) error {
	fs := flag.NewFlagSet("addadmin", flag.ContinueOnError)
	fs.SetOutput(cli.out)
	email := fs.String("email", "", "admin email; the password is prompted next")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		fs.Usage()
		return errHelp
	}

	if err := cli.admins.SetAdmin(context.Background(), *email, string(pwd)); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "admin %s saved\n", *email)
	return nil
}

func (cli *commandLine) migrateCmd(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "up":
		return migrateUpFunc(cli.db, cli.logger)
	case "down":
		fs := flag.NewFlagSet("migrate down", flag.ContinueOnError)
		fs.SetOutput(cli.out)
		steps := fs.Int("steps", 1, "number of migrations to roll back")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *steps < 1 {
			return fmt.Errorf("steps must be positive (got %d)", *steps)
		}
		return migrateDownFunc(cli.db, *steps, cli.logger)
	default:
		return fmt.Errorf("%q: no such migrate command", args[0])
	}
}
