package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	reader   *bufio.Reader
	out      io.Writer
	token    string
	userID   string
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// Run executes a single command when one is given and starts the REPL
// otherwise.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Welcome to GophAuth CLI (type 'help' for commands)")
		runREPL(ctx, a, a.getStatus, a.reader, a.out)
		return nil
	}

	switch args[0] {
	case "register":
		return a.Register(ctx)
	case "login":
		if err := a.Login(ctx); err != nil {
			return err
		}
		a.printf("Token: %s", a.token)
		return nil
	case "profile":
		if err := a.Login(ctx); err != nil {
			return err
		}
		return a.Profile(ctx)
	case "ping":
		return a.Ping(ctx)
	default:
		return fmt.Errorf("unknown command %q (want register, login, profile or ping)", args[0])
	}
}
