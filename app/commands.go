package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/portfolio/app/enum"
	"github.com/umputun/portfolio/app/preview"
	"github.com/umputun/portfolio/app/server"
	"github.com/umputun/portfolio/app/store"
	"github.com/umputun/portfolio/app/theme"
	"github.com/umputun/portfolio/app/tokens"
)

// localVisitor is the store profile used by the terminal commands.
const localVisitor = "local"

// cacheSize is the number of preferences kept in memory in front of the database.
const cacheSize = 10000

// SharedOptions contains options shared between the local commands
type SharedOptions struct {
	DB      string `short:"d" long:"db" env:"PORTFOLIO_DB" default:"portfolio.db" description:"database URL (sqlite file or postgres://...)"`
	Profile string `long:"profile" env:"PORTFOLIO_PROFILE" default:"local" description:"visitor profile in the store"`
	Debug   bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB     string `short:"d" long:"db" env:"PORTFOLIO_DB" default:"portfolio.db" description:"database URL (sqlite file or postgres://...)"`
	Tokens string `long:"tokens" env:"PORTFOLIO_TOKENS" description:"design tokens yaml file, embedded default if empty"`
	Fonts  string `long:"fonts" env:"PORTFOLIO_FONTS" description:"directory with font files served under /fonts/"`

	Server struct {
		Address      string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout  time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout  time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		BaseURL      string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /portfolio)"`
		Secret       string        `long:"secret" env:"SECRET" description:"visitor cookie signing secret, random if empty"`
		RPS          int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
	} `group:"server" namespace:"server" env-namespace:"PORTFOLIO_SERVER"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	ts, err := tokens.Load(s.Tokens)
	if err != nil {
		return fmt.Errorf("failed to load design tokens: %w", err)
	}

	log.Printf("[INFO] starting portfolio server on %s", s.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	secret := s.Server.Secret
	if secret == "" {
		// visitors lose their preference on restart without a stable secret
		log.Printf("[WARN] no --server.secret set, visitor cookies are valid until restart")
		secret = randomSecret()
	}

	db, err := store.New(s.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	prefStore, err := store.NewCached(db, cacheSize)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer prefStore.Close()

	srv, err := server.New(prefStore, ts, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: 5 * time.Second,
		Version:         revision,
		BaseURL:         baseURL,
		Secret:          secret,
		FontsDir:        s.Fonts,
		RequestsPerSec:  s.Server.RPS,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// randomSecret makes a per-process signing secret.
func randomSecret() string {
	return uuid.NewString() + uuid.NewString()
}

// ThemeCmd implements the theme subcommand, working on the stored preference of a local profile
type ThemeCmd struct {
	SharedOptions

	Set   string `long:"set" choice:"light" choice:"dark" choice:"system" description:"set the preference"`
	Cycle bool   `long:"cycle" description:"advance the preference light -> dark -> system"`

	out    io.Writer
	scheme theme.SchemeSource
}

// Execute runs the theme command
func (c *ThemeCmd) Execute(_ []string) error {
	setupLogs(c.Debug)
	if c.Set != "" && c.Cycle {
		return errors.New("--set and --cycle are mutually exclusive")
	}

	db, err := store.New(c.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer db.Close()

	root := theme.NewClassList("")
	m := theme.New(store.NewScoped(context.Background(), db, c.profile()), c.schemeSource(), root)

	switch {
	case c.Set != "":
		if err := m.SetPreferenceName(c.Set); err != nil {
			return fmt.Errorf("failed to set theme: %w", err)
		}
	case c.Cycle:
		if err := theme.NewToggle(m).Activate(); err != nil {
			return fmt.Errorf("failed to cycle theme: %w", err)
		}
	}

	view := theme.NewToggle(m).View()
	fmt.Fprintf(c.writer(), "%s, appearance %s, root class %q\n", view.Label, view.Appearance, root.String())
	return nil
}

func (c *ThemeCmd) profile() string {
	if c.Profile == "" {
		return localVisitor
	}
	return c.Profile
}

func (c *ThemeCmd) schemeSource() theme.SchemeSource {
	if c.scheme != nil {
		return c.scheme
	}
	return theme.NewTerminalScheme(os.Stdout)
}

func (c *ThemeCmd) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// TokensCmd implements the tokens subcommand
type TokensCmd struct {
	File       string `short:"f" long:"file" env:"PORTFOLIO_TOKENS" description:"design tokens yaml file, embedded default if empty"`
	Appearance string `short:"a" long:"appearance" choice:"light" choice:"dark" default:"light" description:"appearance of the swatches"`
	CSS        bool   `long:"css" description:"print the css custom properties instead of swatches"`
	FontsURL   string `long:"fonts-url" default:"/fonts/" description:"url prefix of font files in the css"`

	out io.Writer
}

// Execute runs the tokens command
func (c *TokensCmd) Execute(_ []string) error {
	ts, err := tokens.Load(c.File)
	if err != nil {
		return fmt.Errorf("failed to load design tokens: %w", err)
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if c.CSS {
		css, err := ts.CSS(c.FontsURL)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, css)
		return err
	}

	a, err := enum.ParseAppearance(c.Appearance)
	if err != nil {
		return fmt.Errorf("invalid appearance: %w", err)
	}
	_, err = io.WriteString(out, preview.Swatches(ts, a))
	return err
}

// PreviewCmd implements the preview subcommand
type PreviewCmd struct {
	SharedOptions

	Tokens string        `long:"tokens" env:"PORTFOLIO_TOKENS" description:"design tokens yaml file, embedded default if empty"`
	Probe  time.Duration `long:"probe" default:"2s" description:"terminal color scheme re-read interval, 0 disables"`
}

// Execute runs the preview command
func (c *PreviewCmd) Execute(_ []string) error {
	// the preview owns the terminal, logs go to the debug file only
	log.Setup(log.Out(io.Discard), log.Err(io.Discard))
	if c.Debug {
		f, err := tea.LogToFile("portfolio-preview.log", "")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		log.Setup(log.Debug, log.Msec, log.Out(f), log.Err(f))
	}

	ts, err := tokens.Load(c.Tokens)
	if err != nil {
		return fmt.Errorf("failed to load design tokens: %w", err)
	}

	db, err := store.New(c.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals(cancel)

	profile := c.Profile
	if profile == "" {
		profile = localVisitor
	}
	model := preview.New(preview.Config{
		Tokens:        ts,
		ProbeInterval: c.Probe,
		Load: func() (*theme.Machine, *theme.ClassList, error) {
			root := theme.NewClassList("")
			scheme := theme.NewTerminalScheme(os.Stdout)
			return theme.New(store.NewScoped(ctx, db, profile), scheme, root), root, nil
		},
	})
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
