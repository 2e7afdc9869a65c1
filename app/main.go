package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

var opts struct {
	Server  ServerCmd  `command:"server" description:"run the portfolio web server"`
	Theme   ThemeCmd   `command:"theme" description:"show or change the stored theme preference"`
	Tokens  TokensCmd  `command:"tokens" description:"print design token swatches or css"`
	Preview PreviewCmd `command:"preview" description:"interactive terminal theme preview"`

	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	p := newParser(os.Stdout)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

// newParser makes the command line parser. --version wins over any subcommand.
func newParser(out io.Writer) *flags.Parser {
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Version {
			fmt.Fprintf(out, "portfolio %s\n", revision)
			return nil
		}
		if cmd == nil {
			return errors.New("command required: server, theme, tokens or preview")
		}
		return cmd.Execute(args)
	}
	return p
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}

// validateBaseURL normalizes the base URL: empty and "/" mean no prefix, the trailing slash is dropped.
func validateBaseURL(u string) (string, error) {
	if u == "" || u == "/" {
		return "", nil
	}
	if !strings.HasPrefix(u, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", u)
	}
	if strings.Contains(u, "://") || strings.ContainsAny(u, "?#") {
		return "", fmt.Errorf("base URL must be a path, got %q", u)
	}
	return strings.TrimRight(u, "/"), nil
}
