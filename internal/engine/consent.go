package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/logger"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

const consentQuestion = "Allow Raven to transcribe audio and video files with the local speech recognizer?"

type consentGate struct {
	mode     string
	file     string
	prompter Prompter
	logger   logger.Logger

	mu     sync.Mutex
	status AuthStatus
}

// NewConsentGate creates an Authorizer for the given consent mode. In ask mode the user is prompted
// at most once; the answer is saved to file so later runs do not ask again.
func NewConsentGate(mode, file string, prompter Prompter, log logger.Logger) Authorizer {
	g := &consentGate{
		mode:     mode,
		file:     file,
		prompter: prompter,
		logger:   log,
	}

	switch mode {
	case config.ConsentGranted:
		g.status = AuthGranted
	case config.ConsentDenied:
		g.status = AuthDenied
	default:
		g.status = g.load()
	}
	return g
}

func (g *consentGate) Status() AuthStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Request holds the lock while prompting, so concurrent callers wait for the same answer.
func (g *consentGate) Request(ctx context.Context) (AuthStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != AuthNotDetermined {
		return g.status, nil
	}
	if g.prompter == nil {
		return AuthNotDetermined, errors.New("no prompter to ask for speech authorization")
	}

	ok, err := g.prompter.Confirm(ctx, consentQuestion)
	if err != nil {
		return AuthNotDetermined, fmt.Errorf("ask speech authorization: %w", err)
	}

	g.status = AuthDenied
	if ok {
		g.status = AuthGranted
	}
	g.save(ctx)

	g.logger.Info(ctx, "Speech recognition %s", g.status)
	return g.status, nil
}

func (g *consentGate) load() AuthStatus {
	if g.file == "" {
		return AuthNotDetermined
	}
	data, err := os.ReadFile(g.file)
	if err != nil {
		return AuthNotDetermined
	}
	switch strings.TrimSpace(string(data)) {
	case config.ConsentGranted:
		return AuthGranted
	case config.ConsentDenied:
		return AuthDenied
	}
	return AuthNotDetermined
}

func (g *consentGate) save(ctx context.Context) {
	if g.file == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(g.file), 0755); err != nil {
		g.logger.Warn(ctx, "Failed to save speech consent: %v", err)
		return
	}
	if err := os.WriteFile(g.file, []byte(g.status.String()+"\n"), 0644); err != nil {
		g.logger.Warn(ctx, "Failed to save speech consent: %v", err)
	}
}

type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer

	mu      sync.Mutex
	pending chan promptAnswer
}

type promptAnswer struct {
	line string
	err  error
}

// NewTerminalPrompter asks on out and reads the answer from in.
// Callers must not call Confirm concurrently.
func NewTerminalPrompter(in io.Reader, out io.Writer) Prompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	// A read abandoned by a cancelled call stays pending and answers the next one.
	p.mu.Lock()
	if p.pending == nil {
		p.pending = make(chan promptAnswer, 1)
		go p.readLine(p.pending)
	}
	ch := p.pending
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		p.mu.Lock()
		p.pending = nil
		p.mu.Unlock()

		if a.err != nil {
			return false, a.err
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}

func (p *terminalPrompter) readLine(ch chan<- promptAnswer) {
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	ch <- promptAnswer{line: line, err: err}
}
