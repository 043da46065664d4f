// Package term implements the interactive terminal adapter: the prompter the
// engines consult for decisions, and the rendering of trash listings.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Prompter implements ports.Prompter reading answers line by line. When the
// input is not a terminal every question falls back to its conservative
// default: do not recurse, pick the first candidate, skip the hit.
type Prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
}

// New creates a Prompter on stdin/stderr, detecting whether stdin is a TTY.
func New() ports.Prompter {
	return NewPrompter(os.Stdin, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
}

// NewPrompter creates a Prompter on explicit streams.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

// ConfirmRecursion asks whether to walk into the directory at path.
func (p *Prompter) ConfirmRecursion(path string) (bool, error) {
	if !p.interactive {
		return false, nil
	}

	fmt.Fprintf(p.out, "%s is a directory. Recurse into it? [y/N] ", path)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

// Disambiguate picks one item among several trashed under the same name.
func (p *Prompter) Disambiguate(name string, candidates []domain.TrashItem) (domain.TrashItem, error) {
	if len(candidates) == 1 || !p.interactive {
		return candidates[0], nil
	}

	fmt.Fprintf(p.out, "%d items named %q:\n", len(candidates), name)
	for i, item := range candidates {
		fmt.Fprintf(p.out, "  [%d] %s (trashed %s)\n", i+1, item.OriginalPath, item.DeletedAt.Format("2006-01-02 15:04"))
	}

	for {
		fmt.Fprintf(p.out, "Restore which one? [1-%d] ", len(candidates))
		answer, err := p.readLine()
		if err != nil {
			return domain.TrashItem{}, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || n < 1 || n > len(candidates) {
			fmt.Fprintln(p.out, "Not a valid choice.")
			continue
		}
		return candidates[n-1], nil
	}
}

// ConfirmSearchHit reports a near-match and asks what to do with it. Answering
// yes acts on the hit and ends the walk; no keeps walking; q gives up.
func (p *Prompter) ConfirmSearchHit(target, name string, isDir bool) (bool, bool, error) {
	if !p.interactive {
		return false, true, nil
	}

	kind := "file"
	if isDir {
		kind = "directory"
	}
	fmt.Fprintf(p.out, "Found %s %q (looking for %q). Take it? [y/N/q] ", kind, name, target)

	answer, err := p.readLine()
	if err != nil {
		return false, false, err
	}
	switch {
	case isYes(answer):
		return true, false, nil
	case strings.EqualFold(strings.TrimSpace(answer), "q"):
		return false, false, nil
	default:
		return false, true, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", zerr.Wrap(err, "failed to read answer")
		}
		return "", domain.ErrNoInput
	}
	return p.in.Text(), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
