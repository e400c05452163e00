package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexshd/mobius/config"
)

// prompt asks for R, w and n on in, one value per line, and stores them
// in cfg.
func prompt(in io.Reader, out io.Writer, cfg *config.Config) error {
	sc := bufio.NewScanner(in)

	ask := func(question string) (string, error) {
		fmt.Fprint(out, question)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	line, err := ask("Radius from center to midline of the strip: ")
	if err != nil {
		return fmt.Errorf("read radius: %w", err)
	}
	r, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return fmt.Errorf("radius %q: %w", line, err)
	}

	line, err = ask("Enter Width of the strip: ")
	if err != nil {
		return fmt.Errorf("read width: %w", err)
	}
	w, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return fmt.Errorf("width %q: %w", line, err)
	}

	line, err = ask("Enter the value of Resolution: ")
	if err != nil {
		return fmt.Errorf("read resolution: %w", err)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("resolution %q: %w", line, err)
	}

	cfg.Surface.Radius = r
	cfg.Surface.Width = w
	cfg.Surface.Resolution = n
	return nil
}
